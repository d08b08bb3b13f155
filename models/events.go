package models

type Event struct {
	ID               int    `json:"id" yaml:"id"`
	URI              string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Start            string `json:"dataHoraInicio" yaml:"dataHoraInicio"`
	End              string `json:"dataHoraFim,omitempty" yaml:"dataHoraFim,omitempty"`
	Status           string `json:"situacao,omitempty" yaml:"situacao,omitempty"`
	TypeDescription  string `json:"descricaoTipo,omitempty" yaml:"descricaoTipo,omitempty"`
	Description      string `json:"descricao,omitempty" yaml:"descricao,omitempty"`
	ExternalLocation string `json:"localExterno,omitempty" yaml:"localExterno,omitempty"`
	Venue            *Venue `json:"localCamara,omitempty" yaml:"localCamara,omitempty"`
	Bodies           []Body `json:"orgaos,omitempty" yaml:"orgaos,omitempty"`
	RegistryURL      string `json:"urlRegistro,omitempty" yaml:"urlRegistro,omitempty"`
}

// Venue is a location inside the Chamber's buildings.
type Venue struct {
	Name     string `json:"nome,omitempty" yaml:"nome,omitempty"`
	Building string `json:"predio,omitempty" yaml:"predio,omitempty"`
	Room     string `json:"sala,omitempty" yaml:"sala,omitempty"`
	Floor    string `json:"andar,omitempty" yaml:"andar,omitempty"`
}

// Body is an organizational body (committee, plenary) associated with an event.
type Body struct {
	ID              int    `json:"id" yaml:"id"`
	URI             string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Acronym         string `json:"sigla,omitempty" yaml:"sigla,omitempty"`
	Name            string `json:"nome,omitempty" yaml:"nome,omitempty"`
	Nickname        string `json:"apelido,omitempty" yaml:"apelido,omitempty"`
	TypeCode        int    `json:"codTipoOrgao,omitempty" yaml:"codTipoOrgao,omitempty"`
	Type            string `json:"tipoOrgao,omitempty" yaml:"tipoOrgao,omitempty"`
	PublicationName string `json:"nomePublicacao,omitempty" yaml:"nomePublicacao,omitempty"`
}

// Location returns a single line describing where the event happens.
func (e Event) Location() string {
	if e.ExternalLocation != "" {
		return e.ExternalLocation
	}
	if e.Venue == nil {
		return ""
	}
	s := e.Venue.Name
	if e.Venue.Building != "" {
		s += ", " + e.Venue.Building
	}
	if e.Venue.Floor != "" {
		s += ", andar " + e.Venue.Floor
	}
	if e.Venue.Room != "" {
		s += ", sala " + e.Venue.Room
	}
	return s
}

type EventsGetResponse struct {
	Events []Event `json:"events" yaml:"events"`
}
