package models

// Deputy is a roster entry as returned by the upstream API.
type Deputy struct {
	ID            int    `json:"id" yaml:"id"`
	URI           string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Name          string `json:"nome" yaml:"nome"`
	Party         string `json:"siglaPartido,omitempty" yaml:"siglaPartido,omitempty"`
	PartyURI      string `json:"uriPartido,omitempty" yaml:"uriPartido,omitempty"`
	State         string `json:"siglaUf,omitempty" yaml:"siglaUf,omitempty"`
	LegislatureID int    `json:"idLegislatura,omitempty" yaml:"idLegislatura,omitempty"`
	PhotoURL      string `json:"urlFoto,omitempty" yaml:"urlFoto,omitempty"`
	Email         string `json:"email,omitempty" yaml:"email,omitempty"`
}

type DeputiesGetResponse struct {
	Deputies []Deputy `json:"deputies" yaml:"deputies"`
}
