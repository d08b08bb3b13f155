package models

// Front is a parliamentary front the deputy belongs to.
type Front struct {
	ID            int    `json:"id" yaml:"id"`
	URI           string `json:"uri,omitempty" yaml:"uri,omitempty"`
	Title         string `json:"titulo" yaml:"titulo"`
	LegislatureID int    `json:"idLegislatura" yaml:"idLegislatura"`
}

type FrontsGetResponse struct {
	Fronts []Front `json:"fronts" yaml:"fronts"`
}
