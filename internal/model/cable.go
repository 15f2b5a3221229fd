package model

// CableReference is one entry of the cable manifest
type CableReference struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// CableRecord is the detail document of a single cable
type CableRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	LengthRaw *string `json:"length"`              // e.g. "1,234 km", nil when unknown
	LengthKM  *int    `json:"length_km,omitempty"` // derived from LengthRaw by the loader
	IsPlanned bool    `json:"is_planned"`
}

// Length returns the derived length in km, treating an unknown length as 0.
func (c CableRecord) Length() int {
	if c.LengthKM == nil {
		return 0
	}
	return *c.LengthKM
}
