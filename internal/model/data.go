package model

// CableStats is the aggregate over one partition of cables
type CableStats struct {
	Count          int     `json:"count"`
	Length         int     `json:"length"`
	WrapEarthCount float64 `json:"wrap_earth_count"`
}

// AggregateResult is the summary written to stats.json
type AggregateResult struct {
	Active  CableStats `json:"active"`
	Planned CableStats `json:"planned"`
}

// Total returns the number of cables across both partitions.
func (r AggregateResult) Total() int {
	return r.Active.Count + r.Planned.Count
}
