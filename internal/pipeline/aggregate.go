package pipeline

import (
	"cablestats/internal/config"
	"cablestats/internal/model"
)

// Aggregate partitions records on IsPlanned and computes stats for each side.
func Aggregate(records []model.CableRecord) model.AggregateResult {
	var active, planned []model.CableRecord
	for _, rec := range records {
		if rec.IsPlanned {
			planned = append(planned, rec)
		} else {
			active = append(active, rec)
		}
	}

	return model.AggregateResult{
		Active:  CableStatsFor(active),
		Planned: CableStatsFor(planned),
	}
}

// CableStatsFor counts every record of the partition and sums their
// lengths, with unknown lengths contributing 0.
func CableStatsFor(records []model.CableRecord) model.CableStats {
	length := 0
	for _, rec := range records {
		length += rec.Length()
	}

	return model.CableStats{
		Count:          len(records),
		Length:         length,
		WrapEarthCount: WrapEarthCount(length),
	}
}

// WrapEarthCount is km divided by the Earth's diameter.
func WrapEarthCount(km int) float64 {
	return float64(km) / config.EarthDiameterKM
}
