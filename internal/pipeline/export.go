package pipeline

import (
	"encoding/json"
	"fmt"
	"io"

	"cablestats/internal/model"
	"cablestats/pkg/utils"
)

// WriteReport prints the human-readable summary of result to w.
func WriteReport(w io.Writer, result model.AggregateResult) error {
	_, err := fmt.Fprintf(w,
		"*** Active Cables ***\n"+
			"Count: %d\n"+
			"Length: %d km (enough to wrap the earth %.0f times)\n"+
			"\n"+
			"*** Planned Cables ***\n"+
			"Count: %d\n"+
			"Length: %d km\n",
		result.Active.Count,
		result.Active.Length,
		result.Active.WrapEarthCount,
		result.Planned.Count,
		result.Planned.Length,
	)
	return err
}

// ExportJSON replaces the file at path with the JSON encoding of result.
// It returns the number of bytes written.
func ExportJSON(om *utils.OutputManager, path string, result model.AggregateResult) (int, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to encode stats: %w", err)
	}

	if err := om.WriteFile(path, data); err != nil {
		return 0, err
	}
	return len(data), nil
}
