package config

import (
	"fmt"
	"path/filepath"
)

// EarthDiameterKM is the divisor used for the earth-wrap metric.
const EarthDiameterKM = 12742

const (
	DefaultDataDir = "data"
	cableAPIDir    = "www.submarinecablemap.com/web/public/api/v3/cable"
)

// Config holds the fixed locations a run reads from and writes to
type Config struct {
	DataDir        string `json:"dataDir"`
	ManifestPath   string `json:"manifestPath"`   // index of all cables
	DetailTemplate string `json:"detailTemplate"` // fmt template, %s is the cable id
	OutputPath     string `json:"outputPath"`     // summary JSON
	DBPath         string `json:"dbPath"`         // run history, empty disables it
}

// Default returns the configuration the batch program always runs with.
func Default() Config {
	return ForDataDir(DefaultDataDir)
}

// ForDataDir lays out every path under dataDir the same way Default does.
func ForDataDir(dataDir string) Config {
	cableDir := filepath.Join(dataDir, cableAPIDir)
	return Config{
		DataDir:        dataDir,
		ManifestPath:   filepath.Join(cableDir, "all.json"),
		DetailTemplate: filepath.Join(cableDir, "%s.json"),
		OutputPath:     filepath.Join(dataDir, "stats.json"),
		DBPath:         filepath.Join(dataDir, "cablestats.db"),
	}
}

// DetailPath returns the per-cable detail file for id.
func (c Config) DetailPath(id string) string {
	return fmt.Sprintf(c.DetailTemplate, id)
}
