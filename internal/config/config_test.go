package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "data/www.submarinecablemap.com/web/public/api/v3/cable/all.json", filepath.ToSlash(cfg.ManifestPath))
	assert.Equal(t, "data/stats.json", filepath.ToSlash(cfg.OutputPath))
	assert.Equal(t, "data/cablestats.db", filepath.ToSlash(cfg.DBPath))
}

func TestDetailPath(t *testing.T) {
	t.Run("default layout", func(t *testing.T) {
		got := Default().DetailPath("2africa")
		assert.Equal(t, "data/www.submarinecablemap.com/web/public/api/v3/cable/2africa.json", filepath.ToSlash(got))
	})

	t.Run("custom data dir", func(t *testing.T) {
		dir := t.TempDir()
		cfg := ForDataDir(dir)
		assert.Equal(t, filepath.Join(dir, cableAPIDir, "c1.json"), cfg.DetailPath("c1"))
	})
}
