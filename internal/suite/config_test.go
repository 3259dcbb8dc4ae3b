package suite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.toml")
	raw := `
[harness]
warmup = 500
samples = 3
target_ms = 20
mem_stats = true

[report]
text = false
svg = "out.svg"

[experiments]
exclude = ["contention"]
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.Harness.Warmup)
	assert.Equal(t, 3, cfg.Harness.Samples)
	assert.False(t, cfg.Report.Text)
	assert.Equal(t, "out.svg", cfg.Report.SVG)
	assert.Equal(t, []string{"contention"}, cfg.Experiments.Exclude)

	opts := cfg.Options()
	assert.Equal(t, 20*time.Millisecond, opts.TargetDuration)
	assert.True(t, opts.MemStats)
}

func TestConfigSelection(t *testing.T) {
	reg, err := NewRegistry(noopExperiment("a"), noopExperiment("b"), noopExperiment("c"))
	require.NoError(t, err)

	cfg := DefaultConfig()
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Selection(reg))

	cfg.Experiments.Exclude = []string{"b"}
	assert.Equal(t, []string{"a", "c"}, cfg.Selection(reg))

	cfg.Experiments.Include = []string{"c", "b"}
	assert.Equal(t, []string{"c"}, cfg.Selection(reg))
}
