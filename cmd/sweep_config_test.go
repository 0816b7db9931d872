package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsim/fieldsim/sim/sweep"
)

func writeTempYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSweepConfig_PartialFile_KeepsDefaults(t *testing.T) {
	// GIVEN a file that only sets buffer sizes and a seed
	path := writeTempYAML(t, "buffer_capacities: [5, 10]\nseed: 9\n")

	// WHEN it is loaded
	cfg, err := loadSweepConfig(path)

	// THEN the listed keys override and everything else keeps its default
	require.NoError(t, err)
	def := sweep.DefaultGrid()
	assert.Equal(t, []int{5, 10}, cfg.BufferCapacities)
	assert.Equal(t, def.RateScales, cfg.RateScales)
	assert.Equal(t, def.ComplexityScales, cfg.ComplexityScales)
	assert.Equal(t, def.BaseInterArrival, cfg.BaseInterArrival)
	assert.Nil(t, cfg.Horizon, "horizon left unset falls back to sim.DefaultHorizon")
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(9), *cfg.Seed)
	assert.Equal(t, 1, cfg.Replications)
}

func TestLoadSweepConfig_ZeroHorizon_Honored(t *testing.T) {
	// GIVEN a file asking for a zero horizon
	path := writeTempYAML(t, "horizon: 0\nbuffer_capacities: [1]\n")

	// WHEN it is loaded and expanded
	cfg, err := loadSweepConfig(path)
	require.NoError(t, err)

	// THEN the horizon stays 0 instead of falling back to the default
	require.NotNil(t, cfg.Horizon)
	for _, rc := range cfg.Expand() {
		assert.Equal(t, 0.0, rc.Horizon)
	}
}

func TestLoadSweepConfig_UnknownKey_Rejected(t *testing.T) {
	// GIVEN a typo in a key name
	path := writeTempYAML(t, "buffer_capacity: [5]\n")

	// WHEN it is loaded
	_, err := loadSweepConfig(path)

	// THEN strict decoding reports it
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buffer_capacity")
}

func TestLoadSweepConfig_InvalidGrid_Rejected(t *testing.T) {
	path := writeTempYAML(t, "buffer_capacities: [0]\n")
	_, err := loadSweepConfig(path)
	assert.Error(t, err)
}

func TestLoadSweepConfig_NegativeReplications_Rejected(t *testing.T) {
	path := writeTempYAML(t, "replications: -1\n")
	_, err := loadSweepConfig(path)
	assert.Error(t, err)
}

func TestLoadSweepConfig_MissingFile(t *testing.T) {
	_, err := loadSweepConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadSweepConfig_Testdata(t *testing.T) {
	cfg, err := loadSweepConfig("testdata/sweep_small.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Size())
	require.NotNil(t, cfg.Horizon)
	assert.Equal(t, 5.0, *cfg.Horizon)
}

// newSweepFlags returns a command carrying the sweep flags that
// resolveSweepOptions inspects, bound to the package-level variables.
func newSweepFlags(t *testing.T) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "sweep"}
	c.Flags().Int64Var(&sweepSeed, "seed", 42, "")
	c.Flags().IntVar(&sweepWorkers, "workers", 0, "")
	c.Flags().IntVar(&sweepReplications, "replications", 1, "")
	return c
}

func TestResolveSweepOptions_YAMLSeedUsedWhenFlagUnset(t *testing.T) {
	// GIVEN a YAML seed and no --seed flag
	c := newSweepFlags(t)
	seed := int64(100)
	cfg := DefaultSweepConfig()
	cfg.Seed = &seed
	cfg.Replications = 3
	cfg.Workers = 2

	// WHEN options are resolved
	opts := resolveSweepOptions(c, cfg)

	// THEN the YAML values apply
	assert.Equal(t, int64(100), opts.Seed)
	assert.Equal(t, 3, opts.Replications)
	assert.Equal(t, 2, opts.Workers)
}

func TestResolveSweepOptions_ExplicitFlagsOverrideYAML(t *testing.T) {
	// GIVEN a YAML seed and explicit flags
	c := newSweepFlags(t)
	require.NoError(t, c.Flags().Set("seed", "7"))
	require.NoError(t, c.Flags().Set("replications", "4"))
	require.NoError(t, c.Flags().Set("workers", "1"))
	seed := int64(100)
	cfg := DefaultSweepConfig()
	cfg.Seed = &seed
	cfg.Replications = 3

	// WHEN options are resolved
	opts := resolveSweepOptions(c, cfg)

	// THEN the flags win
	assert.Equal(t, int64(7), opts.Seed)
	assert.Equal(t, 4, opts.Replications)
	assert.Equal(t, 1, opts.Workers)
}

func TestResolveSweepOptions_NoYAMLSeed_UsesFlagDefault(t *testing.T) {
	c := newSweepFlags(t)
	opts := resolveSweepOptions(c, DefaultSweepConfig())
	assert.Equal(t, int64(42), opts.Seed)
	assert.Equal(t, 1, opts.Replications)
}
