package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/design-auditor/internal/config"
	"github.com/jonathan/design-auditor/internal/probe"
)

// These tests share runCmd's flag set and rely on flags staying unchanged
// until explicitly Set, so they must run in source order: defaults first,
// config-file precedence second, explicit flag overrides last.

func TestResolveRunConfig_Defaults(t *testing.T) {
	cfg := resolveRunConfig(runCmd, config.Config{})

	assert.Equal(t, "audit-output", cfg.OutDir)
	assert.Equal(t, "desktop", cfg.ViewportName)
	assert.Equal(t, int64(1280), cfg.ViewportWidth)
	assert.Equal(t, int64(800), cfg.ViewportHeight)
	assert.Equal(t, probe.DefaultSampleLimit, cfg.SampleLimit)
	assert.Equal(t, int(probe.DefaultNavigationTimeout/time.Second), cfg.NavigationTimeoutSec)
	assert.Equal(t, 2, cfg.Parallelism)
}

func TestResolveRunConfig_FileValuesSurviveFlagDefaults(t *testing.T) {
	fileCfg := config.Config{
		BaseURL:        "http://localhost:3000",
		OutDir:         "ci-reports",
		ViewportName:   "mobile",
		ViewportWidth:  390,
		ViewportHeight: 844,
		SampleLimit:    15,
		Parallelism:    6,
	}

	cfg := resolveRunConfig(runCmd, fileCfg)

	// No flag was set, so every config-file value must survive the merge.
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, "ci-reports", cfg.OutDir)
	assert.Equal(t, "mobile", cfg.ViewportName)
	assert.Equal(t, int64(390), cfg.ViewportWidth)
	assert.Equal(t, int64(844), cfg.ViewportHeight)
	assert.Equal(t, 15, cfg.SampleLimit)
	assert.Equal(t, 6, cfg.Parallelism)

	// Fields the file omits fall back to the built-in defaults.
	assert.Equal(t, int(probe.DefaultNavigationTimeout/time.Second), cfg.NavigationTimeoutSec)
}

func TestResolveRunConfig_ExplicitFlagsOverrideFile(t *testing.T) {
	require.NoError(t, runCmd.Flags().Set("out", "flag-out"))
	require.NoError(t, runCmd.Flags().Set("width", "1440"))

	fileCfg := config.Config{OutDir: "ci-reports", ViewportWidth: 390, ViewportName: "mobile"}
	cfg := resolveRunConfig(runCmd, fileCfg)

	assert.Equal(t, "flag-out", cfg.OutDir)
	assert.Equal(t, int64(1440), cfg.ViewportWidth)

	// Flags left untouched still defer to the file.
	assert.Equal(t, "mobile", cfg.ViewportName)
}
