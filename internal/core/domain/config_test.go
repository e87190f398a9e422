package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weave/internal/core/domain"
)

func TestSessionConfig_Validate_Defaults(t *testing.T) {
	cfg := &domain.SessionConfig{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.EntryPointDecorate, cfg.EntryPoint)
	assert.Equal(t, "1.8", cfg.TargetVersion)
}

func TestSessionConfig_Validate_Rebase(t *testing.T) {
	cfg := &domain.SessionConfig{EntryPoint: domain.EntryPointRebase, TargetVersion: "17"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.EntryPointRebase, cfg.EntryPoint)
}

func TestSessionConfig_Validate_BadEntryPoint(t *testing.T) {
	cfg := &domain.SessionConfig{EntryPoint: "inline"}
	err := cfg.Validate()
	assert.True(t, errors.Is(err, domain.ErrInvalidEntryPoint), "got %v", err)
}

func TestSessionConfig_Validate_BadVersion(t *testing.T) {
	cfg := &domain.SessionConfig{TargetVersion: "zero"}
	err := cfg.Validate()
	assert.True(t, errors.Is(err, domain.ErrInvalidTargetVersion), "got %v", err)
}

func TestSessionConfig_Classpaths_Order(t *testing.T) {
	cfg := &domain.SessionConfig{
		RuntimeClasspath: []string{"rt.jar"},
		BootClasspath:    []string{"boot.jar"},
		PluginClasspath:  []string{"plugins"},
		LocalOutputDirs:  []string{"classes"},
	}
	sets := cfg.Classpaths()
	require.Len(t, sets, 4)
	assert.Equal(t, []string{"rt.jar"}, sets[0])
	assert.Equal(t, []string{"boot.jar"}, sets[1])
	assert.Equal(t, []string{"plugins"}, sets[2])
	assert.Equal(t, []string{"classes"}, sets[3])
}
