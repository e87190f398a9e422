package domain

import "go.trai.ch/zerr"

// EntryPoint selects the type-building policy for the initial rewrite builder.
type EntryPoint string

const (
	// EntryPointDecorate wraps the existing type without rebasing its methods.
	EntryPointDecorate EntryPoint = "decorate"
	// EntryPointRebase moves intercepted method bodies to renamed methods.
	EntryPointRebase EntryPoint = "rebase"
)

// SessionConfig is the structured configuration of one instrumentation session.
// The four classpath sets are kept separate because their precedence order is
// fixed: runtime, boot, plugin, local output.
type SessionConfig struct {
	// RuntimeClasspath holds the application's dependency jars and directories.
	RuntimeClasspath []string `koanf:"runtime_classpath"`
	// BootClasspath holds the platform classes.
	BootClasspath []string `koanf:"boot_classpath"`
	// PluginClasspath holds the instrumentation-tool entries that are scanned
	// for plugin descriptors.
	PluginClasspath []string `koanf:"plugin_classpath"`
	// LocalOutputDirs holds this build unit's freshly-compiled class directories.
	LocalOutputDirs []string `koanf:"local_output"`

	// TargetVersion is the target bytecode version string, e.g. "1.8" or "17".
	TargetVersion string `koanf:"target_version"`
	// EntryPoint is the type-building policy, "decorate" by default.
	EntryPoint EntryPoint `koanf:"entry_point"`

	// Parallelism bounds the worker pool driving the session; zero means NumCPU.
	Parallelism int `koanf:"parallelism"`
	// ReportPath is where the YAML instrumentation report is written, if set.
	ReportPath string `koanf:"report"`
	// MetricsAddr exposes prometheus metrics over HTTP when non-empty.
	MetricsAddr string `koanf:"metrics_addr"`
	// LogLevel sets the build logger threshold ("debug", "info", "warn", "error").
	LogLevel string `koanf:"log_level"`
}

// Validate normalizes defaults and rejects unusable values.
func (c *SessionConfig) Validate() error {
	if c.EntryPoint == "" {
		c.EntryPoint = EntryPointDecorate
	}
	if c.EntryPoint != EntryPointDecorate && c.EntryPoint != EntryPointRebase {
		return zerr.With(zerr.Wrap(ErrInvalidEntryPoint, "rejected by config validation"), "entry_point", string(c.EntryPoint))
	}
	if c.TargetVersion == "" {
		c.TargetVersion = "1.8"
	}
	if _, err := ParseClassFileVersion(c.TargetVersion); err != nil {
		return err
	}
	return nil
}

// Classpaths returns all classpath sets in lookup precedence order.
func (c *SessionConfig) Classpaths() [][]string {
	return [][]string{c.RuntimeClasspath, c.BootClasspath, c.PluginClasspath, c.LocalOutputDirs}
}
