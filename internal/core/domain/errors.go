package domain

import "go.trai.ch/zerr"

var (
	// ErrServiceNotInitialized is returned when Matches or Apply is called before Initialize.
	ErrServiceNotInitialized = zerr.New("instrumentation service was not initialized")

	// ErrServiceClosed is returned when the service is used after Close, including re-initialization.
	ErrServiceClosed = zerr.New("instrumentation service was closed")

	// ErrClasspathEntryInvalid is returned when a classpath entry cannot be opened as a binary container.
	ErrClasspathEntryInvalid = zerr.New("cannot open classpath entry")

	// ErrTypeNotFound is returned when no class file exists for a requested type name.
	ErrTypeNotFound = zerr.New("type could not be resolved on the classpath")

	// ErrPluginNotRegistered is returned when a discovered plugin name has no registered constructor.
	ErrPluginNotRegistered = zerr.New("plugin is not registered")

	// ErrPluginConstructionFailed is returned when a plugin constructor returns an error.
	ErrPluginConstructionFailed = zerr.New("failed to construct plugin")

	// ErrPluginInitializationFailed is returned when a plugin's one-time initialization fails.
	ErrPluginInitializationFailed = zerr.New("failed to initialize plugin")

	// ErrInvalidTargetVersion is returned when the target bytecode version string cannot be parsed.
	ErrInvalidTargetVersion = zerr.New("invalid target bytecode version")

	// ErrInvalidEntryPoint is returned when the configured entry point is unknown.
	ErrInvalidEntryPoint = zerr.New("invalid entry point, expected 'decorate' or 'rebase'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoLocalOutput is returned when a run is requested without local output directories.
	ErrNoLocalOutput = zerr.New("no local output directories configured")

	// ErrReportWriteFailed is returned when the instrumentation report cannot be written.
	ErrReportWriteFailed = zerr.New("failed to write instrumentation report")

	// ErrInstrumentationFailed is returned when processing of the local classes fails.
	ErrInstrumentationFailed = zerr.New("instrumentation run failed")
)
