// Package config provides configuration management for dupfind.
package config

// Default configuration values.
const (
	// DefaultAlgorithm is the checksum algorithm used when none is configured.
	DefaultAlgorithm = "md5"

	// DefaultChunkSize is the hashing read-buffer size in bytes.
	DefaultChunkSize = 1024

	// DefaultInterval is the progress reporting period.
	DefaultInterval = "5s"

	// DefaultQuarantineDir is the quarantine subdirectory name.
	DefaultQuarantineDir = "dup"

	// DefaultOutput is the report format used when none is configured.
	DefaultOutput = "plain"

	// DefaultLogLevel is the logging level used when none is configured.
	DefaultLogLevel = "info"
)
