// Package config loads the election report's ambient configuration:
// logging and tracing. The input file path is fixed by the binary and is
// deliberately not configurable.
//
// # Configuration Sources
//
// Configuration is layered in order of increasing precedence:
//
//	1. Default() values
//	2. An optional YAML file (config.yaml or configs/config.yaml)
//	3. Environment variables prefixed with ELECTION_
//
// # Environment Variables
//
//	ELECTION_LOGGING_LEVEL=debug|info|warn|error
//	ELECTION_LOGGING_OUTPUT=console|file|both
//	ELECTION_LOGGING_FILE_PATH=logs/election-report.log
//	ELECTION_TRACING_ENABLED=true
//	ELECTION_TRACING_EXPORTER=stdout|none
//	ELECTION_TRACING_SAMPLE_RATIO=1.0
//
// # YAML Example
//
//	logging:
//	  level: debug
//	  output: both
//	  file_path: logs/election-report.log
//	tracing:
//	  enabled: true
//	  exporter: stdout
//
// Validation uses go-playground/validator struct tags; any failure is
// returned as an errors.AppError of type CONFIG.
package config
