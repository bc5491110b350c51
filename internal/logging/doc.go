// Package logging builds the slog loggers used by seqenc.
//
// Two handlers are available: a single-line console format for humans and a
// JSON format for tooling. Records go to the configured log file and, when
// enabled, to stderr. Context helpers tag records with the wizard session ID
// and step so one pass through the prompts can be followed in the log.
package logging
