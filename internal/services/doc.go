// Package services defines shared utilities consumed by the interactive
// session and the external tool clients.
//
// Key responsibilities:
//   - Context helpers that stamp session identifiers and step names for
//     logging.
//   - Structured error markers plus the Wrap helper so callers can tell a
//     missing encoder apart from an encoder that ran and failed.
//
// Use these helpers when wiring new tool clients so error reporting stays
// uniform across the CLI.
package services
