// Package logging builds the slog loggers used across discbin.
//
// It provides console and JSON handlers selected by configuration, a no-op
// logger for tests, and context helpers that thread request correlation IDs
// and the authenticated username into structured output.
package logging
