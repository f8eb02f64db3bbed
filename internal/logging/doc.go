// Package logging constructs the slog loggers used across tagsort.
//
// It provides a human-oriented console handler (colorized when stderr is a
// terminal) and a JSON handler for machine consumption, plus small helpers
// for typed attributes and component-scoped loggers. Obtain loggers through
// New or NewFromConfig so every command logs with the same shape.
package logging
