// Package logging assembles the structured slog loggers used across
// reelcat.
//
// It centralizes level and format plumbing and defines the standardized
// field keys mutation code tags its log lines with, so every component
// emits data with the same shape. Prefer these constructors over
// hand-rolled slog setup.
package logging
