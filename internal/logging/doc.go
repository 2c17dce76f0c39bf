// Package logging builds the slog loggers used across the toolkit. The
// console handler renders a compact timestamp/level/component line for
// interactive use; the JSON handler serves log shipping. Component names are
// carried as a "component" attribute and rendered as a message prefix.
package logging
