package tui

// Color constants for the timekeep TUI theme
const (
	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (labels, clock)
	ColorSecondaryText = "#B1B8C7" // Secondary text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#16A34A" // Category name, active borders
	ColorAccentBright = "#4ADE80" // Header, highlights

	// State Colors
	ColorError   = "#EF4444" // Errors
	ColorSuccess = "#22C55E" // Success, confirmations
)
