package tui

// Color constants for the clinictrack TUI theme
const (
	// Base Colors
	ColorAppBackground = "" // Use terminal default background
	ColorBorder        = "#3A3F55"

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Field labels, user input, titles
	ColorSecondaryText = "#B1B8C7" // Secondary text
	ColorPlaceholder   = "#6D7383" // Input placeholders
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (clinic teal theme)
	ColorAccentMain   = "#748DAE" // Titles, active borders
	ColorAccentBright = "#9ECAD6" // Highlights, focused field labels

	// State Colors
	ColorError   = "#FF4757" // Validation errors
	ColorSuccess = "#28A745" // Success, completed visits
	ColorWarning = "#FFC107" // Active (still inside) visits
)
