package config

// Layout constants.
const (
	// MinContentWidth is the narrowest width the section panes render at.
	MinContentWidth = 40

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// MacroBarWidth is the preferred width for calculator macro bars.
	MacroBarWidth = 30

	// MaxRecipeCardWidth caps the width of a recipe card.
	MaxRecipeCardWidth = 72
)

// Display limits.
const (
	// MaxTagsDisplayed limits inline equipment tags per exercise.
	MaxTagsDisplayed = 3

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxSearchLength is the maximum recipe search query length.
	MaxSearchLength = 60

	// MaxNameLength is the maximum contact name length.
	MaxNameLength = 80

	// MaxEmailLength is the maximum email length.
	MaxEmailLength = 254

	// MaxMessageLength is the maximum contact message length.
	MaxMessageLength = 1000
)
