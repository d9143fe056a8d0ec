package config

import "time"

// Layout constants.
const (
	// DialRadius is the dial radius in terminal rows.
	DialRadius = 8

	// MinDialRadius is used when the window is too short for DialRadius.
	MinDialRadius = 4

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// TargetProgressWidth is the preferred width of the progress bar.
	TargetProgressWidth = 40

	// MinProgressWidth is the minimum width of the progress bar.
	MinProgressWidth = 10

	// CellAspect is the height/width ratio of a terminal cell.
	CellAspect = 2.0
)

// Display limits.
const (
	// TitleWarnLength is where the edit form starts warning about long titles.
	TitleWarnLength = 24

	// MaxSwitchCards limits how many timers switch mode shows at once.
	MaxSwitchCards = 5

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxTitleLength is the maximum timer title length accepted by the form.
	MaxTitleLength = 60

	// MaxDurationMinutes bounds the form's duration field.
	MaxDurationMinutes = 24 * 60
)

// Refresh timing.
const (
	// RedrawInterval is how often the view re-reads engine state.
	RedrawInterval = 200 * time.Millisecond

	// FlashDuration keeps the expiry banner visible.
	FlashDuration = 3 * time.Second
)
