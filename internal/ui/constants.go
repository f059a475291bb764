package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconTagged   = "✔"
	IconWarning  = "⚠"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	ProgressFormat     = "%s: %d / %d"
	PositionFormat     = "%d / %d"
)

// Layout sizing
const (
	PreviewMinSize   float32 = 250
	GroupCardWidth   float32 = 220
	TagsPanelMinH    float32 = 320
	SplitOffset              = 0.45
	SettingsDialogW  float32 = 520
	SettingsDialogH  float32 = 480
	ScaleOptionCount         = 10
)
