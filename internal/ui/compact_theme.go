package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gallery-tagger/internal/model"
)

// Entry status colours. Labels pick them up through StatusImportance.
var (
	TaggedColor  = color.RGBA{R: 46, G: 160, B: 67, A: 255}
	SkippedColor = color.RGBA{R: 230, G: 145, B: 0, A: 255}
	ErrorColor   = color.RGBA{R: 183, G: 28, B: 28, A: 255}
)

// compactSizes shrink spacing so every tag group fits beside the preview
var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:        3,
	theme.SizeNameInnerPadding:   6,
	theme.SizeNameLineSpacing:    2,
	theme.SizeNameScrollBar:      12,
	theme.SizeNameText:           12,
	theme.SizeNameHeadingText:    16,
	theme.SizeNameSubHeadingText: 13,
	theme.SizeNameCaptionText:    10,
	theme.SizeNameInputRadius:    3,
}

// CompactTheme is the default theme with dense spacing and status colours
type CompactTheme struct {
	fyne.Theme
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{Theme: theme.DefaultTheme()}
}

// Color maps the status colour names and defers the rest to the default theme
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return TaggedColor
	case theme.ColorNameWarning:
		return SkippedColor
	case theme.ColorNameError:
		return ErrorColor
	}
	return t.Theme.Color(name, variant)
}

// Size returns compact sizes where defined
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return t.Theme.Size(name)
}

// StatusImportance returns the label importance used to show status.
// Tagged renders in the success colour, skipped in the warning colour.
func StatusImportance(status model.EntryStatus) widget.Importance {
	switch status {
	case model.EntryStatusTagged:
		return widget.SuccessImportance
	case model.EntryStatusSkipped:
		return widget.WarningImportance
	default:
		return widget.MediumImportance
	}
}

// ProgressImportance highlights the progress label once every image is tagged
func ProgressImportance(tagged, total int) widget.Importance {
	if total > 0 && tagged == total {
		return widget.SuccessImportance
	}
	return widget.MediumImportance
}
