package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gallery-tagger/internal/config"
	"github.com/ytget/gallery-tagger/internal/gallery"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	imageRootEntry     *widget.Entry
	tagsFileEntry      *widget.Entry
	datasheetFileEntry *widget.Entry
	moduleIDEntry      *widget.Entry
	pathPrefixEntry    *widget.Entry
	scaleSelect        *widget.Select
	tagGroupsFileEntry *widget.Entry
	detailsFileEntry   *widget.Entry
	languageSelect     *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after valid settings were stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.imageRootEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	imageRootRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.imageRootEntry)

	sd.tagsFileEntry = widget.NewEntry()
	sd.tagsFileEntry.SetPlaceHolder(config.DefaultTagsFileName)

	sd.datasheetFileEntry = widget.NewEntry()
	sd.datasheetFileEntry.SetPlaceHolder(config.DefaultDatasheetFileName)

	sd.moduleIDEntry = widget.NewEntry()
	sd.moduleIDEntry.SetPlaceHolder(gallery.DefaultModuleID)
	sd.moduleIDEntry.Validator = gallery.ValidateModuleID

	sd.pathPrefixEntry = widget.NewEntry()
	sd.pathPrefixEntry.SetPlaceHolder("tokens")

	scaleOptions := make([]string, 0, ScaleOptionCount)
	for i := gallery.MinScale; i <= gallery.MaxScale; i++ {
		scaleOptions = append(scaleOptions, strconv.Itoa(i))
	}
	sd.scaleSelect = widget.NewSelect(scaleOptions, nil)

	sd.tagGroupsFileEntry = widget.NewEntry()
	sd.tagGroupsFileEntry.SetPlaceHolder("groups.yaml")

	sd.detailsFileEntry = widget.NewEntry()
	sd.detailsFileEntry.SetPlaceHolder(gallery.DefaultDetailsFileName)

	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyImageRoot)+":"),
		imageRootRow,

		widget.NewLabel(text(KeyTagsFile)+":"),
		sd.tagsFileEntry,

		widget.NewLabel(text(KeyTagGroupsFile)+":"),
		sd.tagGroupsFileEntry,

		widget.NewLabel(text(KeyDetailsFile)+":"),
		sd.detailsFileEntry,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyDatasheetFile)+":"),
		sd.datasheetFileEntry,

		widget.NewLabel(text(KeyModuleID)+":"),
		sd.moduleIDEntry,

		widget.NewLabel(text(KeyPathPrefix)+":"),
		sd.pathPrefixEntry,

		widget.NewLabel(text(KeyScale)+":"),
		sd.scaleSelect,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	// Unset paths stay empty so they keep following the image root
	sd.imageRootEntry.SetText(sd.settings.ConfiguredImageRoot())
	sd.imageRootEntry.SetPlaceHolder(sd.settings.GetImageRoot())
	sd.tagsFileEntry.SetText(sd.settings.ConfiguredTagsFile())
	sd.tagsFileEntry.SetPlaceHolder(sd.settings.GetTagsFile())
	sd.datasheetFileEntry.SetText(sd.settings.ConfiguredDatasheetFile())
	sd.datasheetFileEntry.SetPlaceHolder(sd.settings.GetDatasheetFile())
	sd.moduleIDEntry.SetText(sd.settings.GetModuleID())
	sd.pathPrefixEntry.SetText(sd.settings.GetPathPrefix())
	sd.scaleSelect.SetSelected(strconv.Itoa(sd.settings.GetDefaultScale()))
	sd.tagGroupsFileEntry.SetText(sd.settings.GetTagGroupsFile())
	sd.detailsFileEntry.SetText(sd.settings.ConfiguredDetailsFile())
	sd.detailsFileEntry.SetPlaceHolder(sd.settings.GetDetailsFile())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.imageRootEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.apply(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply stores the form values. Nothing is stored when the module ID is invalid.
func (sd *SettingsDialog) apply() error {
	moduleID := sd.moduleIDEntry.Text
	if moduleID == "" {
		moduleID = gallery.DefaultModuleID
	}
	if err := sd.settings.SetModuleID(moduleID); err != nil {
		return err
	}

	if sd.imageRootEntry.Text != "" {
		sd.settings.SetImageRoot(sd.imageRootEntry.Text)
	}
	sd.settings.SetTagsFile(sd.tagsFileEntry.Text)
	sd.settings.SetDatasheetFile(sd.datasheetFileEntry.Text)
	sd.settings.SetPathPrefix(sd.pathPrefixEntry.Text)
	sd.settings.SetTagGroupsFile(sd.tagGroupsFileEntry.Text)
	sd.settings.SetDetailsFile(sd.detailsFileEntry.Text)

	if scale, err := strconv.Atoi(sd.scaleSelect.Selected); err == nil {
		sd.settings.SetDefaultScale(scale)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	return nil
}
