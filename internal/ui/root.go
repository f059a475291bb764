package ui

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gallery-tagger/internal/catalog"
	"github.com/ytget/gallery-tagger/internal/config"
	"github.com/ytget/gallery-tagger/internal/gallery"
	"github.com/ytget/gallery-tagger/internal/model"
	"github.com/ytget/gallery-tagger/internal/platform"
	"github.com/ytget/gallery-tagger/internal/session"
	"github.com/ytget/gallery-tagger/internal/tagstore"
)

// RootUI represents the main UI structure
type RootUI struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	groups       model.TagGroups

	session      *session.Session
	carried      model.TagSet
	details      gallery.DetailsSet
	detailsDirty bool

	preview       *canvas.Image
	nameLabel     *widget.Label
	positionLabel *widget.Label
	progressLabel *widget.Label
	extraEntry    *widget.Entry
	labelEntry    *widget.Entry
	scaleSelect   *widget.Select
	tokenEntry    *widget.Entry
	saveNextBtn   *widget.Button
	skipBtn       *widget.Button
	previousBtn   *widget.Button

	checks     map[string]map[string]*widget.Check
	keepChecks map[string]*widget.Check

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, groups model.TagGroups) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		app:          app,
		window:       window,
		settings:     settings,
		localization: localization,
		groups:       groups,
		carried:      model.NewTagSet(),
		details:      gallery.DetailsSet{},
		checks:       make(map[string]map[string]*widget.Check),
		keepChecks:   make(map[string]*widget.Check),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetCloseIntercept(func() {
		ui.confirmUnsaved(window.Close)
	})

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	text := ui.localization.GetText

	ui.preview = canvas.NewImageFromResource(nil)
	ui.preview.FillMode = canvas.ImageFillContain
	ui.preview.SetMinSize(fyne.NewSize(PreviewMinSize, PreviewMinSize))

	ui.nameLabel = widget.NewLabel(text(KeyNoImage))
	ui.nameLabel.Truncation = fyne.TextTruncateEllipsis
	ui.positionLabel = widget.NewLabel("")
	ui.progressLabel = widget.NewLabel("")

	openBtn := widget.NewButton(IconFolder, ui.onOpenFolder)
	openBtn.Importance = widget.LowImportance
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var left fyne.CanvasObject = container.NewHBox(openBtn, settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, openBtn, settingsBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, ui.progressLabel, ui.nameLabel)

	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationContainer = container.NewPadded(ui.notificationLabel)
	ui.notificationContainer.Hide()

	openExternalBtn := widget.NewButton(text(KeyOpenExternal), ui.onOpenExternal)
	revealBtn := widget.NewButton(text(KeyRevealFile), ui.onRevealFile)
	previewPanel := container.NewBorder(
		nil,
		container.NewHBox(ui.positionLabel, openExternalBtn, revealBtn),
		nil, nil,
		ui.preview,
	)

	ui.extraEntry = widget.NewMultiLineEntry()
	ui.extraEntry.SetPlaceHolder(text(KeyExtraTags))
	ui.extraEntry.Wrapping = fyne.TextWrapWord

	ui.previousBtn = widget.NewButton(text(KeyPrevious), ui.onPrevious)
	ui.skipBtn = widget.NewButton(text(KeySkip), ui.onSkip)
	ui.saveNextBtn = widget.NewButton(text(KeySaveAndNext), ui.onSaveAndNext)
	ui.saveNextBtn.Importance = widget.HighImportance
	buttons := container.NewHBox(ui.previousBtn, ui.skipBtn, ui.saveNextBtn)

	ui.labelEntry = widget.NewEntry()
	ui.tokenEntry = widget.NewEntry()
	ui.tokenEntry.SetPlaceHolder(text(KeyTokenImage))
	scaleOptions := make([]string, 0, ScaleOptionCount)
	for i := gallery.MinScale; i <= gallery.MaxScale; i++ {
		scaleOptions = append(scaleOptions, strconv.Itoa(i))
	}
	ui.scaleSelect = widget.NewSelect(scaleOptions, nil)
	detailsRow := container.NewBorder(nil, nil,
		widget.NewLabel(text(KeyLabel)+":"),
		container.NewHBox(widget.NewLabel(text(KeyScale)+":"), ui.scaleSelect),
		container.NewGridWithColumns(2, ui.labelEntry, ui.tokenEntry),
	)

	tagsPanel := container.NewBorder(
		nil,
		container.NewVBox(detailsRow, ui.extraEntry, container.NewCenter(buttons)),
		nil, nil,
		container.NewScroll(ui.createGroupCards()),
	)
	tagsPanel.Resize(fyne.NewSize(0, TagsPanelMinH))

	split := container.NewVSplit(previewPanel, tagsPanel)
	split.Offset = SplitOffset

	ui.window.SetContent(container.NewBorder(
		container.NewVBox(topPanel, ui.notificationContainer),
		nil, nil, nil,
		split,
	))

	ui.setNavigationEnabled(false)
}

// createGroupCards builds one card per tag group plus the keep toggle for
// free-text tags, which fall into the ungrouped bucket
func (ui *RootUI) createGroupCards() fyne.CanvasObject {
	cards := container.NewHBox()
	kept := make(map[string]bool)
	for _, name := range ui.settings.GetKeptTagGroups() {
		kept[name] = true
	}

	for _, group := range ui.groups {
		checks := make(map[string]*widget.Check, len(group.Tags))
		columns := group.Columns
		if columns <= 0 {
			columns = model.DefaultGroupColumns
		}
		grid := container.NewGridWithColumns(columns)
		for _, tag := range group.Tags {
			check := widget.NewCheck(tag, nil)
			checks[tag] = check
			grid.Add(check)
		}
		ui.checks[group.Name] = checks

		keep := ui.newKeepCheck(group.Name, kept[group.Name])
		card := widget.NewCard(group.Name, "", container.NewBorder(nil, keep, nil, nil, grid))
		cards.Add(container.NewGridWrap(fyne.NewSize(GroupCardWidth*float32(columns)/model.DefaultGroupColumns, TagsPanelMinH), card))
	}

	other := ui.newKeepCheck(model.UngroupedName, kept[model.UngroupedName])
	cards.Add(widget.NewCard(model.UngroupedName, "", other))
	return cards
}

// newKeepCheck creates the per-group "keep tags" toggle
func (ui *RootUI) newKeepCheck(group string, checked bool) *widget.Check {
	keep := widget.NewCheck(ui.localization.GetText(KeyKeepTags), func(on bool) {
		if ui.session != nil {
			ui.session.SetKeep(group, on)
			ui.settings.SetKeptTagGroups(ui.session.KeptGroups())
		}
	})
	keep.Checked = checked
	ui.keepChecks[group] = keep
	return keep
}

// createMenu creates the main menu
func (ui *RootUI) createMenu() {
	text := ui.localization.GetText

	openItem := fyne.NewMenuItem(text(KeyOpenFolder), ui.onOpenFolder)
	saveItem := fyne.NewMenuItem(text(KeySaveTags), ui.onSaveTags)
	exportItem := fyne.NewMenuItem(text(KeyExportDatasheet), ui.onExport)
	settingsItem := fyne.NewMenuItem(text(KeySettings), ui.onShowSettings)
	quitItem := fyne.NewMenuItem(text(KeyQuit), func() {
		ui.confirmUnsaved(ui.app.Quit)
	})
	quitItem.IsQuit = true

	// Language submenu
	languageMenu := fyne.NewMenu(IconLanguage + " " + text(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(text(KeyFile),
			openItem,
			saveItem,
			exportItem,
			fyne.NewMenuItemSeparator(),
			settingsItem,
			quitItem,
		),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	text := ui.localization.GetText
	ui.window.SetTitle(text(KeyAppTitle))
	ui.extraEntry.SetPlaceHolder(text(KeyExtraTags))
	ui.tokenEntry.SetPlaceHolder(text(KeyTokenImage))
	ui.previousBtn.SetText(text(KeyPrevious))
	ui.skipBtn.SetText(text(KeySkip))
	ui.saveNextBtn.SetText(text(KeySaveAndNext))
	for _, keep := range ui.keepChecks {
		keep.Text = text(KeyKeepTags)
		keep.Refresh()
	}
	ui.showCurrent()
}

// OpenImageRoot opens the configured image folder if one is set
func (ui *RootUI) OpenImageRoot() {
	root := ui.settings.ConfiguredImageRoot()
	if root == "" {
		return
	}
	if err := ui.openFolder(root); err != nil {
		ui.showError(err)
	}
}

// onOpenFolder lets the user pick an image folder
func (ui *RootUI) onOpenFolder() {
	ui.confirmUnsaved(func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil {
				ui.showError(err)
				return
			}
			if uri == nil {
				return
			}
			ui.settings.SetImageRoot(uri.Path())
			if err := ui.openFolder(uri.Path()); err != nil {
				ui.showError(err)
			}
		}, ui.window)
	})
}

// openFolder scans root, loads its tags file and starts a session at the
// first untagged image. A tags file that fails to load leaves the current
// session untouched so the file is never overwritten.
func (ui *RootUI) openFolder(root string) error {
	cat, err := catalog.Scan(root)
	if err != nil {
		return err
	}

	tagsFile := ui.settings.GetTagsFile()
	store, err := tagstore.Load(tagsFile)
	if err != nil {
		return err
	}
	details, err := gallery.LoadDetails(ui.settings.GetDetailsFile())
	if err != nil {
		return err
	}

	sess, err := session.Open(store, ui.groups, cat)
	if err != nil {
		return err
	}
	for group, keep := range ui.keepChecks {
		sess.SetKeep(group, keep.Checked)
	}
	if !sess.SeekPending() {
		log.Printf("all %d images under %s are tagged", sess.Len(), root)
	}

	ui.session = sess
	ui.details = details
	ui.detailsDirty = false
	ui.carried = model.NewTagSet()
	ui.setNavigationEnabled(true)
	ui.showCurrent()
	return nil
}

// showCurrent renders the session's current entry
func (ui *RootUI) showCurrent() {
	text := ui.localization.GetText
	if ui.session == nil {
		return
	}

	tagged, total := ui.session.Progress()
	ui.progressLabel.Importance = ProgressImportance(tagged, total)
	ui.progressLabel.SetText(fmt.Sprintf(ProgressFormat, text(KeyImages), tagged, total))

	entry, ok := ui.session.Current()
	if !ok {
		ui.preview.File = ""
		ui.preview.Resource = nil
		ui.preview.Refresh()
		ui.nameLabel.SetText(text(KeyNoMoreImages))
		ui.positionLabel.Importance = widget.MediumImportance
		ui.positionLabel.SetText(DashPlaceholder)
		ui.saveNextBtn.Disable()
		ui.skipBtn.Disable()
		ui.hideNotification()
		return
	}

	ui.saveNextBtn.Enable()
	ui.skipBtn.Enable()
	ui.preview.File = entry.Path
	ui.preview.Refresh()
	ui.nameLabel.SetText(entry.ID)
	ui.showDetails(entry.ID)
	status := ui.session.Status(entry.ID)
	ui.positionLabel.Importance = StatusImportance(status)
	ui.positionLabel.SetText(fmt.Sprintf(PositionFormat, ui.session.Index()+1, ui.session.Len()))

	if status.IsTagged() {
		ui.showNotification(IconWarning+" "+text(KeyAlreadyTagged), widget.WarningImportance)
		ui.selectTags(ui.session.CurrentTags())
		return
	}
	ui.hideNotification()
	ui.selectTags(ui.carried)
}

// selectTags checks vocabulary tags and lists the rest in the free-text entry
func (ui *RootUI) selectTags(tags model.TagSet) {
	remaining := tags.Clone()
	for _, checks := range ui.checks {
		for tag, check := range checks {
			check.SetChecked(tags.Has(tag))
			remaining.Remove(tag)
		}
	}
	ui.extraEntry.SetText(strings.Join(remaining.Sorted(), ", "))
}

// selectedTags collects checked tags and the parsed free-text entry
func (ui *RootUI) selectedTags() model.TagSet {
	tags := model.ParseTagList(ui.extraEntry.Text)
	for _, checks := range ui.checks {
		for tag, check := range checks {
			if check.Checked {
				tags.Add(tag)
			}
		}
	}
	return tags
}

// onSaveAndNext stores the selection for the current image and advances
func (ui *RootUI) onSaveAndNext() {
	if ui.session == nil {
		return
	}
	entry, ok := ui.session.Current()
	if !ok {
		return
	}
	details := ui.currentDetails()
	if err := details.Validate(); err != nil {
		ui.showError(err)
		return
	}

	selected := ui.selectedTags()
	if _, err := ui.session.Commit(selected); err != nil {
		ui.showError(err)
		return
	}
	if details != ui.details.Get(entry.ID) {
		if err := ui.details.Set(entry.ID, details); err != nil {
			ui.showError(err)
		} else {
			ui.detailsDirty = true
		}
	}
	ui.carried = ui.session.Carry(selected)
	ui.showCurrent()
}

// currentDetails reads the per-image fields
func (ui *RootUI) currentDetails() gallery.Details {
	details := gallery.Details{
		Label: strings.TrimSpace(ui.labelEntry.Text),
		Token: strings.TrimSpace(ui.tokenEntry.Text),
	}
	if scale, err := strconv.Atoi(ui.scaleSelect.Selected); err == nil {
		details.Scale = scale
	}
	return details
}

// showDetails fills the per-image fields for id
func (ui *RootUI) showDetails(id string) {
	details := ui.details.Get(id)
	ui.labelEntry.SetPlaceHolder(gallery.SuggestLabel(id))
	ui.labelEntry.SetText(details.Label)
	ui.tokenEntry.SetText(details.Token)
	ui.scaleSelect.PlaceHolder = strconv.Itoa(ui.settings.GetDefaultScale())
	if details.Scale != 0 {
		ui.scaleSelect.SetSelected(strconv.Itoa(details.Scale))
	} else {
		ui.scaleSelect.ClearSelected()
	}
}

// onSkip advances without storing anything
func (ui *RootUI) onSkip() {
	if ui.session == nil {
		return
	}
	ui.carried = ui.session.Carry(ui.selectedTags())
	ui.session.Skip()
	ui.showCurrent()
}

// onPrevious steps back one image
func (ui *RootUI) onPrevious() {
	if ui.session == nil || !ui.session.Previous() {
		return
	}
	ui.showCurrent()
}

// onSaveTags writes the tag store to the tags file
func (ui *RootUI) onSaveTags() {
	if ui.session == nil {
		return
	}
	if err := ui.saveAll(); err != nil {
		ui.showError(err)
		return
	}
	path := ui.settings.GetTagsFile()
	ui.showNotification(IconTagged+" "+ui.localization.GetText(KeyTagsSaved)+MiddleDotSeparator+path, widget.SuccessImportance)
}

// saveAll writes the tag store and, when changed, the image details
func (ui *RootUI) saveAll() error {
	path := ui.settings.GetTagsFile()
	if err := ui.session.Store().Save(path); err != nil {
		return err
	}
	log.Printf("saved %d entries to %s", ui.session.Store().Len(), path)

	if !ui.detailsDirty {
		return nil
	}
	detailsPath := ui.settings.GetDetailsFile()
	if err := ui.details.Save(detailsPath); err != nil {
		return err
	}
	ui.detailsDirty = false
	log.Printf("saved details for %d images to %s", len(ui.details), detailsPath)
	return nil
}

// hasUnsavedChanges reports pending tag or detail changes
func (ui *RootUI) hasUnsavedChanges() bool {
	return ui.session != nil && (ui.session.Store().Dirty() || ui.detailsDirty)
}

// onExport writes the datasheet for every stored entry
func (ui *RootUI) onExport() {
	if ui.session == nil {
		return
	}
	path := ui.settings.GetDatasheetFile()
	opts := gallery.Options{
		ModuleID:   ui.settings.GetModuleID(),
		PathPrefix: ui.settings.GetPathPrefix(),
		Scale:      ui.settings.GetDefaultScale(),
		Details:    ui.details,
	}
	n, err := gallery.Export(path, ui.session.Store(), ui.groups, opts)
	if err != nil {
		ui.showError(err)
		return
	}
	ui.showNotification(fmt.Sprintf("%s %s: %d%s%s", IconTagged, ui.localization.GetText(KeyDatasheetExported), n, MiddleDotSeparator, path), widget.SuccessImportance)
}

// onOpenExternal opens the current image with the default application
func (ui *RootUI) onOpenExternal() {
	ui.withCurrentPath(platform.OpenFileWithDefaultApp)
}

// onRevealFile shows the current image in the file manager
func (ui *RootUI) onRevealFile() {
	ui.withCurrentPath(platform.OpenFileInManager)
}

func (ui *RootUI) withCurrentPath(open func(string) error) {
	if ui.session == nil {
		return
	}
	entry, ok := ui.session.Current()
	if !ok {
		return
	}
	if err := open(entry.Path); err != nil {
		log.Printf("Error opening %s: %v", entry.Path, err)
		ui.showError(err)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	})
}

// confirmUnsaved runs next, first offering to save pending tag changes
func (ui *RootUI) confirmUnsaved(next func()) {
	if !ui.hasUnsavedChanges() {
		next()
		return
	}
	text := ui.localization.GetText
	dialog.ShowConfirm(text(KeyUnsavedChanges), text(KeySaveBeforeExit), func(save bool) {
		if save {
			if err := ui.saveAll(); err != nil {
				ui.showError(err)
				return
			}
		}
		next()
	}, ui.window)
}

// setNavigationEnabled toggles the tagging controls
func (ui *RootUI) setNavigationEnabled(enabled bool) {
	for _, btn := range []*widget.Button{ui.previousBtn, ui.skipBtn, ui.saveNextBtn} {
		if enabled {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
}

// showError reports err, naming tag file problems distinctly
func (ui *RootUI) showError(err error) {
	log.Printf("Error: %v", err)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		err = fmt.Errorf("%s: %w", ui.localization.GetText(KeyImageRoot), err)
	case errors.Is(err, tagstore.ErrFormat), errors.Is(err, tagstore.ErrIO):
		err = fmt.Errorf("%s: %w", ui.localization.GetText(KeyTagsFile), err)
	case errors.Is(err, gallery.ErrInvalidModuleID):
		err = errors.New(ui.localization.GetText(KeyInvalidModuleID))
	}
	dialog.ShowError(err, ui.window)
}

// showNotification displays a message in the notification panel under the top bar
func (ui *RootUI) showNotification(message string, importance widget.Importance) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	ui.notificationLabel.Importance = importance
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil {
		return
	}
	ui.notificationContainer.Hide()
}
