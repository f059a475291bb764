package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/gallery-tagger/internal/config"
	"github.com/ytget/gallery-tagger/internal/model"
	"github.com/ytget/gallery-tagger/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.gallery-tagger"
	AppName = "Gallery Tagger"

	WindowWidth  = 1100
	WindowHeight = 800
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	if err := config.LoadEnvironment(); err != nil {
		log.Printf("failed to load environment: %v", err)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	settings.ApplyEnvironment()

	groups := loadTagGroups(settings.GetTagGroupsFile())

	root := ui.NewRootUI(myWindow, myApp, settings, groups)
	root.OpenImageRoot()

	myWindow.ShowAndRun()
}

// loadTagGroups reads the vocabulary file, falling back to the built-in groups
func loadTagGroups(path string) model.TagGroups {
	if path == "" {
		return model.DefaultTagGroups()
	}
	groups, err := model.LoadTagGroups(path)
	if err != nil {
		log.Printf("failed to load tag groups from %s, using defaults: %v", path, err)
		return model.DefaultTagGroups()
	}
	log.Printf("loaded %d tag groups from %s", len(groups), path)
	return groups
}
