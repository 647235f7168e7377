package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chicagofoodaccess/pantry-terminal/internal/catalog"
	"github.com/chicagofoodaccess/pantry-terminal/internal/config"
	"github.com/chicagofoodaccess/pantry-terminal/internal/geocoding"
	"github.com/chicagofoodaccess/pantry-terminal/internal/ui"
)

func main() {
	location := flag.String("location", "", "Search this address or ZIP on startup (e.g. 60637)")
	radius := flag.Float64("radius", 1, "Initial search radius in miles (0.5, 1, 2, 5, or 10)")
	dataPath := flag.String("data", "", "Path to a pantry dataset JSON file (default: embedded dataset)")
	flag.Parse()

	cfg := config.Load()
	if *dataPath == "" {
		*dataPath = cfg.DataPath
	}

	cat, err := catalog.Load(*dataPath)
	if err != nil {
		fmt.Printf("Error loading pantry dataset: %v\n", err)
		os.Exit(1)
	}

	var provider geocoding.Provider
	if cfg.MapboxToken != "" {
		provider = geocoding.NewMapboxProvider(cfg.MapboxToken)
	}
	geocoder := geocoding.NewGeocoder(provider)

	p := tea.NewProgram(ui.NewModel(cat, geocoder, *location, *radius), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
