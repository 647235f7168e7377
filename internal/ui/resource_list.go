package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/chicagofoodaccess/pantry-terminal/internal/hours"
	"github.com/chicagofoodaccess/pantry-terminal/internal/search"
)

// resultItem wraps a search result for use in a list
type resultItem struct {
	result search.Result
}

// FilterValue implements list.Item
func (r resultItem) FilterValue() string {
	return r.result.Name + " " + r.result.Address.FullAddress
}

// Title implements list.DefaultItem
func (r resultItem) Title() string {
	return fmt.Sprintf("%s — %.1f mi", r.result.Name, r.result.DistanceMiles)
}

// Description implements list.DefaultItem
func (r resultItem) Description() string {
	var parts []string

	if r.result.Address.Street != "" {
		parts = append(parts, r.result.Address.Street)
	} else if r.result.Address.FullAddress != "" {
		parts = append(parts, r.result.Address.FullAddress)
	}

	if label := hours.TodayLabel(r.result.Hours); label != "" {
		parts = append(parts, "today "+label)
	}
	if r.result.HasDelivery {
		parts = append(parts, "delivery")
	}

	return strings.Join(parts, " · ")
}

// createResultList creates a list.Model from search results. The list's
// built-in fuzzy filter stays off; free-text narrowing goes through the
// filter engine so the list always mirrors the engine's output.
func createResultList(results []search.Result, width, height int) list.Model {
	items := make([]list.Item, len(results))
	for i, result := range results {
		items[i] = resultItem{result: result}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Nearby Food Resources"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	return l
}
