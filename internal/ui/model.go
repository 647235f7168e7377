// Package ui implements the interactive terminal front end: a search
// form, a distance-sorted result list, and a per-resource detail view.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chicagofoodaccess/pantry-terminal/internal/catalog"
	"github.com/chicagofoodaccess/pantry-terminal/internal/geocoding"
	"github.com/chicagofoodaccess/pantry-terminal/internal/hours"
	"github.com/chicagofoodaccess/pantry-terminal/internal/models"
	"github.com/chicagofoodaccess/pantry-terminal/internal/search"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSearch  AppState = iota // Location search form
	StateResults                 // Filtered, distance-sorted result list
	StateDetail                  // Single resource detail view
	StateError                   // Fatal error state
)

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	// Search form
	searchInput textinput.Model
	geocoder    *geocoding.Geocoder
	searching   bool
	searchErr   string // inline "couldn't find that location" message
	lastQuery   string

	// Data
	catalog  *catalog.Catalog
	criteria search.Criteria
	results  []search.Result

	// Results view
	resultList  list.Model
	textFilter  textinput.Model
	filterFocus bool
	radiusIndex int

	// Detail view
	selected *search.Result
}

// NewModel creates the application model. initialLocation, when
// non-empty, is submitted as a search on startup.
func NewModel(cat *catalog.Catalog, geocoder *geocoding.Geocoder, initialLocation string, radiusMiles float64) Model {
	ti := textinput.New()
	ti.Placeholder = "Address or ZIP (e.g. 60637 or Lincoln Park, Chicago)"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 56
	ti.SetValue(initialLocation)

	tf := textinput.New()
	tf.Placeholder = "name or address"
	tf.CharLimit = 60
	tf.Width = 30

	return Model{
		state:       StateSearch,
		searchInput: ti,
		textFilter:  tf,
		geocoder:    geocoder,
		catalog:     cat,
		criteria:    search.DefaultCriteria(),
		radiusIndex: radiusIndexFor(radiusMiles),
	}
}

// radiusIndexFor maps a requested radius onto the allowed set,
// defaulting to 1 mile.
func radiusIndexFor(radiusMiles float64) int {
	for i, r := range search.AllowedRadii {
		if r == radiusMiles {
			return i
		}
	}
	for i, r := range search.AllowedRadii {
		if r == search.DefaultRadiusMiles {
			return i
		}
	}
	return 0
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	if strings.TrimSpace(m.searchInput.Value()) != "" {
		return tea.Batch(textinput.Blink, m.submitSearch())
	}
	return textinput.Blink
}

// submitSearch kicks off geocoding for the current form value. No-op
// when a search is already outstanding.
func (m *Model) submitSearch() tea.Cmd {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" || m.searching {
		return nil
	}
	m.searching = true
	m.searchErr = ""
	return resolveLocation(m.geocoder, query)
}

// refilter reruns the engine against the current criteria and rebuilds
// the visible list.
func (m *Model) refilter() {
	m.criteria.RadiusMiles = search.AllowedRadii[m.radiusIndex]
	m.criteria.SearchText = m.textFilter.Value()
	m.results = search.Filter(m.catalog.All(), m.criteria)
	m.resultList = createResultList(m.results, m.listWidth(), m.listHeight())
}

func (m Model) listWidth() int {
	if m.width == 0 {
		return 80
	}
	return m.width - 4
}

func (m Model) listHeight() int {
	if m.height == 0 {
		return 20
	}
	return m.height - 10
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateResults {
			m.resultList.SetSize(m.listWidth(), m.listHeight())
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case geocodeResultMsg:
		m.searching = false
		if msg.center == nil {
			// Leave any previous result set untouched.
			m.searchErr = "We couldn't find that location. Try a different address or ZIP."
			m.state = StateSearch
			return m, nil
		}
		// A newer search simply overwrites the previous center.
		m.lastQuery = msg.query
		m.criteria.SearchCenter = msg.center
		m.refilter()
		m.state = StateResults
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateSearch:
			return m.handleSearchKey(keyMsg)
		case StateResults:
			return m.handleResultsKey(keyMsg)
		case StateDetail:
			return m.handleDetailKey(keyMsg)
		case StateError:
			m.state = StateSearch
			m.err = nil
			m.searchInput.Focus()
			return m, textinput.Blink
		}
	}

	switch m.state {
	case StateSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case StateResults:
		m.resultList, cmd = m.resultList.Update(msg)
	}

	return m, cmd
}

// handleSearchKey handles keyboard input on the search form
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Typing clears the previous inline error
	if m.searchErr != "" && msg.Type != tea.KeyEnter {
		m.searchErr = ""
	}

	switch msg.Type {
	case tea.KeyEnter:
		if cmd := m.submitSearch(); cmd != nil {
			return m, cmd
		}
		return m, nil

	case tea.KeyTab:
		m.radiusIndex = (m.radiusIndex + 1) % len(search.AllowedRadii)
		return m, nil

	case tea.KeyShiftTab:
		m.radiusIndex = (m.radiusIndex - 1 + len(search.AllowedRadii)) % len(search.AllowedRadii)
		return m, nil

	case tea.KeyEsc:
		// Back to existing results, if a search already resolved.
		if m.criteria.SearchCenter != nil {
			m.state = StateResults
		}
		return m, nil
	}

	if m.searching {
		// Form is locked while the geocode call is outstanding.
		return m, nil
	}

	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleResultsKey handles keyboard input on the result list
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.filterFocus {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.filterFocus = false
			m.textFilter.Blur()
			return m, nil
		}
		m.textFilter, cmd = m.textFilter.Update(msg)
		m.refilter()
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "o":
		m.criteria.OpenToday = !m.criteria.OpenToday
		m.refilter()
		return m, nil

	case "d":
		if m.criteria.HasDelivery == nil {
			yes := true
			m.criteria.HasDelivery = &yes
		} else {
			m.criteria.HasDelivery = nil
		}
		m.refilter()
		return m, nil

	case "r":
		m.radiusIndex = (m.radiusIndex + 1) % len(search.AllowedRadii)
		m.refilter()
		return m, nil

	case "/":
		m.filterFocus = true
		m.textFilter.Focus()
		return m, textinput.Blink

	case "s":
		m.state = StateSearch
		m.searchInput.Focus()
		return m, textinput.Blink
	}

	switch msg.Type {
	case tea.KeyEnter:
		if item, ok := m.resultList.SelectedItem().(resultItem); ok {
			result := item.result
			m.selected = &result
			m.state = StateDetail
		}
		return m, nil

	case tea.KeyEsc:
		m.state = StateSearch
		m.searchInput.Focus()
		return m, textinput.Blink
	}

	m.resultList, cmd = m.resultList.Update(msg)
	return m, cmd
}

// handleDetailKey handles keyboard input on the detail view
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s":
		m.selected = nil
		m.state = StateSearch
		m.searchInput.Focus()
		return m, textinput.Blink
	}

	switch msg.Type {
	case tea.KeyEsc, tea.KeyBackspace, tea.KeyEnter:
		m.selected = nil
		m.state = StateResults
	}
	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateSearch:
		return m.viewSearch()
	case StateResults:
		return m.viewResults()
	case StateDetail:
		return m.viewDetail()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewSearch renders the location search form
func (m Model) viewSearch() string {
	title := titleStyle.Render("Pantry Terminal")
	subtitle := mutedStyle.Render("Find food pantries and delivery programs near you")

	searchBox := paneStyle.Width(64).Render(m.searchInput.View())

	radius := labelStyle.Render("Within: ") + m.radiusLine()

	var status string
	switch {
	case m.searching:
		status = accentStyle.Render("Searching…")
	case m.searchErr != "":
		status = errorStyle.Render(m.searchErr)
	}

	help := helpStyle.Render("enter: search • tab: radius • ctrl+c: quit")
	if m.criteria.SearchCenter != nil {
		help = helpStyle.Render("enter: search • tab: radius • esc: back to results • ctrl+c: quit")
	}

	sections := []string{title, subtitle, "", searchBox, radius}
	if status != "" {
		sections = append(sections, "", status)
	}
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// radiusLine renders the allowed radii with the active one highlighted
func (m Model) radiusLine() string {
	var parts []string
	for i, r := range search.AllowedRadii {
		label := formatRadius(r)
		if i == m.radiusIndex {
			parts = append(parts, toggleOnStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, toggleOffStyle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

func formatRadius(r float64) string {
	if r == 0.5 {
		return "0.5 mi"
	}
	return fmt.Sprintf("%.0f mi", r)
}

// viewResults renders the result list with the active filter summary
func (m Model) viewResults() string {
	header := titleStyle.Render(fmt.Sprintf("%d within %s of %q",
		len(m.results), formatRadius(search.AllowedRadii[m.radiusIndex]), m.lastQuery))

	toggles := strings.Join([]string{
		renderToggle("o", "open today", m.criteria.OpenToday),
		renderToggle("d", "delivery", m.criteria.HasDelivery != nil),
		m.renderTextFilter(),
	}, "   ")

	var body string
	if len(m.results) == 0 {
		body = mutedStyle.Render(fmt.Sprintf(
			"No pantries within %s. Try a bigger radius or a different address.",
			formatRadius(search.AllowedRadii[m.radiusIndex])))
	} else {
		body = m.resultList.View()
	}

	help := helpStyle.Render("enter: details • o/d: filters • r: radius • /: text filter • s: new search • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, toggles, "", body, help)
}

func renderToggle(key, label string, on bool) string {
	if on {
		return toggleOnStyle.Render(fmt.Sprintf("[x] %s (%s)", label, key))
	}
	return toggleOffStyle.Render(fmt.Sprintf("[ ] %s (%s)", label, key))
}

func (m Model) renderTextFilter() string {
	if m.filterFocus {
		return labelStyle.Render("filter: ") + m.textFilter.View()
	}
	if m.textFilter.Value() != "" {
		return labelStyle.Render("filter: ") + valueStyle.Render(m.textFilter.Value())
	}
	return toggleOffStyle.Render("filter: (/)")
}

// viewDetail renders a single resource
func (m Model) viewDetail() string {
	if m.selected == nil {
		return ""
	}
	r := m.selected

	title := titleStyle.Render(r.Name)
	distance := accentStyle.Render(fmt.Sprintf("%.1f miles away", r.DistanceMiles))
	if hours.IsOpenNow(r.Hours) {
		distance += "  " + toggleOnStyle.Render("Open now")
	}

	var sections []string
	sections = append(sections, title, distance, "")

	if r.Address.FullAddress != "" {
		sections = append(sections, labelStyle.Render("Address")+"  "+valueStyle.Render(r.Address.FullAddress))
	}
	if r.Description != "" {
		sections = append(sections, labelStyle.Render("About")+"    "+valueStyle.Render(r.Description))
	}
	sections = append(sections, "", labelStyle.Render("Hours"), m.renderHours(r.Hours))

	if contact := renderContact(r.Contact); contact != "" {
		sections = append(sections, "", labelStyle.Render("Contact"), contact)
	}

	if r.RequiresReferral != nil && *r.RequiresReferral {
		sections = append(sections, "", accentStyle.Render("Referral required — call ahead before visiting."))
	}
	if r.HasDelivery {
		sections = append(sections, accentStyle.Render("Offers home delivery."))
	}

	help := helpStyle.Render("esc: back to results • s: new search • q: quit")
	sections = append(sections, help)

	return paneStyle.Width(m.listWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderHours renders the weekly schedule, one row per day
func (m Model) renderHours(week models.WeeklySchedule) string {
	if week == nil {
		return mutedStyle.Render("  Hours not published — contact the pantry directly.")
	}

	var rows []string
	for _, day := range models.DayKeys {
		label := fmt.Sprintf("  %-10s", capitalize(day))
		if window, ok := week[day]; ok && window.IsOpen {
			rows = append(rows, label+valueStyle.Render(fmt.Sprintf("%s – %s", window.Open, window.Close)))
		} else {
			rows = append(rows, label+mutedStyle.Render("—"))
		}
	}
	return strings.Join(rows, "\n")
}

func renderContact(c models.Contact) string {
	var rows []string
	if c.Phone != "" {
		rows = append(rows, "  "+valueStyle.Render(c.Phone))
	}
	if c.Email != "" {
		rows = append(rows, "  "+valueStyle.Render(c.Email))
	}
	if c.Website != "" {
		rows = append(rows, "  "+valueStyle.Render(c.Website))
	}
	if c.ContactName != "" {
		rows = append(rows, "  "+mutedStyle.Render("Ask for ")+valueStyle.Render(c.ContactName))
	}
	return strings.Join(rows, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("Error")

	errorMsg := "An unknown error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	help := helpStyle.Render("Press any key to return to search • ctrl+c: quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorMsg, "", help)
}
