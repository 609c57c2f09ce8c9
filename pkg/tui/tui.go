package tui

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unowned-ai/mindlog/pkg/journal"
	"github.com/unowned-ai/mindlog/pkg/wellbeing"
)

type model struct {
	journals []journal.Journal
	history  *wellbeing.History
	days     []wellbeing.Record // newest first

	currentDay dayDetailsMsg // Currently loaded day details

	columnFocus  int // 0 = journals, 1 = days, 2 = day details
	width        int // Current terminal width (for layout)
	height       int // Current terminal height
	dynamicWidth bool
	err          error

	mcpUsage bool

	db         *sql.DB
	dbFilename string

	quitting bool

	journalCursor           int // Index of selected journal
	journalCreating         bool
	journalCreatingStep     int // 0 = editing journal name, 1 = editing journal description
	journalCreatingError    string
	journalNameInput        textinput.Model
	journalDescInput        textinput.Model
	journalDeleting         bool
	journalDeleteConfirmIdx int // 0 = "Yes" selected, 1 = "No"

	dayCursor     int // Index of selected day
	detailsScroll int

	showStats bool
	fieldIdx  int // Index into wellbeing.Fields

	// Animation state
	marqueeOffset int
	marqueeTimer  int
}

// Initialize TUI model
func initModel(db *sql.DB, dynamicWidth bool) model {
	// Fetch database file path with name
	_, file := getDbPragmaList(db)

	// Initialize text input fields for the new journal form
	jtname := textinput.New()
	jtname.Placeholder = "Journal Name"
	jtname.Focus() // focus name field initially
	jtname.CharLimit = 256

	jtdesc := textinput.New()
	jtdesc.Placeholder = "Whose days are logged here (optional)"
	jtdesc.CharLimit = 512

	dbFilename := filepath.Base(file)
	if file == "" {
		dbFilename = ":memory:"
	}

	return model{
		journals: []journal.Journal{},
		days:     []wellbeing.Record{},

		dynamicWidth: dynamicWidth,

		db:         db,
		dbFilename: dbFilename,

		journalNameInput: jtname,
		journalDescInput: jtdesc,
	}
}

// Execute commands concurrently with no ordering guarantees during initialization
func (m model) Init() tea.Cmd {
	return tea.Batch(
		listJournals(m.db),
		tea.Tick(marqueeTickDuration, func(t time.Time) tea.Msg {
			return t
		}),
	)
}

func (m model) selectedJournal() (journal.Journal, bool) {
	if m.journalCursor < 0 || m.journalCursor >= len(m.journals) {
		return journal.Journal{}, false
	}
	return m.journals[m.journalCursor], true
}

func (m model) selectDay(i int) (model, tea.Cmd) {
	j, ok := m.selectedJournal()
	if !ok || i < 0 || i >= len(m.days) {
		return m, nil
	}
	m.dayCursor = i
	m.detailsScroll = 0
	return m, getDayDetails(m.db, j.ID, m.days[i].Date())
}

func (m model) selectJournal(i int) (model, tea.Cmd) {
	m.journalCursor = i
	m.currentDay = dayDetailsMsg{}
	j, ok := m.selectedJournal()
	if !ok {
		m.history = nil
		m.days = []wellbeing.Record{}
		return m, nil
	}
	return m, listDays(m.db, j.ID)
}

// Processes events like window resize, errors, loaded data, and key presses
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Save the new window size in the model for responsive layout
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case error:
		m.err = msg
		return m, nil

	case []journal.Journal:
		// When journals are loaded from DB, store them in model
		m.journals = msg
		if len(m.journals) > 0 {
			if m.journalCursor >= len(m.journals) {
				m.journalCursor = 0
			}
			return m, listDays(m.db, m.journals[m.journalCursor].ID)
		}
		return m, nil

	case daysMsg:
		// Drop results for a journal that is no longer selected
		if j, ok := m.selectedJournal(); !ok || j.ID != msg.journalID {
			return m, nil
		}
		m.history = msg.history
		records := msg.history.Records()
		m.days = make([]wellbeing.Record, 0, len(records))
		for i := len(records) - 1; i >= 0; i-- {
			m.days = append(m.days, records[i])
		}
		m.dayCursor = 0
		m.detailsScroll = 0
		m.currentDay = dayDetailsMsg{}
		return m, nil

	case dayDetailsMsg:
		// Store the full day, tags and advice in the model for the detail view
		m.currentDay = msg
		return m, nil

	// Handle key presses for navigation and input
	case tea.KeyMsg:
		if m.journalCreating {
			return m.updateJournalCreating(msg)
		}
		if m.journalDeleting {
			return m.updateJournalDeleting(msg)
		}

		// Root Navigation Mode
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			// Exit alt screen before quitting so the goodbye message displays
			return m, tea.Sequence(tea.ExitAltScreen, tea.Quit)

		case "up", "k":
			// Move selection up (stop at top)
			switch m.columnFocus {
			case 0:
				if m.journalCursor > 0 {
					return m.selectJournal(m.journalCursor - 1)
				}
			case 1:
				if m.dayCursor > 0 {
					return m.selectDay(m.dayCursor - 1)
				}
			case 2:
				if m.detailsScroll > 0 {
					m.detailsScroll--
				}
			}

		case "down", "j":
			// Move selection down (stop at last item)
			switch m.columnFocus {
			case 0:
				if m.journalCursor < len(m.journals)-1 {
					return m.selectJournal(m.journalCursor + 1)
				}
			case 1:
				if m.dayCursor < len(m.days)-1 {
					return m.selectDay(m.dayCursor + 1)
				}
			case 2:
				m.detailsScroll++
			}

		case "right", "l":
			// Move selection right to other column
			switch m.columnFocus {
			case 0:
				if len(m.days) > 0 {
					// Moved focus to days - auto-select the newest day and load it
					m.columnFocus++
					return m.selectDay(0)
				}
			case 1:
				m.columnFocus++
				m.detailsScroll = 0
			}
			return m, nil

		case "left", "h":
			// Move selection left to other column
			if m.columnFocus > 0 {
				m.columnFocus--
			}
			return m, nil

		case "s":
			m.showStats = !m.showStats
			m.detailsScroll = 0
			return m, nil

		case "f":
			if m.showStats {
				m.fieldIdx = (m.fieldIdx + 1) % len(wellbeing.Fields)
				m.detailsScroll = 0
			}
			return m, nil

		case "w":
			m.dynamicWidth = !m.dynamicWidth
			return m, nil

		case "r":
			return m, listJournals(m.db)

		case "n":
			m.journalCreatingStep = 0
			m.journalCreatingError = ""
			m.journalNameInput.Reset()
			m.journalDescInput.Reset()
			m.journalDescInput.Blur()  // Ensure description input is not focused
			m.journalNameInput.Focus() // Make sure to focus the name input

			m.journalCreating = true

		case "d":
			if m.columnFocus == 0 && len(m.journals) > 0 {
				m.journalDeleteConfirmIdx = 1
				m.journalDeleting = true
			}
			return m, nil
		}

	case time.Time:
		// Update marquee animation every x ticks (adjust for speed)
		m.marqueeTimer++
		if m.marqueeTimer >= 10 {
			m.marqueeTimer = 0
			m.marqueeOffset++
		}
		return m, tea.Tick(marqueeTickDuration, func(t time.Time) tea.Msg {
			return t
		})
	}

	return m, nil
}

// Creating New Journal Mode
func (m model) updateJournalCreating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.journalCreatingStep == 0 {
			// Validate that the journal name is not empty
			if strings.TrimSpace(m.journalNameInput.Value()) == "" {
				m.journalCreatingError = "Journal name cannot be empty"
				return m, nil
			}

			// Press Enter on name field -> move to description field
			m.journalCreatingError = ""
			m.journalCreatingStep = 1
			m.journalNameInput.Blur()
			m.journalDescInput.Focus()
			return m, nil
		}

		// Press Enter on description field -> submit the form (create journal)
		j, err := journal.CreateJournal(context.Background(), m.db,
			strings.TrimSpace(m.journalNameInput.Value()), m.journalDescInput.Value())
		if errors.Is(err, journal.ErrJournalExists) {
			// Back to the name field so it can be changed
			m.journalCreatingError = err.Error()
			m.journalCreatingStep = 0
			m.journalDescInput.Blur()
			m.journalNameInput.Focus()
			return m, nil
		}
		if err != nil {
			m.err = err
			return m, nil
		}

		// Exit create mode and reset form inputs
		m.journalCreating = false
		m.journalCreatingStep = 0
		m.journalNameInput.Reset()
		m.journalDescInput.Reset()

		// Prepend new journal to the list and focus it
		m.journals = append([]journal.Journal{j}, m.journals...)
		m.columnFocus = 0
		return m.selectJournal(0)

	case tea.KeyEsc:
		// Cancel journal creation and reset form inputs
		m.journalCreating = false
		m.journalCreatingStep = 0
		m.journalNameInput.Reset()
		m.journalDescInput.Reset()
		return m, nil
	}

	// Route character input to the appropriate text field
	var cmd tea.Cmd
	if m.journalCreatingStep == 0 {
		m.journalNameInput, cmd = m.journalNameInput.Update(msg)
	} else {
		m.journalDescInput, cmd = m.journalDescInput.Update(msg)
	}
	return m, cmd
}

// Deleting Journal Mode
func (m model) updateJournalDeleting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.journalDeleteConfirmIdx = 0

	case "down", "j":
		m.journalDeleteConfirmIdx = 1

	case "enter":
		m.journalDeleting = false
		if m.journalDeleteConfirmIdx != 0 {
			// Chosen No, cancel deletion
			return m, nil
		}

		// Confirmed deletion of selected journal, its days go with it
		journalID := m.journals[m.journalCursor].ID
		if err := journal.DeleteJournal(context.Background(), m.db, journalID); err != nil {
			m.err = err
			return m, nil
		}
		oldIndex := m.journalCursor
		m.journals = append(m.journals[:oldIndex], m.journals[oldIndex+1:]...)

		if oldIndex > 0 {
			oldIndex--
		}
		return m.selectJournal(oldIndex)

	case "esc":
		// Cancel deletion on Escape
		m.journalDeleting = false
	}
	return m, nil
}

// Assembles the UI string for each frame
func (m model) View() string {
	if m.quitting {
		return "Closing mindlog... Take care.\n"
	}
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}

	titleBar := titleStyle.Width(m.width).Render("Mindlog - daily well-being journal")

	leftWidth, middleWidth, rightWidth := m.dynamicColumnWidth()

	// Update input widths to match right pane
	m.journalNameInput.Width = rightWidth - bordersAndPaddingWidth
	m.journalDescInput.Width = rightWidth - bordersAndPaddingWidth

	// Calculate heights for the split panels
	quarterHeight := (m.height - bordersAndPaddingWidth) / 4

	journalsPanel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, true, false).
		BorderForeground(lipgloss.Color(colorGray)).
		Padding(0, 2).
		Width(leftWidth).Height(quarterHeight * 3).
		Render(m.journalsView(leftWidth))

	infoPanel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(colorGray)).
		Padding(1, 2).
		Width(leftWidth).Height(quarterHeight).
		Render(m.infoView())

	leftPanel := lipgloss.JoinVertical(lipgloss.Left, journalsPanel, infoPanel)

	// Middle panel: border on the right side only
	middlePanel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(lipgloss.Color(colorGray)).
		Padding(0, 2).
		Width(middleWidth).Height(m.height - panelHeightPadding).
		Render(m.daysView(middleWidth))

	// Right panel: no border (open content area)
	rightPanel := lipgloss.NewStyle().Padding(0, 2).
		Width(rightWidth).Height(m.height - panelHeightPadding).
		Render(m.detailsView(rightWidth))

	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, middlePanel, rightPanel)

	footerText := "\n↑/↓ navigate • ←/→ switch column • s statistics • f field • n new journal • d delete • w layout • r reload • q quit"
	footerBar := footerStyle.Width(m.width).Render(footerText)

	return titleBar + "\n\n" + columns + footerBar
}

func (m model) journalsView(width int) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Width(width - bordersAndPaddingWidth).Render("  Journals"))
	b.WriteString("\n\n")

	if len(m.journals) == 0 {
		b.WriteString("No journals yet. Press 'n' to create new.\n")
		return b.String()
	}

	for i, j := range m.journals {
		pointer := generateLinePointer(m.journalCursor == i && m.columnFocus == 0, 2)
		// Available width for journal name (panel width - pointer - padding - border)
		availableWidth := width - len(pointer) - 4 - 1

		name := j.Name
		itemStyle := inactiveStyle
		if m.journalCursor == i {
			itemStyle = selectedStyle
			if len(name) > availableWidth {
				name = m.marqueeText(name, availableWidth)
			}
		} else {
			name = truncate(name, availableWidth)
		}
		if !j.Active {
			name += " (inactive)"
		}
		name = lipgloss.NewStyle().MaxWidth(availableWidth).Render(name)
		b.WriteString(pointer + itemStyle.Render(name) + "\n")
	}
	return b.String()
}

func (m model) infoView() string {
	var mcpServerStatus, databaseStatus int
	if m.mcpUsage {
		mcpServerStatus = 1
	}
	if m.dbFilename != "" {
		databaseStatus = 1
	}

	return fmt.Sprintf("MCP server status: %v\nDatabase file: %v\nLogged days: %v\n",
		TextStatusColorize(strconv.FormatBool(m.mcpUsage), mcpServerStatus),
		TextStatusColorize(m.dbFilename, databaseStatus),
		TextStatusColorize(strconv.Itoa(len(m.days)), 1))
}

func (m model) daysView(width int) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Width(width - bordersAndPaddingWidth).Render("  Days"))
	b.WriteString("\n\n")

	if _, ok := m.selectedJournal(); !ok {
		b.WriteString("  No journal selected.\n")
		return b.String()
	}
	if len(m.days) == 0 {
		b.WriteString("  No days logged yet.\n")
		return b.String()
	}

	for i, r := range m.days {
		pointer := generateLinePointer(i == m.dayCursor && m.columnFocus == 1, 2)
		itemStyle := inactiveStyle
		if i == m.dayCursor && m.columnFocus != 0 {
			itemStyle = selectedStyle
		}

		availableWidth := width - len(pointer) - 4 - 1
		line := truncate(fmt.Sprintf("%s %-9s %4.1f", r.Key(), r.Mood(), r.Index()), availableWidth)
		line = lipgloss.NewStyle().MaxWidth(availableWidth).Render(line)
		b.WriteString(pointer + itemStyle.Render(line) + "\n")
	}
	return b.String()
}

func (m model) detailsView(width int) string {
	var b strings.Builder

	subtitle := "Day"
	switch {
	case m.journalCreating:
		subtitle = "Create New Journal"
	case m.journalDeleting:
		subtitle = "Delete Journal"
	case m.showStats:
		subtitle = "Statistics: " + wellbeing.Fields[m.fieldIdx].Name
	}
	b.WriteString(subtitleStyle.Width(width - bordersAndPaddingWidth).Render(subtitle))
	b.WriteString("\n\n")

	switch {
	case m.journalCreating:
		// Show the form for creating a new journal
		b.WriteString("Name: " + m.journalNameInput.View() + "\n")
		b.WriteString("Description: " + m.journalDescInput.View() + "\n\n")
		b.WriteString("(enter to submit, esc to cancel)")

		if m.journalCreatingError != "" {
			b.WriteString("\n\n" + textRedStyle.Render(m.journalCreatingError) + "\n")
		}
		return b.String()

	case m.journalDeleting:
		// Show delete confirmation prompt
		b.WriteString("Name: " + textRedStyle.Render(m.journals[m.journalCursor].Name) + "\n")
		b.WriteString(fmt.Sprintf("Logged days removed with it: %d\n\n", len(m.days)))
		yesOpt, noOpt := "Yes", "No"
		if m.journalDeleteConfirmIdx == 0 {
			yesOpt = dangerSelectedStyle.Render(" >" + yesOpt)
			noOpt = inactiveStyle.Render("  " + noOpt)
		} else {
			yesOpt = inactiveStyle.Render("  " + yesOpt)
			noOpt = selectedStyle.Render(" >" + noOpt)
		}
		b.WriteString(fmt.Sprintf("%s\n%s\n\n", yesOpt, noOpt))
		b.WriteString("(enter to confirm, esc to cancel, up/down to switch)")
		return b.String()
	}

	if _, ok := m.selectedJournal(); !ok {
		b.WriteString("Select a journal to view details.")
		return b.String()
	}

	var body string
	if m.showStats {
		body = m.statsBody()
	} else if !m.currentDay.record.Date().IsZero() {
		body = m.dayBody()
	} else {
		body = "Select a day to view details."
	}

	// Scroll the body when the details column is focused
	lines := strings.Split(body, "\n")
	offset := m.detailsScroll
	if offset > len(lines)-1 {
		offset = len(lines) - 1
	}
	b.WriteString(strings.Join(lines[offset:], "\n"))
	return b.String()
}

func (m model) dayBody() string {
	r := m.currentDay.record
	var b strings.Builder

	label := func(s string) string { return elemTitleHeaderStyle.Render(s) }

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(label("Date: ")+textStyle.Render(r.Key())) + "\n\n")
	b.WriteString(label("Mood: ") + textStyle.Render(fmt.Sprintf("%s (%d/10)", r.Mood(), r.MoodRating())) + "\n")
	b.WriteString(label("Mental Health Index: ") +
		TextStatusColorize(fmt.Sprintf("%.1f/10", r.Index()), indexStatus(r.Index())) + "\n")
	b.WriteString(label("Screen Time: ") + textStyle.Render(fmt.Sprintf("%d hours", r.ScreenHours())) + "\n")
	b.WriteString(label("Sleep Time: ") + textStyle.Render(fmt.Sprintf("%d hours", r.SleepHours())) + "\n")

	tagsLine := "-"
	if len(m.currentDay.tags) > 0 {
		tagsLine = strings.Join(m.currentDay.tags, " ")
	}
	b.WriteString(label("Tags: ") + multiElemsTitleStyle.Render(tagsLine) + "\n\n")

	if text := r.Journal(); text != "" {
		b.WriteString(label("Journal Entry:") + "\n" + textStyle.Render(text) + "\n\n")
	}

	advice := m.currentDay.advice
	b.WriteString(textStyle.Render(advice.Verdict) + "\n\n")
	b.WriteString(textStyle.Render(advice.Nutrition) + "\n\n")
	b.WriteString(textStyle.Render(advice.Workout))
	return b.String()
}

func (m model) statsBody() string {
	view := fieldStatistics(m.history, wellbeing.Fields[m.fieldIdx])
	if view.empty {
		return "No logged days yet, nothing to summarize."
	}

	var b strings.Builder
	b.WriteString(multiElemsTitleStyle.Render("Weekly averages") + "\n")
	for _, w := range view.stats.Weekly {
		b.WriteString(fmt.Sprintf("%-13s %6.2f %s  (%d)\n",
			wellbeing.WeekLabel(w.Week), w.Average, view.stats.Unit, w.Count))
	}
	b.WriteString("\n" + textStyle.Render(wellbeing.FormatStatistics(view.stats)))
	return b.String()
}

// ShowTUI creates and starts the Bubble Tea TUI.
func ShowTUI(db *sql.DB, dynamicWidth bool) error {
	p := tea.NewProgram(initModel(db, dynamicWidth), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
