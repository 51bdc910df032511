package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lexibase/cefrlex-cli/internal/adapters/driving/tui/styles"
	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

// posLevel is one row of the lookup result table.
type posLevel struct {
	tag   domain.POSTag
	level float64
}

// lookupDone carries the outcome of a word lookup back into Update.
type lookupDone struct {
	word    string
	entries []posLevel
	average domain.CEFRLevel
	found   bool
	err     error
}

// App is the interactive word lookup application following the Elm
// architecture. It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// input is the word query field.
	input textinput.Model

	// result holds the last completed lookup, nil before the first one.
	result *lookupDone

	// searching is true while a lookup command is in flight.
	searching bool

	// width and height are terminal dimensions.
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	ti := textinput.New()
	ti.Placeholder = "Enter a word..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		input:  ti,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("cefrlex - Word Levels"),
		textinput.Blink,
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "enter":
			word := strings.TrimSpace(a.input.Value())
			if word == "" || a.searching {
				return a, nil
			}
			a.searching = true
			return a, a.lookupCmd(word)
		}

	case lookupDone:
		a.searching = false
		a.result = &msg
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// lookupCmd resolves the word's per-POS levels and its averaged band.
func (a *App) lookupCmd(word string) tea.Cmd {
	return func() tea.Msg {
		levels, err := a.ports.Level.POSLevelMapFor(a.ctx, word)
		if err != nil {
			return lookupDone{word: word, err: err}
		}

		entries := make([]posLevel, 0, len(levels))
		for tag, level := range levels {
			entries = append(entries, posLevel{tag: tag, level: level})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].tag.ID() < entries[j].tag.ID()
		})

		average, found, err := a.ports.Level.AverageCEFRFor(a.ctx, word)
		if err != nil {
			return lookupDone{word: word, err: err}
		}

		return lookupDone{
			word:    word,
			entries: entries,
			average: average,
			found:   found,
		}
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("cefrlex"))
	b.WriteString("\n\n")

	label := a.styles.Subtitle.Render("Word: ")
	field := a.styles.InputField.Render(a.input.View())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, label, field))
	b.WriteString("\n\n")

	switch {
	case a.searching:
		b.WriteString(a.styles.Muted.Render("Looking up..."))
	case a.result != nil:
		b.WriteString(a.viewResult())
	default:
		b.WriteString(a.styles.Muted.Render("Type a word and press enter."))
	}

	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[enter] lookup  [esc] quit"))
	return b.String()
}

// viewResult renders the last lookup outcome.
func (a *App) viewResult() string {
	r := a.result

	if r.err != nil {
		return a.styles.Error.Render(fmt.Sprintf("Error: %v", r.err))
	}
	if !r.found {
		return a.styles.Muted.Render(fmt.Sprintf("No entries for %q.", r.word))
	}

	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render(r.word))
	b.WriteString("\n")
	for _, e := range r.entries {
		band, err := domain.LevelFromFloat(e.level)
		rendered := fmt.Sprintf("%.1f", e.level)
		if err == nil {
			rendered = fmt.Sprintf("%s (%.1f)", band, e.level)
		}
		line := fmt.Sprintf("  %-5s %s", e.tag.String(), a.styles.Level.Render(rendered))
		b.WriteString(a.styles.Normal.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Normal.Render("  average "))
	b.WriteString(a.styles.Level.Render(r.average.String()))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
