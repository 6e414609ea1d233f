// Package ui provides the console view of the playback state.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"vrcsync/internal/playback"
)

const defaultRefresh = 500 * time.Millisecond

// Options configure the console view.
type Options struct {
	Store        *playback.Store
	ClientURL    string
	Fudge        float64
	ThemeName    string
	RefreshEvery time.Duration

	// OpenBrowser is invoked when the user presses "o". Nil disables
	// the binding.
	OpenBrowser func()
}

// Model is the root Bubble Tea state for the console view.
type Model struct {
	store       *playback.Store
	clientURL   string
	fudge       float64
	refresh     time.Duration
	openBrowser func()

	theme   Theme
	spinner spinner.Model

	snapshot playback.StateView
	recent   []playback.RecentEvent
	width    int
}

type tickMsg time.Time

// New creates the console view model.
func New(opts Options) Model {
	refresh := opts.RefreshEvery
	if refresh <= 0 {
		refresh = defaultRefresh
	}
	fudge := opts.Fudge
	if fudge < 0 {
		fudge = playback.DefaultFudge
	}

	theme := GetTheme(opts.ThemeName)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Accent

	return Model{
		store:       opts.Store,
		clientURL:   opts.ClientURL,
		fudge:       fudge,
		refresh:     refresh,
		openBrowser: opts.OpenBrowser,
		theme:       theme,
		spinner:     sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.tick())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tickMsg:
		m.snapshot = m.store.Snapshot(m.fudge)
		m.recent = m.store.Recent()
		return m, m.tick()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "o":
			if m.openBrowser != nil {
				m.openBrowser()
			}
			return m, nil
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("vrcsync"))
	b.WriteString(m.theme.Muted.Render("  VRChat → browser video sync"))
	b.WriteString("\n\n")

	s := m.snapshot
	b.WriteString(m.row("Status", m.renderStatus(s)))
	b.WriteString(m.row("Video", orDash(s.VideoID)))
	b.WriteString(m.row("Source", orDash(s.Source)))
	b.WriteString(m.row("Position", fmtSeconds(s.EstimatedPositionSec)))
	b.WriteString(m.row("Duration", fmtSeconds(s.DurationSec)))
	b.WriteString(m.row("URL", orDash(s.WatchURL)))
	b.WriteString("\n")

	if len(m.recent) > 0 {
		b.WriteString(m.theme.Heading.Render("Recent events"))
		b.WriteString("\n")
		for _, ev := range m.recent {
			line := fmt.Sprintf("%s  %s", ev.At.Format("15:04:05"), ev.Desc)
			b.WriteString(m.theme.Muted.Render(truncate(line, m.width)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Help.Render("[o] open browser  [q] quit"))
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("client: " + m.clientURL))
	b.WriteString("\n")
	return b.String()
}

func (m Model) row(label, value string) string {
	return fmt.Sprintf("%s %s\n", m.theme.Label.Render(fmt.Sprintf("%-9s", label)), value)
}

func (m Model) renderStatus(s playback.StateView) string {
	switch s.Status {
	case playback.StatusPlaying:
		return m.theme.Good.Render(s.Status.String())
	case playback.StatusErrored:
		return m.theme.Bad.Render(s.Status.String())
	case playback.StatusIdle:
		return m.spinner.View() + m.theme.Muted.Render(" waiting for video")
	default:
		return m.theme.Warn.Render(s.Status.String())
	}
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func fmtSeconds(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2fs", *v)
}

func truncate(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

// Run starts the console view and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a playback store")
	}
	p := tea.NewProgram(New(opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Cancellation is a normal shutdown, not a UI failure.
		return nil
	}
	return err
}
