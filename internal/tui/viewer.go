package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth    = 40
	minHeight   = 10
	headerLines = 3 // header + subheader + separator
	footerLines = 2 // error bar + status bar
)

// FrameLoader supplies the frames to show. *sprites.Loader implements it.
type FrameLoader interface {
	Frames(ctx context.Context) ([]string, error)
	Names() []string
}

// Messages

type framesLoadedMsg struct {
	frames []string
	err    error
}

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	First  key.Binding
	Last   key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("l", "right", "n"), key.WithHelp("l/→", "next")),
		Prev:   key.NewBinding(key.WithKeys("h", "left", "p"), key.WithHelp("h/←", "prev")),
		First:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "first")),
		Last:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "last")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Viewer is a Bubble Tea model that pages through loaded frames.
// Frames only change on key presses.
type Viewer struct {
	loader   FrameLoader
	names    []string
	frames   []string
	index    int
	width    int
	height   int
	err      error
	loading  bool
	keys     keyMap
	viewport viewport.Model
}

// NewViewer creates a viewer for the frames of loader.
func NewViewer(loader FrameLoader) Viewer {
	return Viewer{
		loader:   loader,
		names:    loader.Names(),
		loading:  true,
		keys:     defaultKeys(),
		viewport: viewport.New(0, 0),
	}
}

// Err returns the load error, if loading failed.
func (v Viewer) Err() error {
	return v.err
}

// Index returns the position of the frame on screen.
func (v Viewer) Index() int {
	return v.index
}

// Init loads the frames.
func (v Viewer) Init() tea.Cmd {
	return v.loadFrames()
}

func (v Viewer) loadFrames() tea.Cmd {
	return func() tea.Msg {
		frames, err := v.loader.Frames(context.Background())
		return framesLoadedMsg{frames: frames, err: err}
	}
}

// Update handles messages.
func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return v.handleKey(msg)

	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.viewport.Width = msg.Width
		v.viewport.Height = max(0, msg.Height-headerLines-footerLines)
		v.syncViewport()
		return v, nil

	case framesLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.frames = msg.frames
		}
		if v.index >= len(v.frames) {
			v.index = max(0, len(v.frames)-1)
		}
		v.syncViewport()
		return v, nil
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v Viewer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Next):
		if v.index < len(v.frames)-1 {
			v.index++
			v.syncViewport()
		}
		return v, nil

	case key.Matches(msg, v.keys.Prev):
		if v.index > 0 {
			v.index--
			v.syncViewport()
		}
		return v, nil

	case key.Matches(msg, v.keys.First):
		v.index = 0
		v.syncViewport()
		return v, nil

	case key.Matches(msg, v.keys.Last):
		if len(v.frames) > 0 {
			v.index = len(v.frames) - 1
			v.syncViewport()
		}
		return v, nil

	case key.Matches(msg, v.keys.Reload):
		if v.err == nil || v.loading {
			return v, nil
		}
		v.loading = true
		return v, v.loadFrames()
	}

	// Anything else scrolls the viewport.
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *Viewer) syncViewport() {
	if len(v.frames) == 0 {
		v.viewport.SetContent("")
		return
	}
	v.viewport.SetContent(frameStyle.Render(v.frames[v.index]))
	v.viewport.GotoTop()
}

// View renders the viewer.
func (v Viewer) View() string {
	if v.width < minWidth || v.height < minHeight {
		return fmt.Sprintf("\n  Terminal too small (need %dx%d, got %dx%d)\n", minWidth, minHeight, v.width, v.height)
	}

	var b strings.Builder

	b.WriteString(v.renderHeader())
	b.WriteString("\n")
	b.WriteString(v.renderSubheader())
	b.WriteString("\n")
	b.WriteString(subheaderStyle.Render(strings.Repeat("─", v.width)))
	b.WriteString("\n")

	b.WriteString(v.renderBody())
	b.WriteString("\n")

	b.WriteString(v.renderErrorBar())
	b.WriteString("\n")
	b.WriteString(v.renderStatusBar())

	return b.String()
}

func (v Viewer) renderHeader() string {
	title := headerStyle.Render("frogframes")

	right := ""
	if len(v.frames) > 0 {
		right = positionStyle.Render(fmt.Sprintf("frame %d/%d", v.index+1, len(v.frames)))
	}

	gap := v.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

func (v Viewer) renderSubheader() string {
	switch {
	case v.loading:
		return subheaderStyle.Render("Loading frames...")
	case v.err != nil:
		return subheaderStyle.Render("Load failed")
	case v.index < len(v.names):
		return subheaderStyle.Render(v.names[v.index])
	default:
		return ""
	}
}

func (v Viewer) renderBody() string {
	height := v.viewport.Height
	switch {
	case v.loading && len(v.frames) == 0:
		return padLines("  Loading frames...\n", height)
	case len(v.frames) == 0 && v.err == nil:
		return padLines("  No frames configured.\n", height)
	case len(v.frames) == 0:
		return padLines("", height)
	}
	return v.viewport.View()
}

func (v Viewer) renderErrorBar() string {
	if v.err == nil {
		return ""
	}
	return errorStyle.Render("  " + truncate(v.err.Error(), v.width-4))
}

func (v Viewer) renderStatusBar() string {
	bindings := []key.Binding{v.keys.Prev, v.keys.Next, v.keys.First, v.keys.Last}
	if v.err != nil {
		bindings = append(bindings, v.keys.Reload)
	}
	bindings = append(bindings, v.keys.Quit)

	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+":"+h.Desc)
	}
	return statusBarStyle.Render("  " + strings.Join(parts, "  "))
}

// Helpers

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(r[:max(0, maxLen)])
	}
	return string(r[:maxLen-1]) + "…"
}

func padLines(content string, height int) string {
	lines := strings.Count(content, "\n")
	padding := height - lines
	if padding > 0 {
		content += strings.Repeat("\n", padding)
	}
	return content
}
