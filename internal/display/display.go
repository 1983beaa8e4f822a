// Package display renders reports with lipgloss and runs the interactive
// workbench using Bubble Tea.
//
// The [UI] type keeps a status bar and an input prompt at the bottom of
// the terminal. All command output is printed above the rendered area
// via tea.Println, so the prompt never gets garbled. Edits are
// debounced: each one bumps a sequence number and schedules a tick, and
// only the tick carrying the latest number recomputes the recipe.
package display

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultDebounce is the quiet period after an edit before recomputing.
const DefaultDebounce = 250 * time.Millisecond

const prompt = "dough> "

// ── UI ───────────────────────────────────────────────────────────

// UI manages the terminal through Bubble Tea.
//
// Call [NewUI] then [UI.Run] (blocking). [UI.Println] and [UI.Printf]
// may be called from other goroutines at any time.
type UI struct {
	program  *tea.Program
	wb       *Workbench
	debounce time.Duration
	done     atomic.Bool
}

// NewUI creates the display for wb. A non-positive debounce uses
// DefaultDebounce.
func NewUI(wb *Workbench, debounce time.Duration) *UI {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &UI{wb: wb, debounce: debounce}
}

// Println prints a line above the prompt. Thread-safe.
// If the program hasn't started yet, falls back to fmt.Println.
func (u *UI) Println(a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Println(a...)
	} else {
		fmt.Println(a...)
	}
}

// Printf prints formatted text above the prompt. Thread-safe.
func (u *UI) Printf(format string, a ...interface{}) {
	if u.program != nil && !u.done.Load() {
		u.program.Printf(format, a...)
	} else {
		fmt.Printf(format, a...)
	}
}

// Quit tells Bubble Tea to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run() error {
	u.program = tea.NewProgram(newModel(u.wb, u.debounce))
	_, err := u.program.Run()
	u.done.Store(true)
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	wb       *Workbench
	input    textinput.Model
	debounce time.Duration
	seq      int  // bumped on every edit
	waiting  bool // an edit is waiting for its recompute
	width    int
}

// recomputeMsg fires when the debounce period of edit seq ends.
type recomputeMsg struct{ seq int }

func newModel(wb *Workbench, debounce time.Duration) model {
	ti := textinput.New()
	// Use a plain-text prompt so the textinput width math stays correct.
	// Lipgloss-styled prompts add invisible ANSI bytes that break the
	// internal offset/scroll calculations for long input.
	ti.Prompt = prompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = userInputEchoStyle
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60 // updated on first WindowSizeMsg

	return model{wb: wb, input: ti, debounce: debounce, waiting: true}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("doughlab"),
		func() tea.Msg { return recomputeMsg{seq: 0} },
	)
}

// schedule starts the debounce period for edit seq.
func schedule(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return recomputeMsg{seq: seq}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			if strings.TrimSpace(v) == "" {
				return m, nil
			}
			return m.submit(v)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > len(prompt) {
			m.input.Width = msg.Width - len(prompt)
		}
		return m, nil

	case recomputeMsg:
		return m.recompute(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs one command and prints its output. Edits restart the
// debounce period.
func (m model) submit(v string) (tea.Model, tea.Cmd) {
	resp := m.wb.Execute(context.Background(), v)

	prints := []tea.Cmd{tea.Println(echo(v))}
	for _, line := range resp.Lines {
		prints = append(prints, tea.Println(line))
	}
	if resp.Quit {
		return m, tea.Sequence(append(prints, tea.Quit)...)
	}

	cmds := []tea.Cmd{tea.Sequence(prints...)}
	if resp.Changed {
		m.seq++
		m.waiting = true
		cmds = append(cmds, schedule(m.debounce, m.seq))
	} else if !m.wb.Dirty() {
		// A show command may have recomputed early.
		m.waiting = false
	}
	return m, tea.Batch(cmds...)
}

// recompute evaluates the recipe if msg belongs to the latest edit.
func (m model) recompute(msg recomputeMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}
	m.waiting = false
	if !m.wb.Dirty() {
		return m, nil
	}
	if err := m.wb.Recompute(context.Background()); err != nil {
		return m, tea.Println(urgentOutputStyle.Render("  " + err.Error()))
	}
	return m, tea.Println(secondaryStyle.Render("  = " + m.wb.Status()))
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.renderBar())
	b.WriteByte('\n')
	// Blank line before prompt for visual separation.
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

func (m model) renderBar() string {
	parts := []string{barValueStyle.Render(m.wb.Status())}
	switch {
	case m.waiting:
		parts = append(parts, barPendingStyle.Render("recomputing…"))
	case m.wb.AwaitingConfirmation():
		parts = append(parts, labelStyle.Render("confirm: yes / no"))
	}
	content := " " + strings.Join(parts, sepStyle.Render("  │  ")) + " "

	w := m.width
	if w <= 0 {
		w = 80
	}
	return barBg.Width(w).Render(content)
}

// echo renders the user's typed command for the scrollback.
func echo(v string) string {
	return promptStyle.Render("dough") + secondaryStyle.Render("> ") + userInputEchoStyle.Render(v)
}
