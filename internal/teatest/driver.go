// Package teatest drives bubbletea models in tests without a terminal.
//
// Messages go straight to Update and the returned commands are executed
// synchronously until none remain, so a test observes the model exactly
// as it stands after each input.
package teatest

import (
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds command chains so a model that reschedules itself
// cannot hang a test.
const maxDepth = 100

// cmdTimeout skips commands that block, such as tickers.
const cmdTimeout = 50 * time.Millisecond

type Driver struct {
	t     *testing.T
	model tea.Model
	quit  bool
}

// New wraps model, sends it an initial window size and drains Init.
func New(t *testing.T, model tea.Model, width, height int) *Driver {
	t.Helper()
	d := &Driver{t: t, model: model}
	d.Send(tea.WindowSizeMsg{Width: width, Height: height})
	d.run(model.Init(), 0)
	return d
}

// Model returns the current model.
func (d *Driver) Model() tea.Model { return d.model }

// Quit reports whether the model has asked the program to exit.
func (d *Driver) Quit() bool { return d.quit }

func (d *Driver) View() string { return d.model.View() }

// Send dispatches msg and drains every resulting command.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.quit {
		return
	}
	next, cmd := d.model.Update(msg)
	d.model = next
	d.run(cmd, 0)
}

// Press sends one key by name: "tab", "shift+tab", "enter", "esc",
// "ctrl+c", the arrows, or any text, which is sent as runes.
func (d *Driver) Press(keys ...string) {
	d.t.Helper()
	for _, k := range keys {
		d.Send(keyMsg(k))
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// PlainView returns the rendered view with terminal styling removed.
func (d *Driver) PlainView() string { return ansiEscape.ReplaceAllString(d.View(), "") }

// RequireContains fails the test unless the plain view contains want.
func (d *Driver) RequireContains(want string) {
	d.t.Helper()
	if view := d.PlainView(); !strings.Contains(view, want) {
		d.t.Fatalf("view does not contain %q:\n%s", want, view)
	}
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.t.Logf("teatest: command depth limit (%d) reached", maxDepth)
		return
	}

	msg, ok := execWithTimeout(cmd)
	if !ok || msg == nil {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.run(sub, depth+1)
		}
	case tea.QuitMsg:
		d.quit = true
	default:
		next, nextCmd := d.model.Update(msg)
		d.model = next
		d.run(nextCmd, depth+1)
	}
}

func execWithTimeout(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}
