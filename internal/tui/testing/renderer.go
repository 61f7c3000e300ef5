// Package testing provides test utilities for TUI components.
package testing

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainRounds bounds Drain for commands that keep producing messages.
const maxDrainRounds = 32

// TestRenderer captures the output of a Bubble Tea component without requiring a real terminal.
type TestRenderer struct {
	// Output contains the last rendered view
	Output string

	// Commands contains the commands returned by Update calls and not yet drained
	Commands []tea.Cmd

	// Messages contains all messages sent to the component
	Messages []tea.Msg

	// UpdateCount tracks how many times Update was called
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{
		Commands: make([]tea.Cmd, 0),
		Messages: make([]tea.Msg, 0),
	}
}

// Render renders a component and captures its output.
func (r *TestRenderer) Render(model tea.Model) string {
	r.Output = model.View()
	return r.Output
}

// Update sends a message to the component and captures the result.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.Messages = append(r.Messages, msg)
	r.UpdateCount++

	newModel, cmd := model.Update(msg)
	if cmd != nil {
		r.Commands = append(r.Commands, cmd)
	}

	r.Output = newModel.View()
	return newModel, cmd
}

// Drain runs pending commands, feeding their messages back into the model
// until no commands remain. Batches are flattened and quit messages are
// recorded but not delivered.
func (r *TestRenderer) Drain(model tea.Model) tea.Model {
	for round := 0; round < maxDrainRounds && len(r.Commands) > 0; round++ {
		pending := r.Commands
		r.Commands = nil

		for _, msg := range runCommands(pending) {
			if _, quit := msg.(tea.QuitMsg); quit {
				r.Messages = append(r.Messages, msg)
				continue
			}
			model, _ = r.Update(model, msg)
		}
	}
	return model
}

// Quit reports whether a tea.QuitMsg was produced.
func (r *TestRenderer) Quit() bool {
	for _, msg := range r.Messages {
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func runCommands(cmds []tea.Cmd) []tea.Msg {
	var msgs []tea.Msg
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		msg := cmd()
		switch msg := msg.(type) {
		case nil:
		case tea.BatchMsg:
			msgs = append(msgs, runCommands(msg)...)
		default:
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// StripANSI removes ANSI escape codes from the output for content-only testing.
func (r *TestRenderer) StripANSI() string {
	return StripANSI(r.Output)
}

// Lines returns the output split by newlines.
func (r *TestRenderer) Lines() []string {
	return strings.Split(r.Output, "\n")
}

// Reset clears all captured data.
func (r *TestRenderer) Reset() {
	r.Output = ""
	r.Commands = nil
	r.Messages = nil
	r.UpdateCount = 0
}
