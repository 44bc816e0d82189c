// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordModel is the Bubble Tea model for the password prompt. It renders
// one masked text input, or two when a confirmation is requested (the
// encryption path, where a typo in the password would lock the data away).
type passwordModel struct {
	title   string
	confirm bool

	inputs []textinput.Model
	focus  int
	errMsg string

	password string
	done     bool
	aborted  bool
}

func newPasswordModel(title string, confirm bool) *passwordModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	inputs := []textinput.Model{passwordInput}
	if confirm {
		confirmInput := textinput.New()
		confirmInput.Placeholder = "repeat password"
		confirmInput.CharLimit = 256
		confirmInput.Width = 40
		confirmInput.EchoMode = textinput.EchoPassword
		confirmInput.EchoCharacter = '*'
		inputs = append(inputs, confirmInput)
	}

	return &passwordModel{
		title:   title,
		confirm: confirm,
		inputs:  inputs,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - esc, ctrl+c — aborts the prompt.
//   - tab         — moves focus to the next input.
//   - shift+tab   — moves focus to the previous input.
//   - enter       — validates the inputs and finishes the prompt.
//
// All other key events are forwarded to the focused input widget.
func (m *passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			pass := m.inputs[0].Value()
			if pass == "" {
				m.errMsg = "Password must not be empty"
				return m, nil
			}
			if m.confirm && m.inputs[1].Value() != pass {
				m.errMsg = ErrPasswordMismatch.Error()
				return m, nil
			}

			m.password = pass
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *passwordModel) View() string {
	var b strings.Builder
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	if m.confirm {
		b.WriteString("Repeat   │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "enter: confirm"
	if m.confirm {
		hotKeys = "tab: next field │ enter: confirm"
	}
	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *passwordModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *passwordModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
