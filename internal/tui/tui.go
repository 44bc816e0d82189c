package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct{}

func New() *TUI {
	return &TUI{}
}

// PromptPassword runs the interactive password prompt and returns the
// entered password. With confirm set, the prompt shows a second input and
// refuses to finish until both entries match.
func (t *TUI) PromptPassword(title string, confirm bool) (string, error) {
	model := newPasswordModel(title, confirm)
	finalModel, runErr := tea.NewProgram(model).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(*passwordModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.aborted || !result.done {
		return "", ErrAborted
	}

	return result.password, nil
}
