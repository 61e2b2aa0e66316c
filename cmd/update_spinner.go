package cmd

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// updateCheckDoneMsg signals that the version check finished. Its outcome is
// captured outside the model, so the message carries nothing.
type updateCheckDoneMsg struct{}

type updateCheckSpinnerModel struct {
	spinner spinner.Model
	label   string
	start   tea.Cmd
	done    bool
}

func (m updateCheckSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start)
}

func (m updateCheckSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateCheckDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m updateCheckSpinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label
}

// runUpdateCheckSpinner animates a spinner on output while check runs, then
// returns check's own error. Run returns only after the done message was
// processed, so reading checkErr afterwards is race-free.
func runUpdateCheckSpinner(ctx context.Context, output io.Writer, check func() error) error {
	var checkErr error

	model := updateCheckSpinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		label: "Checking for updates...",
	}
	model.start = func() tea.Msg {
		checkErr = check()
		return updateCheckDoneMsg{}
	}

	program := tea.NewProgram(model,
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return err
	}

	return checkErr
}
