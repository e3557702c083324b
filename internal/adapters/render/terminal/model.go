package terminal

import (
	"errors"
	"io"

	"github.com/bnema/prefbot/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	payload domain.Payload
	opts    RenderOptions
	styles  styles
	output  string
}

func newModel(payload domain.Payload, opts RenderOptions) model {
	return model{payload: payload, opts: opts, styles: newStyles()}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(renderReadyMsg); ok {
		m.output = renderView(m.payload, m.opts, m.styles)
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	return m.output
}

// Render draws payload once through a headless bubbletea program so the
// colour profile detection matches the interactive terminal.
func Render(payload domain.Payload, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(payload, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := final.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
