package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputView collects a city name. Submission is rejected while the trimmed
// value is empty; the validation message clears as soon as the user types.
type InputView struct {
	input      textinput.Model
	validation string
}

// Ensure InputView implements View.
var _ View = (*InputView)(nil)

// NewInputView creates the city input screen with the field focused.
func NewInputView() *InputView {
	ti := textinput.New()
	ti.Placeholder = "City name"
	ti.Width = 40
	ti.Focus()
	return &InputView{input: ti}
}

// Init implements View.
func (v *InputView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *InputView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			city := strings.TrimSpace(v.input.Value())
			if city == "" {
				v.validation = "Please enter a city name"
				return v, nil
			}
			return v, func() tea.Msg { return SubmitCityMsg{City: city} }
		}
		v.validation = ""
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View implements View.
func (v *InputView) View() string {
	content := Styles.Title.Render("Weather check") + "\n\n"
	content += Styles.Normal.Render("Which city?") + "\n"
	content += v.input.View() + "\n"
	if v.validation != "" {
		content += Styles.Danger.Render(v.validation) + "\n"
	}
	content += "\n" + Styles.Hint.Render("Enter: search  Ctrl+C: quit")
	return Styles.Box.Render(content)
}
