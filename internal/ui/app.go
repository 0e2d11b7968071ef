package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model: a two-screen app switching between the city
// input and the weather display.
type AppModel struct {
	Mode       AppMode
	Input      *InputView
	Display    *DisplayView
	KeyHandler *KeyHandler
	Weather    WeatherFetcher
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Display without a city is a precondition failure; fall back to input.
	if a.Mode == ModeDisplay && (a.Display == nil || a.Display.City == "") {
		a.Mode = ModeInput
		a.Display = nil
		if a.Input == nil {
			a.Input = NewInputView()
		}
	}

	switch msg := msg.(type) {
	case SubmitCityMsg:
		if msg.City == "" {
			return a, nil
		}
		a.Mode = ModeDisplay
		a.Display = NewDisplayView(msg.City)
		return a, tea.Batch(a.Display.Init(), fetchWeatherCmd(a.Weather, msg.City))
	case ReturnToInputMsg:
		a.Mode = ModeInput
		a.Display = nil
		a.Input = NewInputView()
		return a, a.Input.Init()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// The input screen owns every printable key (city names contain
		// spaces), so the keybind system runs only on the display screen.
		if a.Mode == ModeDisplay && a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
				return a, keyCmd
			}
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.currentView().View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return base
}

func (a *appModelAdapter) currentView() View {
	switch a.Mode {
	case ModeDisplay:
		if a.Display != nil {
			return a.Display
		}
	case ModeInput:
		if a.Input != nil {
			return a.Input
		}
	}
	if a.Input == nil {
		a.Input = NewInputView()
	}
	return a.Input
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeInput:
		if iv, ok := v.(*InputView); ok {
			a.Input = iv
		}
	case ModeDisplay:
		if dv, ok := v.(*DisplayView); ok {
			a.Display = dv
		}
	}
}

// NewAppModel creates the root application model around a weather fetcher.
func NewAppModel(f WeatherFetcher) *AppModel {
	reg := NewKeybindRegistry()
	displayOnly := []AppMode{ModeDisplay}
	reg.BindWithDescForMode("q", tea.Quit, "Quit", displayOnly)
	reg.BindWithDescForMode("SPC q", tea.Quit, "Quit", displayOnly)
	reg.BindWithDescForMode("SPC s", func() tea.Msg { return ReturnToInputMsg{} }, "New search", displayOnly)
	return &AppModel{
		Mode:       ModeInput,
		Input:      NewInputView(),
		KeyHandler: NewKeyHandler(reg),
		Weather:    f,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
