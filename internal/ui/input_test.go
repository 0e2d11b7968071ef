package ui

import (
	"strings"
	"testing"
)

func TestInputView_SubmitTrimmedCity(t *testing.T) {
	var v View = NewInputView()
	v = typeString(v, "  Chennai ")

	v, cmd := v.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a cmd from Enter with non-empty input")
	}
	msg := cmd()
	submit, ok := msg.(SubmitCityMsg)
	if !ok {
		t.Fatalf("expected SubmitCityMsg, got %T", msg)
	}
	if submit.City != "Chennai" {
		t.Errorf("City = %q, want trimmed %q", submit.City, "Chennai")
	}
	if iv := v.(*InputView); iv.validation != "" {
		t.Errorf("no validation message expected, got %q", iv.validation)
	}
}

func TestInputView_RejectsEmptySubmission(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		var v View = NewInputView()
		v = typeString(v, input)

		v, cmd := v.Update(keyMsg("enter"))
		if cmd != nil {
			t.Errorf("input %q: expected no cmd, navigation must not occur", input)
		}
		if !strings.Contains(v.View(), "Please enter a city name") {
			t.Errorf("input %q: validation message should be visible", input)
		}
	}
}

func TestInputView_TypingClearsValidation(t *testing.T) {
	var v View = NewInputView()
	v, _ = v.Update(keyMsg("enter")) // empty submit -> validation
	if !strings.Contains(v.View(), "Please enter a city name") {
		t.Fatal("expected validation message after empty submit")
	}

	v = typeString(v, "O")
	if strings.Contains(v.View(), "Please enter a city name") {
		t.Error("validation message should clear once the user types")
	}
}

func TestInputView_SpaceIsTypable(t *testing.T) {
	var v View = NewInputView()
	v = typeString(v, "New York")

	_, cmd := v.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a cmd from Enter")
	}
	submit := cmd().(SubmitCityMsg)
	if submit.City != "New York" {
		t.Errorf("City = %q, want %q", submit.City, "New York")
	}
}
