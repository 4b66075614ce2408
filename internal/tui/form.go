// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/shop-console/internal/menu"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formModel is one text input per field, filled top to bottom.
type formModel struct {
	title  string
	fields []menu.Field
	inputs []textinput.Model
	focus  int
	err    string
}

func newFormModel(title string, fields []menu.Field) formModel {
	inputs := make([]textinput.Model, len(fields))
	for i, field := range fields {
		inputs[i] = textinput.New()
		inputs[i].Prompt = ""
		inputs[i].Width = 40
		switch field.Kind {
		case menu.KindPassword:
			inputs[i].EchoMode = textinput.EchoPassword
			inputs[i].EchoCharacter = '*'
		case menu.KindDate:
			inputs[i].Placeholder = "yyyy-MM-dd"
		}
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	return formModel{title: title, fields: fields, inputs: inputs}
}

func (f formModel) onLast() bool {
	return f.focus == len(f.inputs)-1
}

func (f formModel) next() formModel {
	if len(f.inputs) == 0 {
		return f
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

func (f formModel) prev() formModel {
	if len(f.inputs) == 0 {
		return f
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if len(f.inputs) == 0 {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// values returns the typed values, or the first field that does not parse.
func (f formModel) values() (menu.Values, error) {
	values := make(menu.Values, len(f.fields))
	for i, field := range f.fields {
		raw := f.inputs[i].Value()
		if err := field.Validate(raw); err != nil {
			return nil, err
		}
		values[field.Key] = raw
	}
	return values, nil
}

func (f formModel) View() string {
	width := 0
	for _, field := range f.fields {
		width = max(width, len(field.Label))
	}

	var b strings.Builder
	for i, field := range f.fields {
		cursor := "  "
		if i == f.focus {
			cursor = cursorStyle.Render("> ")
		}
		b.WriteString(cursor)
		b.WriteString(field.Label)
		b.WriteString(":")
		b.WriteString(strings.Repeat(" ", width-len(field.Label)+1))
		b.WriteString("[")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.err))
		b.WriteString("\n")
	}
	return b.String()
}
