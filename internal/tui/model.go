// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/shop-console/internal/app"
	"github.com/MKhiriev/shop-console/internal/handler"
	"github.com/MKhiriev/shop-console/internal/menu"
	"github.com/MKhiriev/shop-console/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLogin screen = iota
	screenMenu
	screenForm
	screenResult
)

type resultModel struct {
	title  string
	lines  []string
	next   menu.State
	status string
}

type model struct {
	ctx       context.Context
	ops       handler.Operations
	buildInfo models.AppBuildInfo
	copyText  func(string) error

	state   menu.State
	session models.Session
	screen  screen

	login  formModel
	form   formModel
	cursor int
	status string

	// pending is the action whose form is open.
	pending menu.Selection
	result  resultModel

	busy    bool
	spinner spinner.Model

	showBuildInfo bool
	quitting      bool
	farewell      string
}

func newModel(ctx context.Context, ops handler.Operations, buildInfo models.AppBuildInfo) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:       ctx,
		ops:       ops,
		buildInfo: buildInfo,
		copyText:  clipboard.WriteAll,
		state:     menu.StateUnauthenticated,
		screen:    screenLogin,
		login:     newFormModel(app.MsgPleaseLogIn, menu.LoginFields),
		spinner:   s,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitting = true
			return m, tea.Quit
		}
		// one request at a time
		if m.busy {
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case authDoneMsg:
		m.busy = false
		m.session = msg.session
		if msg.session.Authenticated {
			m.state = menu.StateMain
			m.screen = screenMenu
			m.cursor = 0
			m.status = msg.message
			return m, nil
		}
		m.login = newFormModel(app.MsgPleaseLogIn, menu.LoginFields)
		m.login.err = msg.message
		return m, textinput.Blink
	case actionDoneMsg:
		m.busy = false
		m.showResult(m.pending.Label, msg.lines, msg.next)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.result.status = "Copy failed: " + msg.err.Error()
		} else {
			m.result.status = "Copied to clipboard."
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenMenu:
		return m.updateMenu(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenResult:
		return m.updateResult(msg)
	}
	return m, nil
}

func (m model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.nextField):
			m.login = m.login.next()
			return m, nil
		case key.Matches(keyMsg, keys.prevField):
			m.login = m.login.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if !m.login.onLast() {
				m.login = m.login.next()
				return m, nil
			}
			values, _ := m.login.values()
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, m.cmdAuthenticate(values))
		}
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

func (m model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	current, ok := menu.Lookup(m.state)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(current.Items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.enter):
		return m.choose(strconv.Itoa(current.Items[m.cursor].Choice))
	case keyMsg.Type == tea.KeyRunes:
		return m.choose(string(keyMsg.Runes))
	}
	return m, nil
}

// choose applies the transition for input typed at the current menu.
func (m model) choose(input string) (tea.Model, tea.Cmd) {
	current, _ := menu.Lookup(m.state)
	selection := menu.Select(m.state, input)
	if !selection.Valid {
		m.status = current.Invalid
		return m, nil
	}
	m.status = ""

	fields := menu.Fields(selection.Action)
	switch {
	case selection.Action == menu.ActionExit:
		m.quitting = true
		m.farewell = strings.Join(m.ops.Execute(m.ctx, selection.Action, m.session, nil), "\n")
		return m, tea.Quit
	case len(fields) > 0:
		m.pending = selection
		m.form = newFormModel(selection.Label, fields)
		m.screen = screenForm
		return m, textinput.Blink
	case selection.Action.NeedsBackend():
		m.pending = selection
		return m.start(selection, nil)
	default:
		m.status = strings.Join(m.ops.Execute(m.ctx, selection.Action, m.session, nil), "\n")
		m.state = selection.Next
		m.cursor = 0
		return m, nil
	}
}

func (m model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenMenu
			return m, nil
		case key.Matches(keyMsg, keys.nextField):
			m.form = m.form.next()
			return m, nil
		case key.Matches(keyMsg, keys.prevField):
			m.form = m.form.prev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if !m.form.onLast() {
				m.form = m.form.next()
				return m, nil
			}
			values, err := m.form.values()
			if err != nil {
				// a malformed field aborts the action
				m.showResult(m.pending.Label, []string{handler.InvalidInputMessage(err)}, menu.StateMain)
				return m, nil
			}
			return m.start(m.pending, values)
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.copy):
		return m, m.cmdCopy(strings.Join(m.result.lines, "\n"))
	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.esc):
		m.state = m.result.next
		m.screen = screenMenu
		m.cursor = 0
		m.status = ""
	}
	return m, nil
}

func (m model) start(selection menu.Selection, values menu.Values) (tea.Model, tea.Cmd) {
	m.busy = true
	return m, tea.Batch(m.spinner.Tick, m.cmdExecute(selection, values))
}

func (m *model) showResult(title string, lines []string, next menu.State) {
	m.result = resultModel{title: title, lines: lines, next: next}
	m.screen = screenResult
}

func (m model) cmdAuthenticate(values menu.Values) tea.Cmd {
	ctx, ops := m.ctx, m.ops
	return func() tea.Msg {
		session, message := ops.Authenticate(ctx, values)
		return authDoneMsg{session: session, message: message}
	}
}

func (m model) cmdExecute(selection menu.Selection, values menu.Values) tea.Cmd {
	ctx, ops, session := m.ctx, m.ops, m.session
	return func() tea.Msg {
		return actionDoneMsg{
			lines: ops.Execute(ctx, selection.Action, session, values),
			next:  selection.Next,
		}
	}
}

func (m model) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		if err := copyText(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
