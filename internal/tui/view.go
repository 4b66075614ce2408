// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/shop-console/internal/app"
	"github.com/MKhiriev/shop-console/internal/menu"
)

func (m model) View() string {
	if m.quitting {
		return m.farewell
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.screen {
	case screenLogin:
		body = m.viewLogin()
	case screenMenu:
		body = m.viewMenu()
	case screenForm:
		body = renderPage(m.form.title, m.form.View(), "tab: next field  enter: submit  esc: back")
	case screenResult:
		body = m.viewResult()
	}

	if m.busy {
		body += "\n\n" + m.spinner.View() + " Working..."
	}
	return appStyle.Render(body)
}

func (m model) viewLogin() string {
	return renderPage(app.MsgWelcome, app.MsgPleaseLogIn+"\n\n"+m.login.View(), "tab: next field  enter: log in")
}

func (m model) viewMenu() string {
	current, ok := menu.Lookup(m.state)
	if !ok {
		return ""
	}

	var b strings.Builder
	for i, item := range current.Items {
		line := fmt.Sprintf("%d. %s", item.Choice, item.Label)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	title := strings.TrimSuffix(current.Title, ":")
	return renderPage(title, b.String(), "↑/↓: move  enter or digit: choose  v: build info")
}

func (m model) viewResult() string {
	data := strings.Join(m.result.lines, "\n")
	if m.result.status != "" {
		data += "\n\n" + statusStyle.Render(m.result.status)
	}
	return renderPage(m.result.title, data, "c: copy  enter/esc: continue")
}
