// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package console implements the line-based front-end: numbered menus
// printed to a writer and answers read line by line from a reader.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/shop-console/internal/app"
	"github.com/MKhiriev/shop-console/internal/handler"
	"github.com/MKhiriev/shop-console/internal/logger"
	"github.com/MKhiriev/shop-console/internal/menu"
	"github.com/MKhiriev/shop-console/models"
)

// Console runs the menu state machine over a reader and a writer.
type Console struct {
	ops handler.Operations
	in  *bufio.Reader
	out io.Writer
}

func New(ops handler.Operations, in io.Reader, out io.Writer) *Console {
	return &Console{
		ops: ops,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run shows the welcome banner and loops until the user exits or the input
// ends. End of input is a normal exit.
func (c *Console) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	c.println(app.MsgWelcome)

	state := menu.StateUnauthenticated
	var session models.Session

	for state != menu.StateExit {
		if err := ctx.Err(); err != nil {
			return err
		}

		if state == menu.StateUnauthenticated {
			c.println(app.MsgPleaseLogIn)
			values, ok, _ := c.collect(menu.LoginFields)
			if !ok {
				return nil
			}

			var message string
			session, message = c.ops.Authenticate(ctx, values)
			c.println(message)
			if session.Authenticated {
				state = menu.StateMain
			}
			continue
		}

		m, ok := menu.Lookup(state)
		if !ok {
			return fmt.Errorf("no menu for state %s", state)
		}
		c.printMenu(m)

		line, ok := c.readLine()
		if !ok {
			return nil
		}

		selection := menu.Select(state, line)
		if !selection.Valid {
			c.println(m.Invalid)
			continue
		}

		values, ok, err := c.collect(menu.Fields(selection.Action))
		if !ok {
			return nil
		}
		if err != nil {
			c.println(handler.InvalidInputMessage(err))
			state = menu.StateMain
			continue
		}

		for _, out := range c.ops.Execute(ctx, selection.Action, session, values) {
			c.println(out)
		}

		log.Debug().
			Str("from", state.String()).
			Str("to", selection.Next.String()).
			Str("action", selection.Action.String()).
			Msg("menu transition")
		state = selection.Next
	}

	return nil
}

func (c *Console) printMenu(m menu.Menu) {
	c.println("\n" + m.Title)
	for _, item := range m.Items {
		c.println(fmt.Sprintf("%d. %s", item.Choice, item.Label))
	}
	c.print(app.MsgEnterChoice)
}

// collect prompts for every field in order and stops at the first value
// that does not parse. ok is false when the input ends.
func (c *Console) collect(fields []menu.Field) (menu.Values, bool, error) {
	values := make(menu.Values, len(fields))
	for _, field := range fields {
		c.print(field.Prompt)
		line, ok := c.readLine()
		if !ok {
			return nil, false, nil
		}
		if err := field.Validate(line); err != nil {
			return nil, true, err
		}
		values[field.Key] = line
	}
	return values, true, nil
}

// readLine returns the next line without its terminator. A last line without
// a newline is still returned; ok is false only when nothing is left.
func (c *Console) readLine() (string, bool) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}
