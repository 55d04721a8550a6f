// SPDX-License-Identifier: GPL-3.0-only

package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"quickchat/auth"
	"quickchat/commons"
)

var ErrLoginFailed = errors.New("login failed")

// Console is the line-oriented front end. It reads one answer per line.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// Prompt prints label and returns the next line. ok is false at end of input.
func (c *Console) Prompt(label string) (string, bool) {
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, strings.TrimRight(text, "\n"))
}

// Login asks for a username and password once.
func (c *Console) Login(account *auth.Account) error {
	username, ok := c.Prompt("Enter username")
	if !ok {
		return ErrLoginFailed
	}
	password, ok := c.Prompt("Enter password")
	if !ok {
		return ErrLoginFailed
	}
	passed := account.Login(username, password)
	c.Println(auth.LoginStatus(passed))
	if !passed {
		commons.Logger.Warnf("Console login failed for %q", username)
		return ErrLoginFailed
	}
	return nil
}

func (c *Console) menu() {
	fmt.Fprintln(c.out)
	for i, cmd := range Menu {
		fmt.Fprintf(c.out, "%2d) %s\n", i+1, cmd)
	}
}

// Run reads commands until Quit or end of input.
func (c *Console) Run(ctx context.Context, session *Session) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.menu()
		selection, ok := c.Prompt("Choose an option")
		if !ok {
			return nil
		}
		cmd, err := ParseCommand(selection)
		if err != nil {
			c.Println("Invalid option.")
			continue
		}

		req, ok := c.collect(cmd, session)
		if !ok {
			return nil
		}
		res, err := session.Dispatch(ctx, req)
		if err != nil {
			c.Println(Reason(err, req.Content, session.Factory().Recipients))
			if !errors.Is(err, ErrSnapshotFailed) {
				continue
			}
		}
		c.Println(Describe(res))
		if res.Quit {
			return nil
		}
	}
}

// collect prompts for the inputs cmd needs. ok is false at end of input.
func (c *Console) collect(cmd Command, session *Session) (Request, bool) {
	req := Request{Command: cmd}
	var ok bool
	switch cmd {
	case Send:
		if req.Recipient, ok = c.Prompt("Enter recipient (" + session.Factory().Recipients.Hint() + ")"); !ok {
			return req, false
		}
		if req.Content, ok = c.Prompt("Enter message (max 250 chars)"); !ok {
			return req, false
		}
		for {
			answer, ok := c.Prompt("Choose action: 1) Send 2) Disregard 3) Store")
			if !ok {
				return req, false
			}
			action, err := ParseAction(answer)
			if err == nil {
				req.Action = action
				break
			}
			c.Println("Invalid action.")
		}
	case SearchByID:
		req.ID, ok = c.Prompt("Enter message ID")
	case SearchByRecipient:
		req.Recipient, ok = c.Prompt("Enter recipient")
	case DeleteByHash:
		req.Hash, ok = c.Prompt("Enter hash")
	default:
		ok = true
	}
	return req, ok
}
