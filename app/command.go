// SPDX-License-Identifier: GPL-3.0-only

package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown menu option")
	ErrUnknownAction  = errors.New("unknown message action")
)

type Command int

const (
	Send Command = iota + 1
	ShowSent
	ShowStored
	ShowSenderRecipient
	ShowLongest
	SearchByID
	SearchByRecipient
	DeleteByHash
	ShowReport
	Quit
)

// Menu lists the commands in the order they are offered; a command's menu
// number is its position plus one.
var Menu = []Command{
	Send, ShowSent, ShowStored, ShowSenderRecipient, ShowLongest,
	SearchByID, SearchByRecipient, DeleteByHash, ShowReport, Quit,
}

var commandNames = map[Command]string{
	Send:                "Send Message",
	ShowSent:            "Show Sent Messages",
	ShowStored:          "Show Stored Messages",
	ShowSenderRecipient: "Display Sender/Recipient",
	ShowLongest:         "Display Longest Message",
	SearchByID:          "Search by Message ID",
	SearchByRecipient:   "Search by Recipient",
	DeleteByHash:        "Delete by Hash",
	ShowReport:          "Show Report",
	Quit:                "Quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand maps a menu number ("1".."10") onto a command.
func ParseCommand(selection string) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(selection))
	if err != nil || n < 1 || n > len(Menu) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, selection)
	}
	return Menu[n-1], nil
}

// Action is what to do with a newly composed message.
type Action int

const (
	ActionSend Action = iota + 1
	ActionDisregard
	ActionStore
)

func (a Action) String() string {
	switch a {
	case ActionSend:
		return "send"
	case ActionDisregard:
		return "disregard"
	case ActionStore:
		return "store"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction accepts a menu number or the action name.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "send":
		return ActionSend, nil
	case "2", "disregard":
		return ActionDisregard, nil
	case "3", "store":
		return ActionStore, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}
