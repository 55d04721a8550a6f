// SPDX-License-Identifier: GPL-3.0-only

package app

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	for i, want := range Menu {
		got, err := ParseCommand(strconv.Itoa(i + 1))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, Quit, Menu[9])

	for _, bad := range []string{"", "0", "11", "send"} {
		_, err := ParseCommand(bad)
		assert.ErrorIs(t, err, ErrUnknownCommand, bad)
	}
}

func TestParseAction(t *testing.T) {
	cases := map[string]Action{
		"1": ActionSend, "send": ActionSend, " Store ": ActionStore, "2": ActionDisregard,
	}
	for in, want := range cases {
		got, err := ParseAction(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseAction("4")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestCommandNames(t *testing.T) {
	assert.Equal(t, "Send Message", Send.String())
	assert.Equal(t, "Quit", Quit.String())
	assert.Equal(t, "Command(99)", Command(99).String())
}
