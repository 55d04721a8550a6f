// SPDX-License-Identifier: GPL-3.0-only

// Package validation holds the format checks applied to message and login
// fields. Every check is a pure predicate: a failed match is an ordinary
// false, never an error.
package validation

import (
	"strings"
	"unicode/utf8"

	"quickchat/passwordcheck"
)

const (
	MaxIdentifierLength = 10
	MaxContentLength    = 250
	MaxUsernameLength   = 5
)

func ValidIdentifier(id string) bool {
	return id != "" && utf8.RuneCountInString(id) <= MaxIdentifierLength
}

func ValidContent(text string) bool {
	return strings.TrimSpace(text) != "" && utf8.RuneCountInString(text) <= MaxContentLength
}

// ContentExcess returns how many characters text is over the content limit,
// or 0 when it fits.
func ContentExcess(text string) int {
	if n := utf8.RuneCountInString(text) - MaxContentLength; n > 0 {
		return n
	}
	return 0
}

func ValidUsername(name string) bool {
	return strings.Contains(name, "_") && utf8.RuneCountInString(name) <= MaxUsernameLength
}

func ValidPasswordComplexity(pw string) bool {
	return passwordcheck.Check(pw) == nil
}
