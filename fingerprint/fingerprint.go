// SPDX-License-Identifier: GPL-3.0-only

// Package fingerprint derives the short, deterministic labels used to look up
// and delete messages. The labels are not digests in any security sense and
// distinct messages may share one.
package fingerprint

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/blake2b"
)

type Generator interface {
	Fingerprint(id, recipient, content string) string
}

// Words builds "<id>:<FIRSTLAST>:<length>" from the first and last words of
// the content. Interior words and the recipient do not contribute.
type Words struct{}

func (Words) Fingerprint(id, _, content string) string {
	words := strings.Fields(content)
	var first, last string
	if len(words) > 0 {
		first = words[0]
	}
	if len(words) > 1 {
		last = words[len(words)-1]
	}
	return id + ":" + strings.ToUpper(first+last) + ":" + strconv.Itoa(utf8.RuneCountInString(content))
}

// Digest builds "MSG:<8 hex digits>" from recipient and content.
type Digest struct{}

func (Digest) Fingerprint(_, recipient, content string) string {
	sum := blake2b.Sum256([]byte(recipient + content))
	return "MSG:" + strings.ToUpper(hex.EncodeToString(sum[:4]))
}

// ForScheme maps a FINGERPRINT_SCHEME value onto a generator.
func ForScheme(scheme string) (Generator, error) {
	switch strings.ToLower(scheme) {
	case "", "words":
		return Words{}, nil
	case "digest":
		return Digest{}, nil
	default:
		return nil, fmt.Errorf("unknown fingerprint scheme: %s", scheme)
	}
}
