// SPDX-License-Identifier: GPL-3.0-only

package fingerprint

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	cases := []struct {
		name    string
		id      string
		content string
		want    string
	}{
		{"two words", "0000000001", "Hello world", "0000000001:HELLOWORLD:11"},
		{"single word", "0000000002", "Hi", "0000000002:HI:2"},
		{"interior words ignored", "12", "Hi Mike, can you join us for dinner tonight", "12:HITONIGHT:43"},
		{"surrounding whitespace counted", "7", "  spaced   out  ", "7:SPACEDOUT:16"},
		{"multi-byte length in characters", "9", "héllo wörld", "9:HÉLLOWÖRLD:11"},
		{"no words", "3", "   ", "3::3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Words{}.Fingerprint(tc.id, "+27838968976", tc.content))
		})
	}
}

func TestWordsIsDeterministic(t *testing.T) {
	g := Words{}
	a := g.Fingerprint("0012345678", "+27838968976", "Where are you? You are late!")
	b := g.Fingerprint("0012345678", "+27838968976", "Where are you? You are late!")
	assert.Equal(t, a, b)
}

func TestWordsIgnoresRecipient(t *testing.T) {
	g := Words{}
	assert.Equal(t,
		g.Fingerprint("1", "+27838968976", "Hello world"),
		g.Fingerprint("1", "+27000000000", "Hello world"))
}

func TestWordsCollidesOnInteriorWords(t *testing.T) {
	g := Words{}
	assert.Equal(t,
		g.Fingerprint("1", "", "Hello big world"),
		g.Fingerprint("1", "", "Hello bog world"))
}

func TestDigest(t *testing.T) {
	g := Digest{}
	fp := g.Fingerprint("ignored", "+27838968976", "Hello world")
	assert.Regexp(t, regexp.MustCompile(`^MSG:[0-9A-F]{8}$`), fp)
	assert.Equal(t, fp, g.Fingerprint("other", "+27838968976", "Hello world"))
	assert.NotEqual(t, fp, g.Fingerprint("ignored", "+27000000000", "Hello world"))
}

func TestForScheme(t *testing.T) {
	g, err := ForScheme("")
	require.NoError(t, err)
	assert.Equal(t, Words{}, g)

	g, err = ForScheme("DIGEST")
	require.NoError(t, err)
	assert.Equal(t, Digest{}, g)

	_, err = ForScheme("sha1")
	assert.Error(t, err)
}
