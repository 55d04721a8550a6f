// SPDX-License-Identifier: GPL-3.0-only

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickchat/models"
)

func mustMessage(t *testing.T, id, recipient, content string) models.Message {
	t.Helper()
	m, err := models.NewMessage(id, recipient, content)
	require.NoError(t, err)
	return m
}

func TestEndToEnd(t *testing.T) {
	s := New(Sent)
	first := mustMessage(t, "0000000001", "+27838968976", "Hello world")
	second := mustMessage(t, "0000000002", "+27838968976", "Bye now")
	s.Insert(first)
	s.Insert(second)

	got, ok := s.FindByID("0000000001")
	require.True(t, ok)
	assert.Equal(t, first, got)

	report := s.Report()
	assert.Equal(t, Sent, report.Collection)
	assert.Equal(t, 2, report.Total)
	require.Len(t, report.Entries, 2)
	assert.Equal(t, "0000000001", report.Entries[0].ID)
	assert.Equal(t, "0000000002", report.Entries[1].ID)
	assert.Equal(t, first.Hash, report.Entries[0].Hash)

	require.True(t, s.DeleteByFingerprint(first.Hash))
	assert.Equal(t, []models.Message{second}, s.All())
}

func TestFindByIDReturnsFirstMatch(t *testing.T) {
	s := New(Sent)
	a := mustMessage(t, "1", "+27838968976", "first copy")
	b := mustMessage(t, "1", "+27838968976", "second copy")
	s.Insert(a)
	s.Insert(b)

	got, ok := s.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, a, got)

	_, ok = s.FindByID("2")
	assert.False(t, ok)
	_, ok = s.FindByID("")
	assert.False(t, ok)
}

func TestFindByFingerprint(t *testing.T) {
	s := New(Stored)
	m := mustMessage(t, "5", "+27838968976", "Ping pong")
	s.Insert(m)

	got, ok := s.FindByFingerprint("5:PINGPONG:9")
	require.True(t, ok)
	assert.Equal(t, m, got)

	_, ok = s.FindByFingerprint("")
	assert.False(t, ok)
	_, ok = s.FindByFingerprint("5:PINGPONG:10")
	assert.False(t, ok)
}

func TestFindAllByRecipientKeepsOrder(t *testing.T) {
	s := New(Sent)
	a := mustMessage(t, "1", "+27838968976", "one")
	b := mustMessage(t, "2", "+27111111111", "two")
	c := mustMessage(t, "3", "+27838968976", "three")
	s.Insert(a)
	s.Insert(b)
	s.Insert(c)

	assert.Equal(t, []models.Message{a, c}, s.FindAllByRecipient("+27838968976"))
	assert.Empty(t, s.FindAllByRecipient("+27000000000"))
	assert.Empty(t, s.FindAllByRecipient(""))
}

func TestDeleteByFingerprintRemovesOnlyFirstMatch(t *testing.T) {
	s := New(Sent)
	// Same id, first word, last word and length: the hashes collide.
	a := mustMessage(t, "1", "+27838968976", "Hello big world")
	b := mustMessage(t, "2", "+27838968976", "unrelated")
	c := mustMessage(t, "1", "+27838968976", "Hello bog world")
	require.Equal(t, a.Hash, c.Hash)
	s.Insert(a)
	s.Insert(b)
	s.Insert(c)

	require.True(t, s.DeleteByFingerprint(a.Hash))
	assert.Equal(t, []models.Message{b, c}, s.All())

	require.True(t, s.DeleteByFingerprint(a.Hash))
	assert.Equal(t, []models.Message{b}, s.All())

	assert.False(t, s.DeleteByFingerprint(a.Hash))
	assert.False(t, s.DeleteByFingerprint(""))
	assert.Equal(t, 1, s.Len())
}

func TestDeleteUniqueFingerprint(t *testing.T) {
	s := New(Sent)
	m := mustMessage(t, "9", "+27838968976", "Only one")
	s.Insert(mustMessage(t, "8", "+27838968976", "Other"))
	s.Insert(m)

	before := s.Len()
	require.True(t, s.DeleteByFingerprint(m.Hash))
	assert.Equal(t, before-1, s.Len())
	_, ok := s.FindByFingerprint(m.Hash)
	assert.False(t, ok)
}

func TestLongest(t *testing.T) {
	s := New(Sent)
	_, ok := s.Longest()
	assert.False(t, ok)

	s.Insert(mustMessage(t, "1", "+27838968976", strings.Repeat("a", 5)))
	s.Insert(mustMessage(t, "2", "+27838968976", strings.Repeat("b", 35)))
	s.Insert(mustMessage(t, "3", "+27838968976", strings.Repeat("c", 7)))

	got, ok := s.Longest()
	require.True(t, ok)
	assert.Equal(t, "2", got.ID)
	assert.Len(t, got.Content, 35)
}

func TestLongestTieGoesToEarliest(t *testing.T) {
	s := New(Sent)
	s.Insert(mustMessage(t, "1", "+27838968976", "abcd"))
	s.Insert(mustMessage(t, "2", "+27838968976", "wxyz"))

	got, ok := s.Longest()
	require.True(t, ok)
	assert.Equal(t, "1", got.ID)
}

func TestIsEmptyAndReplace(t *testing.T) {
	s := New(Disregarded)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, Disregarded, s.Collection())

	msgs := []models.Message{
		mustMessage(t, "1", "+27838968976", "one"),
		mustMessage(t, "2", "+27838968976", "two"),
	}
	s.Replace(msgs)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, msgs, s.All())

	// Mutating the input or the copy does not touch the store.
	msgs[0].Content = "changed"
	all := s.All()
	all[1].Content = "changed"
	assert.Equal(t, "one", s.All()[0].Content)
	assert.Equal(t, "two", s.All()[1].Content)
}

func TestReportOnEmptyStore(t *testing.T) {
	r := New(Stored).Report()
	assert.Equal(t, 0, r.Total)
	assert.NotNil(t, r.Entries)
	assert.Empty(t, r.Entries)
}

func TestRemoveByFingerprintReturnsRemovedMessage(t *testing.T) {
	s := New(Stored)
	a := mustMessage(t, "1", "+27838968976", "Hello big world")
	c := mustMessage(t, "1", "+27838968976", "Hello bog world")
	s.Insert(a)
	s.Insert(c)

	got, ok := s.RemoveByFingerprint(a.Hash)
	require.True(t, ok)
	assert.Equal(t, a, got)

	got, ok = s.RemoveByFingerprint(a.Hash)
	require.True(t, ok)
	assert.Equal(t, c, got)

	_, ok = s.RemoveByFingerprint(a.Hash)
	assert.False(t, ok)
	_, ok = s.RemoveByFingerprint("")
	assert.False(t, ok)
}
