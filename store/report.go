// SPDX-License-Identifier: GPL-3.0-only

package store

type ReportEntry struct {
	ID        string `json:"id"`
	Recipient string `json:"recipient"`
	Content   string `json:"content"`
	Hash      string `json:"hash"`
}

// Report summarises a store in insertion order.
type Report struct {
	Collection Collection    `json:"collection"`
	Total      int           `json:"total"`
	Entries    []ReportEntry `json:"entries"`
}

func (s *Store) Report() Report {
	msgs := s.All()
	r := Report{
		Collection: s.collection,
		Total:      len(msgs),
		Entries:    make([]ReportEntry, 0, len(msgs)),
	}
	for _, m := range msgs {
		r.Entries = append(r.Entries, ReportEntry{
			ID:        m.ID,
			Recipient: m.Recipient,
			Content:   m.Content,
			Hash:      m.Hash,
		})
	}
	return r
}
