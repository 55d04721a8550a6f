// SPDX-License-Identifier: GPL-3.0-only

package app

import (
	"errors"
	"fmt"
	"strings"

	"quickchat/models"
	"quickchat/store"
	"quickchat/validation"
)

// Describe renders a dispatch result as console text.
func Describe(res Result) string {
	switch res.Command {
	case Send:
		return describeSend(res)
	case ShowSent, ShowStored:
		if !res.Found {
			return fmt.Sprintf("No %s messages.", res.Collection)
		}
		return FormatMessages(res.Messages)
	case ShowSenderRecipient:
		if !res.Found {
			return "No messages."
		}
		return FormatSenderRecipient(res.Sender, res.Messages)
	case ShowLongest:
		if !res.Found {
			return "No messages."
		}
		return res.Message.Content
	case SearchByID:
		if !res.Found {
			return "Not found."
		}
		return fmt.Sprintf("Recipient: %s\nMessage: %s", res.Message.Recipient, res.Message.Content)
	case SearchByRecipient:
		if !res.Found {
			return "No messages."
		}
		lines := make([]string, 0, len(res.Messages))
		for _, m := range res.Messages {
			lines = append(lines, m.Content)
		}
		return strings.Join(lines, "\n")
	case DeleteByHash:
		if !res.Found {
			return "Hash not found."
		}
		return fmt.Sprintf("Deleted message %s.", res.Message.ID)
	case ShowReport:
		if !res.Found {
			return "No messages."
		}
		return FormatReport(res.Report)
	case Quit:
		return "Goodbye!"
	}
	return ""
}

func describeSend(res Result) string {
	switch res.Action {
	case ActionSend:
		return fmt.Sprintf("Message sent!\nID: %s\nHash: %s", res.Message.ID, res.Message.Hash)
	case ActionDisregard:
		return "Message disregarded."
	case ActionStore:
		return fmt.Sprintf("Message stored.\nID: %s\nHash: %s", res.Message.ID, res.Message.Hash)
	}
	return ""
}

// FormatMessages lists messages one block per message.
func FormatMessages(msgs []models.Message) string {
	var sb strings.Builder
	for i, m := range msgs {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "ID: %s\nRecipient: %s\nContent: %s\nHash: %s\n", m.ID, m.Recipient, m.Content, m.Hash)
	}
	return sb.String()
}

// FormatSenderRecipient pairs the user with each recipient, adding the
// recipient's region and carrier when they are known.
func FormatSenderRecipient(sender string, msgs []models.Message) string {
	if sender == "" {
		sender = "You"
	}
	var sb strings.Builder
	for i, m := range msgs {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Sender: %s\nRecipient: %s", sender, m.Recipient)
		region, carrier := validation.DescribeRecipient(m.Recipient)
		switch {
		case region != "" && carrier != "":
			fmt.Fprintf(&sb, " (%s, %s)", region, carrier)
		case region != "":
			fmt.Fprintf(&sb, " (%s)", region)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func FormatReport(r store.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Report of %s messages (%d):\n\n", r.Collection, r.Total)
	for _, e := range r.Entries {
		fmt.Fprintf(&sb, "ID: %s\nRecipient: %s\nContent: %s\nHash: %s\n\n", e.ID, e.Recipient, e.Content, e.Hash)
	}
	return sb.String()
}

// Reason turns a dispatch error into text a user can act on.
func Reason(err error, content string, rule validation.RecipientRule) string {
	switch {
	case errors.Is(err, models.ErrInvalidContent):
		if n := validation.ContentExcess(content); n > 0 {
			return fmt.Sprintf("Message exceeds %d characters by %d, please reduce size.", validation.MaxContentLength, n)
		}
		return "Please enter a message."
	case errors.Is(err, models.ErrInvalidRecipient):
		if rule != nil {
			return "Recipient cell number is incorrectly formatted: " + rule.Hint()
		}
		return "Recipient cell number is incorrectly formatted."
	case errors.Is(err, ErrMessageLimit):
		return "Message limit reached."
	case errors.Is(err, ErrSnapshotFailed):
		return "Saving stored messages failed: " + err.Error()
	}
	return err.Error()
}
