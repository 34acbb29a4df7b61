package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two users. Only Read ever changes.
type Message struct {
	ID          uuid.UUID // Message identifier.
	SenderID    uuid.UUID // Author.
	RecipientID uuid.UUID // Addressee.
	Subject     string    // Subject line.
	Body        string    // Message text.
	Read        bool      // Set when the recipient opens the conversation.
	CreatedAt   time.Time // Send time.
	Sender      *User     // Filled on inbox reads.
	Recipient   *User     // Filled on inbox reads.
}

// IsParticipant reports whether the user sent or received the message.
func (m *Message) IsParticipant(userID uuid.UUID) bool {
	return m.SenderID == userID || m.RecipientID == userID
}

// Counterpart returns the other side of the message from the viewer's point of view.
func (m *Message) Counterpart(viewer uuid.UUID) uuid.UUID {
	if m.SenderID == viewer {
		return m.RecipientID
	}

	return m.SenderID
}

// Conversation groups the messages a user exchanged with one other user.
type Conversation struct {
	With        uuid.UUID  // The other participant.
	WithUser    *User      // Filled when known.
	Last        *Message   // Most recent message.
	UnreadCount int        // Received messages not yet read.
	Messages    []*Message // Oldest first.
}

// GroupConversations buckets messages by counterpart, newest conversation first.
func GroupConversations(viewer uuid.UUID, messages []*Message) []*Conversation {
	byUser := make(map[uuid.UUID]*Conversation)
	for _, m := range messages {
		other := m.Counterpart(viewer)
		conv, ok := byUser[other]
		if !ok {
			conv = &Conversation{With: other}
			byUser[other] = conv
		}
		conv.Messages = append(conv.Messages, m)
		if conv.Last == nil || m.CreatedAt.After(conv.Last.CreatedAt) {
			conv.Last = m
			if m.SenderID == other {
				conv.WithUser = m.Sender
			} else {
				conv.WithUser = m.Recipient
			}
		}
		if m.RecipientID == viewer && !m.Read {
			conv.UnreadCount++
		}
	}

	out := make([]*Conversation, 0, len(byUser))
	for _, conv := range byUser {
		sort.SliceStable(conv.Messages, func(i, j int) bool {
			return conv.Messages[i].CreatedAt.Before(conv.Messages[j].CreatedAt)
		})
		out = append(out, conv)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Last.CreatedAt.After(out[j].Last.CreatedAt)
	})

	return out
}
