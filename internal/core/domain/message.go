package domain

import "time"

// MessageStatus tracks how far HR has taken a collaborator message.
type MessageStatus string

const (
	MessagePending  MessageStatus = "PENDENTE"
	MessageInReview MessageStatus = "EM_ANALISE"
	MessageAnswered MessageStatus = "RESPONDIDA"
)

// Message is a request sent by a collaborator to the HR team.
type Message struct {
	ID      string        `json:"id"`
	UserID  string        `json:"user_id"`
	Title   string        `json:"title"`
	Content string        `json:"content"`
	SentAt  time.Time     `json:"sent_at"`
	Status  MessageStatus `json:"status"`
}
