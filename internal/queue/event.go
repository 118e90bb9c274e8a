// Package queue defines message payloads exchanged over the message broker.
package queue

// ContactReceivedEvent is published when a visitor submits the contact form.
// It carries enough information for downstream consumers to notify or log
// without querying the primary database.
type ContactReceivedEvent struct {
	ContactID  uint64 `json:"contact_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject,omitempty"`
	Message    string `json:"message"`
	ReceivedAt string `json:"received_at"`
}
