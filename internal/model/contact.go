package model

import "time"

// Contact mirrors the `contacts` table.  Rows are created only by the public
// contact form (the one unauthenticated write in the system); the admin
// toggles IsRead and deletes messages.  IPAddress and UserAgent are stamped
// at submission time and may be null when unavailable.
type Contact struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	IPAddress *string   `json:"ip_address"`
	UserAgent *string   `json:"user_agent"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
