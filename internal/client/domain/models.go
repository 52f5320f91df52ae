// Package domain contains the session client list models.
package domain

import "github.com/bwmarrin/snowflake"

// Client is one addressee parsed from the operator's CSV. The ID is assigned
// at load time and is only a selection token; it is never persisted.
type Client struct {
	ID    snowflake.ID `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
}
