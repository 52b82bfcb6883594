// Package models defines the blog domain entities and their field-level
// validation rules.
package models

import "time"

// Blog represents a titled post authored by a named user, together with
// its ordered comments.
type Blog struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title" validate:"notblank,max=100"`
	Body      string    `json:"body" validate:"notblank"`
	UserName  string    `json:"user_name" validate:"notblank,max=50"`
	CreatedAt time.Time `json:"created_at"`
	Comments  []Comment `json:"comments,omitempty" validate:"-"`
}

// Validate checks the blog's fields and returns the user-facing error
// messages, one per failing field, in field order title, body, user_name.
// A field's "required" failure suppresses its length check. An empty slice
// means the blog is valid.
func (b *Blog) Validate() []string {
	return validateEntity(b)
}
