package models

import "time"

// Comment represents a text reply linked to exactly one blog, authored by
// a named user or the synthetic "AI Bot".
type Comment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body" validate:"notblank"`
	UserName  string    `json:"user_name" validate:"notblank,max=50"`
	BlogID    int64     `json:"blog_id" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the comment's declared field constraints and returns the
// user-facing error messages. The add-comment handler applies its own,
// looser presence check instead; this covers the full field contract.
func (c *Comment) Validate() []string {
	return validateEntity(c)
}
