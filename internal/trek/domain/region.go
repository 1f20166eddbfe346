package domain

import "time"

// Region groups treks, e.g. "Everest" or "Annapurna". Its slug is the first
// path segment of every public trek URL.
type Region struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Slug        string    `json:"slug"`
	Keywords    []string  `json:"keywords"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
