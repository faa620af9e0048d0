package models

import (
	"encoding/json"
	"time"
)

// Author is the relation behind Story.Author. Like Owner it accepts a bare
// id on the wire, which is what write endpoints echo back.
type Author struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Stories []Story `json:"stories,omitempty"`
}

func (a *Author) UnmarshalJSON(b []byte) error {
	if id, ok := bareID(b); ok {
		*a = Author{ID: id}
		return nil
	}
	type plain Author
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*a = Author(p)
	return nil
}

type Story struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    *Author   `json:"author,omitempty"`
	Owner     *Owner    `json:"owner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (s Story) OwnerID() (int64, bool) {
	if s.Owner == nil {
		return 0, false
	}
	return s.Owner.ID, true
}

// AuthorName returns the nested author's name or "Unknown Author".
func (s Story) AuthorName() string {
	if s.Author == nil || s.Author.Name == "" {
		return "Unknown Author"
	}
	return s.Author.Name
}

// Expanded reports whether the nested relations came back as objects rather
// than bare ids.
func (s Story) Expanded() bool {
	return s.Author != nil && s.Author.Name != "" && s.Owner != nil
}

// StoryInput is the write payload for stories. The author always travels as
// a foreign key.
type StoryInput struct {
	Title    string `json:"title"`
	AuthorID int64  `json:"author"`
	Content  string `json:"content"`
	OwnerID  *int64 `json:"owner,omitempty"`
}
