package model

import "time"

// Note is a single owned content unit. Every query that touches a note is
// scoped by UserID so one user's ids are invisible to another.
type Note struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Title     string    `bson:"title,omitempty" json:"title,omitempty"`
	Content   string    `bson:"content" json:"content"`
	Favorite  bool      `bson:"favorite" json:"favorite"`
	IsAudio   bool      `bson:"is_audio" json:"is_audio"`
	ImageURL  string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
