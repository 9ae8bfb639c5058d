package model

import "time"

type User struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"` // argon2id hash, never serialized
	UserName  string    `bson:"username" json:"username"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
