package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a single feed entry. Posts are never mutated or deleted
// after creation.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID  primitive.ObjectID `bson:"author" json:"-"`
	Content   string             `bson:"content" json:"content"`
	MediaURL  string             `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// PostAuthor is the denormalized author view attached to a post at read time.
type PostAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// PostView is a post resolved with its author, as returned by the API.
type PostView struct {
	ID        string     `json:"id"`
	Author    PostAuthor `json:"author"`
	Content   string     `json:"content"`
	MediaURL  string     `json:"mediaUrl,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
