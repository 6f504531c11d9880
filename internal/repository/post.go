package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ishahbak/feed-service/internal/models"
)

const postsCollection = "posts"

// PostRepository defines the interface for post data operations. Posts are
// insert-only.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	ListAll(ctx context.Context) ([]models.Post, error)
}

type postRepository struct {
	db Database
}

// NewPostRepository creates a new PostRepository instance.
func NewPostRepository(db Database) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post. The creation timestamp is assigned here;
// anything the caller put in CreatedAt is overwritten.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	db, err := r.db.Database()
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	post.CreatedAt = time.Now().UTC()
	result, err := db.Collection(postsCollection).InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		post.ID = id
	}
	return nil
}

// ListAll returns every post, most recent first.
func (r *postRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	db, err := r.db.Database()
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.Collection(postsCollection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}
