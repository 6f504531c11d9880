// Package repository provides the data access layer for the feed service.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ishahbak/feed-service/internal/models"
)

const usersCollection = "users"

// Database is the capability repositories use to reach MongoDB. It fails
// while the connection manager is reconnecting.
type Database interface {
	Database() (*mongo.Database, error)
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type userRepository struct {
	db Database
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db Database) UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user after uniqueness pre-checks, email first. The
// pre-checks are an optimization only: the collection's unique indexes are
// the real guarantee, so a duplicate-key error from the insert itself is
// translated the same way.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	db, err := r.db.Database()
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	col := db.Collection(usersCollection)

	if err := r.checkAvailable(ctx, col, "email", user.Email, ErrDuplicateEmail); err != nil {
		return err
	}
	if err := r.checkAvailable(ctx, col, "username", user.Username, ErrDuplicateUsername); err != nil {
		return err
	}

	user.CreatedAt = time.Now().UTC()
	result, err := col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateKeyField(err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return nil
}

func (r *userRepository) checkAvailable(ctx context.Context, col *mongo.Collection, field, value string, conflict error) error {
	err := col.FindOne(ctx, bson.M{field: value}).Err()
	if err == nil {
		return conflict
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return fmt.Errorf("failed to check %s uniqueness: %w", field, err)
}

// duplicateKeyField resolves which unique index a concurrent insert raced
// on so late collisions report the same error as the pre-check. The server
// message names the index ("index: email_1"); matching on that rather than
// the whole message keeps a colliding value like "emailfan" from being
// misclassified.
func duplicateKeyField(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "index: email_1"):
		return ErrDuplicateEmail
	case strings.Contains(msg, "index: username_1"):
		return ErrDuplicateUsername
	default:
		return ErrDuplicateUsername
	}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	db, err := r.db.Database()
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	var user models.User
	err = db.Collection(usersCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}
