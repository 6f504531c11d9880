package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ishahbak/feed-service/internal/models"
	"github.com/ishahbak/feed-service/internal/repository"
)

var (
	// ErrEmptyContent rejects posts with missing or blank content before
	// anything is persisted.
	ErrEmptyContent = errors.New("content is required")

	// ErrAuthorNotFound means the token's subject no longer resolves to a
	// user.
	ErrAuthorNotFound = errors.New("author not found")
)

const usernameCacheTTL = 15 * time.Minute

// PostService creates posts and assembles the author-resolved feed.
type PostService interface {
	Create(ctx context.Context, authorID, content string) (*models.PostView, error)
	List(ctx context.Context) ([]models.PostView, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	cache    *redis.Client // nil disables caching
}

// NewPostService creates a new PostService instance. The Redis client is
// optional and only accelerates author lookups.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, cache *redis.Client) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		cache:    cache,
	}
}

// Create validates the content, verifies the author still exists and
// persists the post. The stored document references the author by id only;
// the username in the returned view is resolved at read time.
func (s *postService) Create(ctx context.Context, authorID, content string) (*models.PostView, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	id, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, ErrAuthorNotFound
	}

	username, err := s.resolveUsername(ctx, id)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		AuthorID: id,
		Content:  content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	view := postView(post, username)
	return &view, nil
}

// List returns all posts newest-first, each joined with its author's
// username.
func (s *postService) List(ctx context.Context) ([]models.PostView, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Memoize per request on top of the shared cache; feeds repeat authors.
	usernames := make(map[primitive.ObjectID]string)
	views := make([]models.PostView, 0, len(posts))
	for i := range posts {
		post := &posts[i]
		username, ok := usernames[post.AuthorID]
		if !ok {
			username, err = s.resolveUsername(ctx, post.AuthorID)
			if err != nil {
				if errors.Is(err, ErrAuthorNotFound) {
					// Author record gone; keep the post readable.
					username = ""
				} else {
					return nil, err
				}
			}
			usernames[post.AuthorID] = username
		}
		views = append(views, postView(post, username))
	}
	return views, nil
}

func (s *postService) resolveUsername(ctx context.Context, id primitive.ObjectID) (string, error) {
	key := usernameCacheKey(id)
	if s.cache != nil {
		if username, err := s.cache.Get(ctx, key).Result(); err == nil {
			return username, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrAuthorNotFound
		}
		return "", err
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, user.Username, usernameCacheTTL)
	}
	return user.Username, nil
}

func usernameCacheKey(id primitive.ObjectID) string {
	return fmt.Sprintf("username:%s", id.Hex())
}

func postView(post *models.Post, username string) models.PostView {
	return models.PostView{
		ID: post.ID.Hex(),
		Author: models.PostAuthor{
			ID:       post.AuthorID.Hex(),
			Username: username,
		},
		Content:   post.Content,
		MediaURL:  post.MediaURL,
		CreatedAt: post.CreatedAt,
	}
}
