// Package blog stores posts under their author's subtree, blogs/{authorId}/{postId}.
package blog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/services/profile"
	"campusHub/internal/session"
	"campusHub/internal/storage"

	"github.com/google/uuid"
)

const (
	blogsPath = "blogs"

	DefaultAuthorName = "Anonymous"
)

var (
	ErrEmptyPost            = errors.New("title and content are required")
	ErrPostNotFound         = errors.New("post not found")
	ErrConfirmationRequired = errors.New("deleting a post must be confirmed")
	ErrAuthorNotFound       = errors.New("author not found")
)

type Profiles interface {
	Get(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

type Service struct {
	log      *slog.Logger
	store    storage.Store
	profiles Profiles
}

func New(log *slog.Logger, store storage.Store, profiles Profiles) *Service {
	return &Service{
		log:      log.With(slog.String("component", "services/blog")),
		store:    store,
		profiles: profiles,
	}
}

func postPath(authorID, postID string) string {
	return storage.Join(blogsPath, authorID, postID)
}

// Create publishes a post for the signed-in user. The author name is a snapshot taken now.
func (s *Service) Create(ctx context.Context, sess *session.Session, title, content string) (*models.BlogPost, error) {
	const op = "services.blog.Create"

	if sess == nil {
		return nil, fmt.Errorf("%s: %w", op, session.ErrAuthRequired)
	}

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyPost)
	}

	authorName := sess.DisplayName(DefaultAuthorName)
	if p, err := s.profiles.Get(ctx, sess.UserID); err == nil && p.Name != "" {
		authorName = p.Name
	}

	id := uuid.NewString()
	path := postPath(sess.UserID, id)

	if err := s.store.Set(ctx, path, map[string]any{
		"authorId":   sess.UserID,
		"authorName": authorName,
		"title":      title,
		"content":    content,
		"timestamp":  storage.ServerTimestamp,
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	snap, err := s.store.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var post models.BlogPost
	if err := models.Decode(snap, &post); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	post.ID = id

	s.log.Info("post created", slog.String("post_id", id), slog.String("author_id", sess.UserID))

	return &post, nil
}

// Delete permanently removes one of the caller's own posts. confirmed must be set.
func (s *Service) Delete(ctx context.Context, sess *session.Session, postID string, confirmed bool) error {
	const op = "services.blog.Delete"

	if sess == nil {
		return fmt.Errorf("%s: %w", op, session.ErrAuthRequired)
	}
	if !confirmed {
		return fmt.Errorf("%s: %w", op, ErrConfirmationRequired)
	}
	if postID == "" || strings.Contains(postID, "/") {
		return fmt.Errorf("%s: %w", op, ErrPostNotFound)
	}

	path := postPath(sess.UserID, postID)

	snap, err := s.store.Get(ctx, path)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidPath) {
			return fmt.Errorf("%s: %w", op, ErrPostNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if !snap.Exists() {
		return fmt.Errorf("%s: %w", op, ErrPostNotFound)
	}

	if err := s.store.Remove(ctx, path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("post deleted", slog.String("post_id", postID), slog.String("author_id", sess.UserID))

	return nil
}

// List returns the posts of one author, most recent first.
func (s *Service) List(ctx context.Context, authorID string) ([]models.BlogPost, error) {
	const op = "services.blog.List"

	if authorID == "" || strings.Contains(authorID, "/") {
		return []models.BlogPost{}, nil
	}

	snap, err := s.store.Get(ctx, storage.Join(blogsPath, authorID))
	if err != nil {
		if errors.Is(err, storage.ErrInvalidPath) {
			return []models.BlogPost{}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var raw map[string]json.RawMessage
	if snap.Exists() {
		if err := snap.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	posts := make([]models.BlogPost, 0, len(raw))
	for id, value := range raw {
		var post models.BlogPost
		if err := models.Decode(storage.Snapshot{Path: postPath(authorID, id), Value: value}, &post); err != nil {
			s.log.Warn("skipping malformed post", slog.String("post_id", id), sl.Err(err))
			continue
		}
		post.ID = id
		posts = append(posts, post)
	}

	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Timestamp != posts[j].Timestamp {
			return posts[i].Timestamp > posts[j].Timestamp
		}
		return posts[i].ID < posts[j].ID
	})

	return posts, nil
}

type AuthorPosts struct {
	Author *models.User      `json:"author"`
	Posts  []models.BlogPost `json:"posts"`
}

// ByUsername returns the public blog of the user with username.
func (s *Service) ByUsername(ctx context.Context, username string) (*AuthorPosts, error) {
	const op = "services.blog.ByUsername"

	author, err := s.profiles.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrAuthorNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	posts, err := s.List(ctx, author.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &AuthorPosts{Author: author, Posts: posts}, nil
}
