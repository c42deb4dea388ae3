// Package profile manages user profiles and the username index that backs public blog URLs.
package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"campusHub/internal/lib/logger/sl"
	"campusHub/internal/models"
	"campusHub/internal/session"
	"campusHub/internal/storage"

	"github.com/go-playground/validator/v10"
)

const (
	usersPath     = "users"
	usernamesPath = "usernames"

	DefaultName = "CampusHub User"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUsernameTaken   = errors.New("username is already taken")
	ErrInvalidUsername = errors.New("username may only contain lowercase letters, digits, '-' and '_'")
	ErrBlankName       = errors.New("name must not be blank")
)

var usernameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,31}$`)

type Service struct {
	log   *slog.Logger
	store storage.Store
}

func New(log *slog.Logger, store storage.Store) *Service {
	return &Service{
		log:   log.With(slog.String("component", "services/profile")),
		store: store,
	}
}

func UserPath(id string) string {
	return storage.Join(usersPath, id)
}

func usernamePath(username string) string {
	return storage.Join(usernamesPath, username)
}

// NormalizeUsername case-folds a username and checks that it can be used in a URL.
func NormalizeUsername(username string) (string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return "", nil
	}
	if !usernameRe.MatchString(username) {
		return "", ErrInvalidUsername
	}
	return username, nil
}

func AvatarFor(name string) string {
	initial := "?"
	if r := []rune(strings.TrimSpace(name)); len(r) > 0 {
		initial = string(r[0])
	}
	return "https://placehold.co/128x128.png?text=" + initial
}

type SignUp struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Ensure returns the caller's profile, creating it from the identity claims on first sign-in.
// The second return value reports whether the profile was created.
func (s *Service) Ensure(ctx context.Context, sess *session.Session, in SignUp) (*models.User, bool, error) {
	const op = "services.profile.Ensure"

	if sess == nil {
		return nil, false, fmt.Errorf("%s: %w", op, session.ErrAuthRequired)
	}

	existing, err := s.Get(ctx, sess.UserID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	username, err := NormalizeUsername(in.Username)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = strings.TrimSpace(sess.DisplayName(DefaultName))
	}
	if name == "" {
		name = DefaultName
	}

	user := models.User{
		Name:     name,
		Email:    sess.Email,
		Avatar:   AvatarFor(name),
		Username: username,
		Year:     1,
	}
	if sess.Picture != "" {
		user.Avatar = sess.Picture
	}

	if username != "" {
		if err := s.claim(ctx, username, sess.UserID); err != nil {
			return nil, false, fmt.Errorf("%s: %w", op, err)
		}
	}

	created, err := s.store.SetIfAbsent(ctx, UserPath(sess.UserID), user)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	if !created {
		// a parallel sign-in won; keep its profile
		if username != "" {
			s.release(ctx, username, sess.UserID)
		}
		existing, err := s.Get(ctx, sess.UserID)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", op, err)
		}
		return existing, false, nil
	}

	s.log.Info("profile created", slog.String("user_id", sess.UserID))

	user.ID = sess.UserID
	return &user, true, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	const op = "services.profile.Get"

	if id == "" || strings.Contains(id, "/") {
		return nil, fmt.Errorf("%s: %w", op, ErrProfileNotFound)
	}

	snap, err := s.store.Get(ctx, UserPath(id))
	if err != nil {
		if errors.Is(err, storage.ErrInvalidPath) {
			return nil, fmt.Errorf("%s: %w", op, ErrProfileNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var user models.User
	if err := models.Decode(snap, &user); err != nil {
		if errors.Is(err, models.ErrMalformed) {
			s.log.Warn("malformed profile", slog.String("user_id", id), sl.Err(err))
		}
		return nil, fmt.Errorf("%s: %w", op, ErrProfileNotFound)
	}
	user.ID = id

	return &user, nil
}

// Patch holds the fields to change. Nil fields are left as they are.
type Patch struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Username *string `json:"username,omitempty"`
	Major    *string `json:"major,omitempty"`
	Year     *int    `json:"year,omitempty" validate:"omitempty,gt=0"`
	Bio      *string `json:"bio,omitempty"`
	Avatar   *string `json:"avatar,omitempty" validate:"omitempty,url"`
}

// Update applies p to the caller's own profile.
func (s *Service) Update(ctx context.Context, sess *session.Session, p Patch) (*models.User, error) {
	const op = "services.profile.Update"

	if sess == nil {
		return nil, fmt.Errorf("%s: %w", op, session.ErrAuthRequired)
	}

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: %w", op, ErrBlankName)
		}
		p.Name = &name
	}

	if err := validator.New().Struct(p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	current, err := s.Get(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	children := map[string]any{}
	if p.Name != nil {
		children["name"] = *p.Name
	}
	if p.Major != nil {
		children["major"] = *p.Major
	}
	if p.Year != nil {
		children["year"] = *p.Year
	}
	if p.Bio != nil {
		children["bio"] = *p.Bio
	}
	if p.Avatar != nil {
		children["avatar"] = *p.Avatar
	}

	var claimed string
	if p.Username != nil {
		username, err := NormalizeUsername(*p.Username)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if username != current.Username {
			if username != "" {
				if err := s.claim(ctx, username, sess.UserID); err != nil {
					return nil, fmt.Errorf("%s: %w", op, err)
				}
				claimed = username
				children["username"] = username
			} else {
				children["username"] = nil
			}
		}
	}

	if len(children) > 0 {
		root := make(map[string]any, len(children)+1)
		for k, v := range children {
			root[storage.Join(UserPath(sess.UserID), k)] = v
		}
		if _, changed := children["username"]; changed && current.Username != "" {
			root[usernamePath(current.Username)] = nil
		}

		if err := s.store.Update(ctx, "", root); err != nil {
			if claimed != "" {
				s.release(ctx, claimed, sess.UserID)
			}
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return s.Get(ctx, sess.UserID)
}

// claim reserves username for uid. Re-claiming one's own username succeeds.
func (s *Service) claim(ctx context.Context, username, uid string) error {
	ok, err := s.store.SetIfAbsent(ctx, usernamePath(username), uid)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	holder, err := s.usernameHolder(ctx, username)
	if err != nil {
		return err
	}
	if holder != uid {
		return ErrUsernameTaken
	}

	return nil
}

func (s *Service) release(ctx context.Context, username, uid string) {
	holder, err := s.usernameHolder(ctx, username)
	if err != nil || holder != uid {
		return
	}
	if err := s.store.Remove(ctx, usernamePath(username)); err != nil {
		s.log.Error("failed to release username", slog.String("username", username), sl.Err(err))
	}
}

func (s *Service) usernameHolder(ctx context.Context, username string) (string, error) {
	snap, err := s.store.Get(ctx, usernamePath(username))
	if err != nil {
		return "", err
	}

	var uid string
	if err := snap.Decode(&uid); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	return uid, nil
}

// FindByUsername looks a profile up by username, ignoring case. Profiles written before the
// username index existed are found by scanning.
func (s *Service) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "services.profile.FindByUsername"

	username = strings.ToLower(strings.TrimSpace(username))
	if !usernameRe.MatchString(username) {
		return nil, fmt.Errorf("%s: %w", op, ErrProfileNotFound)
	}

	uid, err := s.usernameHolder(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if uid != "" {
		user, err := s.Get(ctx, uid)
		if err == nil && strings.EqualFold(user.Username, username) {
			return user, nil
		}
	}

	users, err := s.all(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return &users[i], nil
		}
	}

	return nil, fmt.Errorf("%s: %w", op, ErrProfileNotFound)
}

// Authors lists the profiles that picked a username, ordered by name.
func (s *Service) Authors(ctx context.Context) ([]models.User, error) {
	const op = "services.profile.Authors"

	users, err := s.all(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	authors := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Username != "" {
			authors = append(authors, u)
		}
	}

	return authors, nil
}

// all returns every readable profile ordered by name then id.
func (s *Service) all(ctx context.Context) ([]models.User, error) {
	snap, err := s.store.Get(ctx, usersPath)
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if snap.Exists() {
		if err := snap.Decode(&raw); err != nil {
			return nil, err
		}
	}

	users := make([]models.User, 0, len(raw))
	for id, value := range raw {
		var user models.User
		if err := models.Decode(storage.Snapshot{Path: UserPath(id), Value: value}, &user); err != nil {
			continue
		}
		user.ID = id
		users = append(users, user)
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].Name != users[j].Name {
			return users[i].Name < users[j].Name
		}
		return users[i].ID < users[j].ID
	})

	return users, nil
}
