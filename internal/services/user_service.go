package services

import (
	"context"
	"strconv"
	"strings"
	"sync"

	apperrors "skyvoyager/internal/errors"
	"skyvoyager/internal/models"
	"skyvoyager/internal/store"
)

// seedUsers are the accounts available before anyone registers.
var seedUsers = []models.User{
	{ID: "1", Email: "admin@skyvoyager.com", Name: "Admin User", Role: models.UserRoleAdmin},
	{ID: "2", Email: "user@example.com", Name: "Regular User", Role: models.UserRoleUser},
}

// userService handles the mock user directory and the session key.
type userService struct {
	mu    sync.Mutex
	store store.Store
	now   Clock
}

// NewUserService creates a new UserServicer.
func NewUserService(s store.Store, now Clock) UserServicer {
	return &userService{store: s, now: now}
}

// Login matches email case-insensitively and stores the session. The password
// is accepted but not checked.
func (s *userService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOfEmail(users, email)
	if idx < 0 {
		return nil, apperrors.ErrInvalidCredentials
	}

	user := users[idx]
	if err := s.startSession(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a user with the user role and logs them in.
func (s *userService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and name are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.add(ctx, strings.TrimSpace(name), email, models.UserRoleUser)
	if err != nil {
		return nil, err
	}
	if err := s.startSession(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session.
func (s *userService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, store.KeyUser); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// CurrentUser returns the session user.
func (s *userService) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	found, err := store.GetJSON(ctx, s.store, store.KeyUser, &user)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found {
		return nil, apperrors.ErrUnauthorized
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// ListUsers returns every user, seeded accounts first.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// AddUser creates a user with the given role on behalf of an admin.
func (s *userService) AddUser(ctx context.Context, name, email string, role models.UserRole) (*models.User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name and email are required")
	}
	if role != models.UserRoleUser && role != models.UserRoleAdmin {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "role must be user or admin")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(ctx, name, email, role)
}

// DeleteUser removes a user.
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx)
	if err != nil {
		return err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(users) {
		return apperrors.ErrUserNotFound
	}
	if err := store.SetJSON(ctx, s.store, store.KeyUsers, kept); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *userService) add(ctx context.Context, name, email string, role models.UserRole) (*models.User, error) {
	users, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if indexOfEmail(users, email) >= 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	user := models.User{
		ID:        nextUserID(users),
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: s.now().UTC(),
	}
	users = append(users, user)
	if err := store.SetJSON(ctx, s.store, store.KeyUsers, users); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

func (s *userService) startSession(ctx context.Context, user *models.User) error {
	if err := store.SetJSON(ctx, s.store, store.KeyUser, user); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// load returns the stored users, seeding the mock accounts on first use.
func (s *userService) load(ctx context.Context) ([]models.User, error) {
	var users []models.User
	found, err := store.GetJSON(ctx, s.store, store.KeyUsers, &users)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if found {
		return users, nil
	}

	created := s.now().UTC()
	users = make([]models.User, len(seedUsers))
	for i, u := range seedUsers {
		u.CreatedAt = created
		users[i] = u
	}
	if err := store.SetJSON(ctx, s.store, store.KeyUsers, users); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return users, nil
}

func indexOfEmail(users []models.User, email string) int {
	for i := range users {
		if strings.EqualFold(users[i].Email, strings.TrimSpace(email)) {
			return i
		}
	}
	return -1
}

// nextUserID returns one more than the largest numeric id in use.
func nextUserID(users []models.User) string {
	var maxID int
	for _, u := range users {
		if n, err := strconv.Atoi(u.ID); err == nil && n > maxID {
			maxID = n
		}
	}
	return strconv.Itoa(maxID + 1)
}

