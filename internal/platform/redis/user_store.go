package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/taskboard/taskboard-api/internal/domain"
	"github.com/taskboard/taskboard-api/internal/store"
)

const (
	keyUserByID   = "user:id:"   // user:id:<uuid> -> user JSON
	keyUserByName = "user:name:" // user:name:<username> -> user uuid
)

// UserStore is a Redis-backed implementation of store.UserStore.
type UserStore struct {
	rdb    *redis.Client
	logger *slog.Logger
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a new UserStore backed by the given Redis client.
func NewUserStore(rdb *redis.Client, logger *slog.Logger) *UserStore {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserStore")
	}
	return &UserStore{
		rdb:    rdb,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// storedUser is the persisted form of a user. The plaintext password never
// reaches this struct.
type storedUser struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"hashed_password"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// Create saves a new user. The username index entry is claimed with SETNX so
// two concurrent registrations of the same name cannot both succeed; the
// loser observes store.ErrUsernameExists.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	if user.HashedPassword == "" {
		return fmt.Errorf("%w: user has no hashed password", store.ErrInvalidEntity)
	}

	// Claim the username first; this is the uniqueness guarantee.
	claimed, err := s.rdb.SetNX(ctx, keyUserByName+user.Username, user.ID.String(), 0).Result()
	if err != nil {
		return store.NewStoreError("user", "create", "failed to claim username", err)
	}
	if !claimed {
		return store.ErrUsernameExists
	}

	payload, err := json.Marshal(toStoredUser(user))
	if err != nil {
		return store.NewStoreError("user", "create", "failed to encode user", err)
	}

	if err := s.rdb.Set(ctx, keyUserByID+user.ID.String(), payload, 0).Err(); err != nil {
		// Roll the claim back so the name is not left pointing at nothing.
		if delErr := s.rdb.Del(ctx, keyUserByName+user.Username).Err(); delErr != nil {
			s.logger.Error("failed to release username claim after write failure",
				"error", delErr,
				"username", user.Username)
		}
		return store.NewStoreError("user", "create", "failed to persist user", err)
	}

	s.logger.Debug("user created", "user_id", user.ID, "username", user.Username)
	return nil
}

// GetByID retrieves a user by ID. Returns store.ErrUserNotFound if absent.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	b, err := s.rdb.Get(ctx, keyUserByID+id.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("user", "get", "failed to read user record", err)
	}
	return decodeUser(b)
}

// GetByUsername retrieves a user via the username index.
// Returns store.ErrUserNotFound if absent.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	idStr, err := s.rdb.Get(ctx, keyUserByName+username).Result()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("user", "get", "failed to read username index", err)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, store.NewStoreError("user", "get", "corrupt username index entry", err)
	}

	return s.GetByID(ctx, id)
}

// Exists reports whether the username is registered.
func (s *UserStore) Exists(ctx context.Context, username string) (bool, error) {
	n, err := s.rdb.Exists(ctx, keyUserByName+username).Result()
	if err != nil {
		return false, store.NewStoreError("user", "exists", "failed to check username index", err)
	}
	return n > 0, nil
}

func toStoredUser(user *domain.User) storedUser {
	return storedUser{
		ID:             user.ID,
		Username:       user.Username,
		HashedPassword: user.HashedPassword,
		CreatedAt:      user.CreatedAt.Format(timeLayout),
		UpdatedAt:      user.UpdatedAt.Format(timeLayout),
	}
}

func decodeUser(b []byte) (*domain.User, error) {
	var su storedUser
	if err := json.Unmarshal(b, &su); err != nil {
		return nil, store.NewStoreError("user", "get", "failed to decode user record", err)
	}

	user := &domain.User{
		ID:             su.ID,
		Username:       su.Username,
		HashedPassword: su.HashedPassword,
	}
	user.CreatedAt, _ = parseStoredTime(su.CreatedAt)
	user.UpdatedAt, _ = parseStoredTime(su.UpdatedAt)
	return user, nil
}
