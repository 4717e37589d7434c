package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"garinhca/models"
)

// UserStore хранит текущего пользователя сессии. Аутентификация нарочно
// бутафорская: принимаются любые непустые учетные данные, пароль нигде
// не сохраняется.
type UserStore struct {
	mu    sync.RWMutex
	blob  Blob
	user  *models.User
	now   func() time.Time
	newID func() string
}

type UserOption func(*UserStore)

// WithUserClock подменяет источник времени (для тестов)
func WithUserClock(now func() time.Time) UserOption {
	return func(s *UserStore) { s.now = now }
}

// WithUserIDs подменяет генератор идентификаторов (для тестов)
func WithUserIDs(newID func() string) UserOption {
	return func(s *UserStore) { s.newID = newID }
}

func NewUserStore(ctx context.Context, blob Blob, opts ...UserOption) *UserStore {
	s := &UserStore{
		blob:  blob,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.user = loadUser(ctx, blob)
	return s
}

// Ключ хранит одну запись пользователя либо null. Битые данные читаются
// как отсутствие сессии.
func loadUser(ctx context.Context, b Blob) *models.User {
	data, err := b.Load(ctx, KeyCurrentUser)
	if err != nil {
		return nil
	}
	var u *models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil
	}
	return u
}

func (s *UserStore) persist(ctx context.Context) error {
	data, err := json.Marshal(s.user)
	if err != nil {
		return err
	}
	return s.blob.Save(ctx, KeyCurrentUser, data)
}

// Login принимает любые непустые учетные данные. Роль выводится из
// email - демонстрационное поведение, унаследованное от прототипа.
func (s *UserStore) Login(ctx context.Context, email, password string) (models.User, bool, error) {
	if email == "" || password == "" {
		return models.User{}, false, nil
	}

	role := models.RoleSeeker
	switch {
	case strings.Contains(email, "superadmin"):
		role = models.RoleSuperAdmin
	case strings.Contains(email, "admin"):
		role = models.RoleAdmin
	case strings.Contains(email, "poster"):
		role = models.RolePoster
	}

	u := models.User{
		ID:       s.newID(),
		Name:     strings.SplitN(email, "@", 2)[0],
		Email:    email,
		Role:     role,
		JoinDate: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.user
	s.user = &u
	if err := s.persist(ctx); err != nil {
		s.user = prev
		return models.User{}, false, err
	}
	return u, true, nil
}

// Register создает пользователя с ролью poster либо seeker
func (s *UserStore) Register(ctx context.Context, name, email, password, role string) (models.User, bool, error) {
	if name == "" || email == "" || password == "" {
		return models.User{}, false, nil
	}
	if role != models.RolePoster && role != models.RoleSeeker {
		return models.User{}, false, nil
	}

	u := models.User{
		ID:       s.newID(),
		Name:     name,
		Email:    email,
		Role:     role,
		JoinDate: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.user
	s.user = &u
	if err := s.persist(ctx); err != nil {
		s.user = prev
		return models.User{}, false, err
	}
	return u, true, nil
}

// Current возвращает пользователя текущей сессии, если он есть
func (s *UserStore) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Logout завершает сессию
func (s *UserStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.user
	s.user = nil
	if err := s.persist(ctx); err != nil {
		s.user = prev
		return err
	}
	return nil
}

// UpdateProfile накладывает заполненные поля patch на профиль.
// false - если сессии нет.
func (s *UserStore) UpdateProfile(ctx context.Context, patch models.UserPatch) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return false, nil
	}
	prev := *s.user
	if patch.Name != nil {
		s.user.Name = *patch.Name
	}
	if patch.Email != nil {
		s.user.Email = *patch.Email
	}
	if patch.Avatar != nil {
		s.user.Avatar = *patch.Avatar
	}
	if patch.Company != nil {
		s.user.Company = *patch.Company
	}
	if patch.Location != nil {
		s.user.Location = *patch.Location
	}
	if patch.Bio != nil {
		s.user.Bio = *patch.Bio
	}
	if err := s.persist(ctx); err != nil {
		*s.user = prev
		return true, err
	}
	return true, nil
}
