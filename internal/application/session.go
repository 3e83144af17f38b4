package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/gamelan-harmony/internal/domain"
	"github.com/bnema/gamelan-harmony/internal/i18n"
	"github.com/bnema/gamelan-harmony/internal/observability"
	"github.com/bnema/gamelan-harmony/internal/ports"
	"github.com/bnema/gamelan-harmony/internal/prefs"
	"go.uber.org/zap"
)

const (
	DefaultLatency = 500 * time.Millisecond

	// Mock authentication always signs in as this account.
	placeholderName  = "Ilham"
	placeholderEmail = "user@gamelan.com"

	createdAtLayout = "2006-01-02T15:04:05.000Z07:00"
)

var errIncompleteSession = errors.New("incomplete session record")

type SessionManager struct {
	mu        sync.RWMutex
	store     *prefs.Store
	clock     ports.Clock
	sleeper   ports.Sleeper
	messages  Messages
	validator *credentialValidator
	logger    *zap.Logger
	latency   time.Duration

	user *domain.User
}

type SessionOption func(*SessionManager)

// WithLatency sets the simulated round-trip delay of Login and Register.
func WithLatency(latency time.Duration) SessionOption {
	return func(m *SessionManager) {
		if latency >= 0 {
			m.latency = latency
		}
	}
}

func NewSessionManager(store *prefs.Store, clock ports.Clock, sleeper ports.Sleeper, messages Messages, logger *zap.Logger, opts ...SessionOption) *SessionManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if sleeper == nil {
		sleeper = ports.SystemSleeper{}
	}

	m := &SessionManager{
		store:     store,
		clock:     clock,
		sleeper:   sleeper,
		messages:  messages,
		validator: newCredentialValidator(),
		logger:    observability.OrNop(logger).Named("session"),
		latency:   DefaultLatency,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

type sessionRecord struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

func toSessionRecord(user domain.User) sessionRecord {
	return sessionRecord{
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.UTC().Format(createdAtLayout),
	}
}

func fromSessionRecord(record sessionRecord) (domain.User, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, record.CreatedAt)
	if err != nil {
		return domain.User{}, fmt.Errorf("parse createdAt: %w", err)
	}

	user := domain.User{Name: record.Name, Email: record.Email, CreatedAt: createdAt.UTC()}
	if !user.Complete() {
		return domain.User{}, errIncompleteSession
	}

	return user, nil
}

// Restore loads the persisted session. Unreadable or incomplete records are
// removed and the session stays anonymous.
func (m *SessionManager) Restore(ctx context.Context) {
	raw, ok := m.store.Get(ctx, prefs.KeySession)
	if !ok {
		return
	}

	var record sessionRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		m.discard(ctx, err)
		return
	}
	user, err := fromSessionRecord(record)
	if err != nil {
		m.discard(ctx, err)
		return
	}

	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
}

func (m *SessionManager) discard(ctx context.Context, err error) {
	m.logger.Debug("discarding persisted session", zap.Error(err))
	m.store.Remove(ctx, prefs.KeySession)
}

// Login signs in as the placeholder account once the credentials pass the
// shape checks. Any existing session is replaced.
func (m *SessionManager) Login(ctx context.Context, email, password string) error {
	if err := m.sleeper.Sleep(ctx, m.latency); err != nil {
		return err
	}

	if err := m.validator.check(loginInput{Email: email, Password: password}, m.messages, i18n.ErrEmptyCredentials); err != nil {
		return err
	}

	user := domain.User{
		Name:      placeholderName,
		Email:     placeholderEmail,
		CreatedAt: m.clock.Now().UTC().Truncate(time.Millisecond),
	}
	m.setUser(ctx, user)
	m.logger.Info("signed in", zap.String("email", user.Email))

	return nil
}

// Register validates the sign-up form. It never creates a session.
func (m *SessionManager) Register(ctx context.Context, name, email, password string) error {
	if err := m.sleeper.Sleep(ctx, m.latency); err != nil {
		return err
	}

	input := registerInput{Name: name, Email: email, Password: password}
	return m.validator.check(input, m.messages, i18n.ErrEmptyFields)
}

func (m *SessionManager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	m.store.Remove(ctx, prefs.KeySession)
}

// UpdateUser merges update into the signed-in user. Anonymous sessions are
// left alone. An update that would blank a field is rejected with an
// EmptyField ValidationError and changes nothing.
func (m *SessionManager) UpdateUser(ctx context.Context, update domain.UserUpdate) error {
	m.mu.Lock()
	if m.user == nil {
		m.mu.Unlock()
		return nil
	}
	merged := m.user.Apply(update)
	if field := merged.MissingField(); field != "" {
		m.mu.Unlock()
		return &domain.ValidationError{
			Kind:    domain.ValidationEmptyField,
			Field:   field,
			Message: m.messages.Text(i18n.ErrEmptyFields),
		}
	}
	m.user = &merged
	m.mu.Unlock()

	m.persist(ctx, merged)
	return nil
}

func (m *SessionManager) User() (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return domain.User{}, false
	}
	return *m.user, true
}

func (m *SessionManager) IsAuthenticated() bool {
	_, ok := m.User()
	return ok
}

func (m *SessionManager) setUser(ctx context.Context, user domain.User) {
	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()

	m.persist(ctx, user)
}

func (m *SessionManager) persist(ctx context.Context, user domain.User) {
	data, err := json.Marshal(toSessionRecord(user))
	if err != nil {
		m.logger.Warn("encode session", zap.Error(err))
		return
	}

	m.store.Set(ctx, prefs.KeySession, string(data))
}
