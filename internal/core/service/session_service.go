package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/beneficios/portal-api/internal/core/domain"
	"github.com/beneficios/portal-api/internal/core/ports"
	"github.com/beneficios/portal-api/internal/pkg/metrics"
)

// AuditSink receives activity entries. Recording never fails or blocks a
// session operation; delivery is the sink's concern.
type AuditSink interface {
	Record(entry domain.ActivityLog)
}

type sessionService struct {
	dir     ports.UserDirectory
	pointer ports.PointerStore
	audit   AuditSink
	log     zerolog.Logger

	mu      sync.RWMutex
	current *domain.UserAccount
}

// NewSessionService returns the session store for a portal instance. The
// session starts anonymous; call Restore to re-derive it from the durable
// pointer. audit may be nil.
func NewSessionService(
	dir ports.UserDirectory,
	pointer ports.PointerStore,
	audit AuditSink,
	log zerolog.Logger,
) ports.SessionService {
	return &sessionService{
		dir:     dir,
		pointer: pointer,
		audit:   audit,
		log:     log,
	}
}

// Login scans the directory in insertion order; the first record matching on
// username or email whose secret verifies wins. Duplicate identifiers are not
// prevented at registration, so first-match is the contract.
func (s *sessionService) Login(ctx context.Context, identifier, secret string) (*domain.UserAccount, bool) {
	for _, u := range s.dir.Users() {
		if u.Username != identifier && u.Email != identifier {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.SecretHash), []byte(secret)) != nil {
			continue
		}

		s.bind(ctx, u)
		metrics.LoginsTotal.WithLabelValues("success").Inc()
		s.record(u, domain.EventLogin, "credential login")
		return u, true
	}

	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	s.log.Debug().Str("identifier", identifier).Msg("login failed")
	return nil, false
}

// LoginAsPreset binds the session to the account with the given id without a
// credential check. Only reachable from the demonstration quick-login path;
// unknown ids are ignored.
func (s *sessionService) LoginAsPreset(ctx context.Context, userID string) {
	u, ok := s.dir.ByID(userID)
	if !ok {
		s.log.Warn().Str("user_id", userID).Msg("preset login for unknown id ignored")
		return
	}

	s.bind(ctx, u)
	s.record(u, domain.EventLogin, "quick login")
}

func (s *sessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	u := s.current
	s.current = nil
	s.mu.Unlock()

	metrics.SessionActive.Set(0)
	if err := s.pointer.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear session pointer")
	}
	if u != nil {
		s.record(u, domain.EventLogout, "logout")
	}
}

// Register creates the account and immediately binds it as the active
// session, so a freshly registered collaborator lands on the portal without a
// second login step.
func (s *sessionService) Register(ctx context.Context, input ports.NewUserInput) *domain.UserAccount {
	u := s.dir.AddUser(input)
	s.bind(ctx, u)

	metrics.RegistrationsTotal.Inc()
	s.record(u, domain.EventRegistered, "self registration")
	s.log.Info().Str("user_id", u.ID).Str("username", u.Username).Msg("account registered")
	return u
}

// UpdateRole delegates to the directory and, when the bound identity is the
// one changed, refreshes the in-memory session copy so the new role applies
// on the very next navigation without re-login.
func (s *sessionService) UpdateRole(ctx context.Context, userID string, role domain.Role) {
	s.dir.SetRole(userID, role)

	u, ok := s.dir.ByID(userID)
	if !ok {
		return
	}

	s.mu.Lock()
	if s.current != nil && s.current.ID == userID {
		s.current = u
	}
	s.mu.Unlock()

	metrics.RoleUpdatesTotal.WithLabelValues(string(role)).Inc()
	s.record(u, domain.EventRoleChange, "role set to "+string(role))
}

// Restore re-derives the session from the durable pointer. A missing or stale
// pointer degrades to an anonymous session, never to a fault.
func (s *sessionService) Restore(ctx context.Context) {
	id, err := s.pointer.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load session pointer, starting anonymous")
		return
	}
	if id == "" {
		return
	}

	u, ok := s.dir.ByID(id)
	if !ok {
		s.log.Info().Str("user_id", id).Msg("stale session pointer, starting anonymous")
		return
	}

	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
	metrics.SessionActive.Set(1)
	s.log.Info().Str("user_id", u.ID).Str("username", u.Username).Msg("session restored")
}

func (s *sessionService) Current() *domain.UserAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *sessionService) IsAuthenticated() bool {
	return s.Current() != nil
}

func (s *sessionService) HasRole(role domain.Role) bool {
	return domain.IsRole(s.Current(), role)
}

func (s *sessionService) HasAnyRole(roles ...domain.Role) bool {
	return domain.HasAnyRole(s.Current(), roles...)
}

// bind updates the in-memory session first and only then the durable pointer:
// a reader observing the in-process session is always correct even when the
// durable write fails.
func (s *sessionService) bind(ctx context.Context, u *domain.UserAccount) {
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()

	metrics.SessionActive.Set(1)
	if err := s.pointer.Save(ctx, u.ID); err != nil {
		s.log.Warn().Err(err).Str("user_id", u.ID).Msg("failed to persist session pointer")
	}
}

func (s *sessionService) record(u *domain.UserAccount, event domain.ActivityEvent, description string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.ActivityLog{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		Username:    u.Username,
		UserID:      u.ID,
		Event:       event,
		Description: description,
	})
}
