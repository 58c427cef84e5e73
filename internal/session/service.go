package session

import (
	"context"
	"strings"
	"time"

	"github.com/addisavenue/storefront-backend/pkg/auth"
	authsession "github.com/addisavenue/storefront-backend/pkg/auth/session"
	"github.com/addisavenue/storefront-backend/pkg/config"
	pkgerrors "github.com/addisavenue/storefront-backend/pkg/errors"
	"github.com/addisavenue/storefront-backend/pkg/logger"
	"github.com/addisavenue/storefront-backend/pkg/security"
)

// Session is the result of a successful sign-in.
type Session struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

// Service implements the storefront's stub authentication. Any email
// signs in after a simulated network round-trip; the display name is the
// address's local part. Credentials are recorded at registration but
// never checked.
type Service interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Register(ctx context.Context, email, password, name string) (Session, error)
	Logout(ctx context.Context, accessID string) error
	Current(ctx context.Context) (User, bool)
	IsActive(ctx context.Context) bool
}

type service struct {
	store    *Store
	sessions *authsession.Manager
	jwtCfg   config.JWTConfig
	passCfg  config.PasswordConfig
	delay    time.Duration
	log      *logger.Logger
	now      func() time.Time
}

// NewService wires the sign-in stub. sessions may be nil when Redis
// liveness tracking is disabled.
func NewService(
	store *Store,
	sessions *authsession.Manager,
	jwtCfg config.JWTConfig,
	passCfg config.PasswordConfig,
	authCfg config.AuthConfig,
	log *logger.Logger,
) (Service, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session service requires a store")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session service requires a logger")
	}
	return &service{
		store:    store,
		sessions: sessions,
		jwtCfg:   jwtCfg,
		passCfg:  passCfg,
		delay:    authCfg.SimulatedDelay,
		log:      log,
		now:      time.Now,
	}, nil
}

func (s *service) Login(ctx context.Context, email, _ string) (Session, error) {
	email = NormalizeEmail(email)
	if err := checkEmail(email); err != nil {
		return Session{}, err
	}
	if err := s.simulateRoundTrip(ctx); err != nil {
		return Session{}, err
	}

	user := User{Email: email, Name: NameFromEmail(email)}
	if existing, ok := s.store.Current(ctx); ok && existing.Email == email {
		// Keep a registered name and credential across repeat logins.
		user.Name = existing.Name
		user.PasswordHash = existing.PasswordHash
	}

	return s.establish(ctx, user)
}

func (s *service) Register(ctx context.Context, email, password, name string) (Session, error) {
	email = NormalizeEmail(email)
	if err := checkEmail(email); err != nil {
		return Session{}, err
	}
	if err := s.simulateRoundTrip(ctx); err != nil {
		return Session{}, err
	}

	user := User{Email: email, Name: strings.TrimSpace(name)}
	if user.Name == "" {
		user.Name = NameFromEmail(email)
	}
	if password != "" {
		hash, err := security.HashPassword(password, s.passCfg)
		if err != nil {
			return Session{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}
		user.PasswordHash = hash
	}

	return s.establish(ctx, user)
}

func (s *service) establish(ctx context.Context, user User) (Session, error) {
	accessID := authsession.NewAccessID()
	token, err := auth.MintAccessToken(s.jwtCfg, s.now(), auth.AccessTokenPayload{
		Email: user.Email,
		Name:  user.Name,
		JTI:   accessID,
	})
	if err != nil {
		return Session{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	s.store.Put(ctx, user)

	if s.sessions != nil {
		if err := s.sessions.Register(ctx, accessID); err != nil {
			// Liveness tracking is best effort; the JWT still works.
			s.log.Warn(s.log.WithUserEmail(ctx, user.Email), "session liveness registration failed")
		}
	}

	return Session{User: user.Public(), AccessToken: token}, nil
}

func (s *service) Logout(ctx context.Context, accessID string) error {
	s.store.Clear(ctx)
	if s.sessions != nil && accessID != "" {
		if err := s.sessions.Revoke(ctx, accessID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "revoke session")
		}
	}
	return nil
}

func (s *service) Current(ctx context.Context) (User, bool) {
	u, ok := s.store.Current(ctx)
	return u.Public(), ok
}

func (s *service) IsActive(ctx context.Context) bool {
	_, ok := s.store.Current(ctx)
	return ok
}

// simulateRoundTrip blocks for the configured delay, mirroring the fake
// network wait the storefront always had. Cancellation wins over the
// timer.
func (s *service) simulateRoundTrip(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return pkgerrors.Wrap(pkgerrors.CodeInternal, ctx.Err(), "sign-in interrupted")
	case <-timer.C:
		return nil
	}
}

func checkEmail(email string) error {
	at := strings.Index(email, "@")
	if email == "" || at <= 0 || at == len(email)-1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "a valid email address is required")
	}
	return nil
}
