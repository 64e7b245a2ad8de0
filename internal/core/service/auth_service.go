package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/creomotion/agency-api/internal/core/domain"
	"github.com/creomotion/agency-api/internal/core/ports"
)

// bcryptCost is used for all password hashes in the system.
const bcryptCost = 12

// AuthService implements the dual-identity login: an email is resolved
// against staff users first, client contacts second, and the first match with
// a valid password wins. Failures are normalised to ErrInvalidCredentials so
// responses never reveal whether an email exists.
type AuthService struct {
	users      ports.UserRepository
	clients    ports.ClientRepository
	jwtSecret  string
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, clients ports.ClientRepository, jwtSecret string, sessionTTL time.Duration, log zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		clients:    clients,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// Login authenticates any principal and returns a signed session token plus
// the resolved identity.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	return s.login(ctx, email, password, false)
}

// PortalLogin authenticates for the client portal. Staff accounts whose role
// is not CLIENT are rejected with ErrPortalAccessDenied even when the
// password is correct.
func (s *AuthService) PortalLogin(ctx context.Context, email, password string) (string, *domain.Principal, error) {
	return s.login(ctx, email, password, true)
}

func (s *AuthService) login(ctx context.Context, email, password string, portalOnly bool) (string, *domain.Principal, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	principal, err := s.resolvePrincipal(ctx, email, password, portalOnly)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(principal)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to sign session token")
		return "", nil, err
	}

	s.log.Info().
		Str("email", principal.Email).
		Str("role", principal.Role).
		Str("kind", string(principal.Kind)).
		Msg("login succeeded")

	return token, principal, nil
}

// resolvePrincipal performs the User-then-Client lookup. A User row sharing
// an email with a Client row always shadows it.
func (s *AuthService) resolvePrincipal(ctx context.Context, email, password string, portalOnly bool) (*domain.Principal, error) {
	user, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		if portalOnly && user.Role != domain.RoleClient {
			return nil, domain.ErrPortalAccessDenied
		}
		return &domain.Principal{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
			Kind:  domain.PrincipalStaff,
		}, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	client, err := s.clients.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	// An empty hash means no portal access was provisioned for this contact.
	if !client.HasPortalAccess() {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Principal{
		ID:    client.ID,
		Email: client.Email,
		Name:  client.Name,
		Role:  domain.RoleClient,
		Kind:  domain.PrincipalClient,
	}, nil
}

func (s *AuthService) generateToken(p *domain.Principal) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": p.ID,
		"email":  p.Email,
		"role":   p.Role,
		"iat":    now.Unix(),
		"exp":    now.Add(s.sessionTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
