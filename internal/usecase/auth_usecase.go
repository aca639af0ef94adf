package usecase

//go:generate mockgen -source=auth_usecase.go -destination=../adapter/http/handlers/mocks/auth_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldops/internal/domain/access"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const tokenIssuer = "fieldops"

// TokenClaims is the JWT payload. RegisteredClaims.ID is the revocation handle.
type TokenClaims struct {
	UserID string        `json:"uid"`
	Role   entities.Role `json:"role"`
	jwt.RegisteredClaims
}

type Session struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	User      entities.User `json:"user"`
}

// Principal is an authenticated caller together with the token it presented.
type Principal struct {
	access.Subject
	TokenID   string
	ExpiresAt time.Time
}

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Authenticate(ctx context.Context, token string) (Principal, error)
	Logout(ctx context.Context, p Principal) error
	Me(ctx context.Context, actor access.Subject) (entities.User, error)
}

type AuthUseCase struct {
	users     interfaces.IUserRepository
	blacklist interfaces.ITokenBlacklist
	secret    []byte
	ttl       time.Duration
	now       func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, blacklist interfaces.ITokenBlacklist, secret string, ttl time.Duration) *AuthUseCase {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthUseCase{
		users:     users,
		blacklist: blacklist,
		secret:    []byte(secret),
		ttl:       ttl,
		now:       utcNow,
	}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (Session, error) {
	usr, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return Session{}, err
	}
	if usr.ID == "" || bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) != nil {
		log.Printf("[auth][usecase] login rejected email=%s", email)
		return Session{}, ErrInvalidCredentials
	}
	if !usr.Active {
		return Session{}, ErrInactiveUser
	}

	now := u.now()
	expires := now.Add(u.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		UserID: usr.ID,
		Role:   usr.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   usr.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return Session{}, err
	}
	if err := u.users.TouchLastLogin(ctx, usr.ID, now); err != nil {
		log.Printf("[auth][usecase] last login not recorded id=%s err=%v", usr.ID, err)
	} else {
		usr.LastLogin = &now
	}
	log.Printf("[auth][usecase] login id=%s role=%s", usr.ID, usr.Role)
	return Session{Token: signed, ExpiresAt: expires, User: usr}, nil
}

// Authenticate validates the bearer token, rejects revoked ones and re-reads the user so a
// deactivated account loses access immediately.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (Principal, error) {
	claims := &TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return u.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(u.now),
	)
	if err != nil || !parsed.Valid {
		return Principal{}, ErrInvalidToken
	}
	if u.blacklist != nil && claims.ID != "" {
		revoked, err := u.blacklist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return Principal{}, err
		}
		if revoked {
			return Principal{}, ErrInvalidToken
		}
	}
	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return Principal{}, err
	}
	if usr.ID == "" {
		return Principal{}, ErrInvalidToken
	}
	if !usr.Active {
		return Principal{}, ErrInactiveUser
	}
	p := Principal{
		Subject: access.Subject{ID: usr.ID, Role: usr.Role},
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, nil
}

// Logout revokes the presented token until its natural expiry.
func (u *AuthUseCase) Logout(ctx context.Context, p Principal) error {
	if u.blacklist == nil || p.TokenID == "" {
		return errors.New("token revocation is not available")
	}
	ttl := p.ExpiresAt.Sub(u.now())
	if ttl <= 0 {
		return nil
	}
	if err := u.blacklist.Revoke(ctx, p.TokenID, ttl); err != nil {
		return err
	}
	log.Printf("[auth][usecase] logout id=%s", p.ID)
	return nil
}

func (u *AuthUseCase) Me(ctx context.Context, actor access.Subject) (entities.User, error) {
	usr, err := u.users.GetByID(ctx, actor.ID)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return usr, nil
}
