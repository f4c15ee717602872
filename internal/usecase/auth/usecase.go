package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"prestamos-backend/internal/domain/user"
	"prestamos-backend/internal/infrastructure/token"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Usecase struct {
	users   user.Repository
	revoked user.RevocationStore
	tokens  *token.Manager
	log     logrus.FieldLogger
	cost    int
}

func NewUsecase(users user.Repository, revoked user.RevocationStore, tokens *token.Manager, log logrus.FieldLogger) *Usecase {
	return &Usecase{users: users, revoked: revoked, tokens: tokens, log: log, cost: bcrypt.DefaultCost}
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterDTO, error) {
	if in.Password != in.PasswordConfirmation {
		return nil, user.ErrPasswordMismatch
	}
	email := normalizeEmail(in.Email)

	_, err := u.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, user.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("get user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	usr := &user.User{Name: strings.TrimSpace(in.Name), Email: email, PasswordHash: string(hash)}
	if err := u.users.Create(ctx, usr); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, user.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	tok, err := u.issue(usr)
	if err != nil {
		return nil, err
	}
	u.log.WithField("user_id", usr.ID).Info("auth: registered")
	return &RegisterDTO{User: toUserDTO(usr), Token: *tok}, nil
}

// Login answers ErrInvalidCredentials for both an unknown email and a wrong
// password.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*TokenDTO, error) {
	usr, err := u.users.GetByEmail(ctx, normalizeEmail(in.Email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		u.log.WithField("user_id", usr.ID).Warn("auth: bad password")
		return nil, user.ErrInvalidCredentials
	}
	return u.issue(usr)
}

// Authenticate verifies a raw bearer token and that it was not logged out.
func (u *Usecase) Authenticate(ctx context.Context, raw string) (*Principal, error) {
	claims, err := u.tokens.Parse(raw)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}
	revoked, err := u.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, user.ErrTokenRevoked
	}
	uid, err := claims.UserID()
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}
	return &Principal{UserID: uid, Name: claims.Name, TokenID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func (u *Usecase) Me(ctx context.Context, userID uint64) (*UserDTO, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	dto := toUserDTO(usr)
	return &dto, nil
}

// Logout revokes the caller's token until it would have expired.
func (u *Usecase) Logout(ctx context.Context, p *Principal) error {
	if err := u.revoked.Revoke(ctx, p.TokenID, p.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	u.log.WithField("user_id", p.UserID).Info("auth: logged out")
	return nil
}

func (u *Usecase) issue(usr *user.User) (*TokenDTO, error) {
	raw, claims, err := u.tokens.Issue(usr.ID, usr.Name)
	if err != nil {
		return nil, err
	}
	return &TokenDTO{AccessToken: raw, TokenType: "Bearer", ExpiresAt: claims.ExpiresAt.Time}, nil
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func toUserDTO(u *user.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}
