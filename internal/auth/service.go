package auth

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCredentials = errors.New("invalid credentials")
	ErrRoleNotGranted = errors.New("role not granted to this account")
	ErrBadCode        = errors.New("invalid or expired code")
)

type Service struct {
	Store Store
	Codes CodeStore
}

type RegisterInput struct {
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Roles         []string `json:"roles"`
	CompanyName   string   `json:"companyName"`
	StoreName     string   `json:"storeName"`
	ContactNumber string   `json:"number"`
	TwoFAEnabled  bool     `json:"twoFAEnabled"`
}

type LoginResult struct {
	TwoFARequired bool
	Role          string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	roles := in.Roles
	if len(roles) == 0 {
		roles = []string{RoleAdmin}
	}
	u := &User{
		Email:         in.Email,
		Password:      string(hashed),
		Roles:         roles,
		CompanyName:   in.CompanyName,
		StoreName:     in.StoreName,
		ContactNumber: in.ContactNumber,
		TwoFAEnabled:  in.TwoFAEnabled,
	}
	if err := s.Store.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login checks credentials and, for two-factor accounts, parks a one-time
// code and defers success to VerifyCode.
func (s *Service) Login(ctx context.Context, email, password, role string) (*LoginResult, error) {
	u, err := s.Store.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	if role != "" && !u.HasRole(role) {
		return nil, ErrRoleNotGranted
	}

	resolved := role
	if resolved == "" {
		resolved = u.PrimaryRole()
	}

	if u.TwoFAEnabled {
		if err := s.issueCode(ctx, email); err != nil {
			return nil, err
		}
		return &LoginResult{TwoFARequired: true, Role: resolved}, nil
	}
	return &LoginResult{TwoFARequired: false, Role: resolved}, nil
}

// SendCode issues a fresh code outside the login flow (the enable-2FA path).
func (s *Service) SendCode(ctx context.Context, email string) error {
	if _, err := s.Store.ByEmail(ctx, email); err != nil {
		return err
	}
	return s.issueCode(ctx, email)
}

// VerifyCode succeeds only against the most recently issued, unexpired code,
// and consumes it.
func (s *Service) VerifyCode(ctx context.Context, email, code string) (string, error) {
	stored, ok, err := s.Codes.Get(ctx, email)
	if err != nil {
		return "", err
	}
	if !ok || stored != code {
		return "", ErrBadCode
	}
	u, err := s.Store.ByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if err := s.Codes.Delete(ctx, email); err != nil {
		return "", err
	}
	return u.PrimaryRole(), nil
}

func (s *Service) issueCode(ctx context.Context, email string) error {
	code := GenerateCode()
	if err := s.Codes.Put(ctx, email, code); err != nil {
		return err
	}
	// mail delivery is handled outside this service; log for testing
	log.Printf("OTP for %s: %s", email, code)
	return nil
}
