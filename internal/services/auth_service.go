package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"modemarket/internal/domain"
	"modemarket/internal/repos"
)

type AuthService struct {
	Accounts *repos.AccountRepo
	Secret   []byte
	TokenTTL time.Duration
}

func NewAuthService(accounts *repos.AccountRepo, secret string) *AuthService {
	return &AuthService{Accounts: accounts, Secret: []byte(secret), TokenTTL: 24 * time.Hour}
}

// Login verifies the password and issues a signed token carrying the
// account id and permission type.
func (s *AuthService) Login(username, password string) (string, domain.Account, error) {
	a, err := s.Accounts.ByUsername(username)
	if err != nil {
		return "", domain.Account{}, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return "", domain.Account{}, domain.ErrInvalidCredentials
	}

	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"account_id":         a.ID,
		"permission_type_id": a.PermissionTypeID,
		"iat":                now.Unix(),
		"exp":                now.Add(s.TokenTTL).Unix(),
	})
	signed, err := tok.SignedString(s.Secret)
	if err != nil {
		return "", domain.Account{}, err
	}
	return signed, a, nil
}

// Verify parses a token and returns the account id and permission type.
func (s *AuthService) Verify(token string) (int64, int, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, 0, domain.ErrAccountDoesNotExist
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, 0, domain.ErrAccountDoesNotExist
	}
	accountID, ok := claims["account_id"].(float64)
	if !ok {
		return 0, 0, domain.ErrAccountDoesNotExist
	}
	permission, ok := claims["permission_type_id"].(float64)
	if !ok {
		return 0, 0, domain.ErrAccountDoesNotExist
	}
	return int64(accountID), int(permission), nil
}
