package auth

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	adminRepo "sahara/database/repository/admin"
	"sahara/models"
	"sahara/utils"
)

// tokenTTL is the lifetime of an issued admin token.
const tokenTTL = time.Hour

// LoginResult carries the signed token and the verified admin identity.
type LoginResult struct {
	Token string               `json:"token"`
	Admin models.AdminIdentity `json:"admin"`
}

// AuthService exchanges admin credentials for bearer tokens and verifies them.
type AuthService interface {
	Login(email, password string) (*LoginResult, error)
	Verify(token string) (*models.AdminIdentity, error)
}

// DefaultAuthService implements AuthService.
type DefaultAuthService struct {
	Repo adminRepo.AdminRepository
}

// Login checks the credential against the stored bcrypt hash and issues a
// one-hour token. Unknown email and wrong password are indistinguishable to
// the caller.
func (s *DefaultAuthService) Login(email, password string) (*LoginResult, error) {
	admin, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrNotFound) {
			return nil, utils.NewValidationError("Invalid credentials")
		}
		return nil, utils.NewStorageError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewValidationError("Invalid credentials")
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email, tokenTTL)
	if err != nil {
		return nil, utils.NewStorageError(err)
	}

	return &LoginResult{
		Token: token,
		Admin: models.AdminIdentity{ID: admin.ID, Email: admin.Email},
	}, nil
}

// Verify validates a token and returns the admin identity it asserts.
func (s *DefaultAuthService) Verify(token string) (*models.AdminIdentity, error) {
	adminID, err := utils.ExtractIDFromToken(token)
	if err != nil {
		return nil, utils.NewAuthError("Token is not valid")
	}

	admin, err := s.Repo.GetByID(adminID)
	if err != nil {
		if errors.Is(err, adminRepo.ErrNotFound) {
			return nil, utils.NewAuthError("Token is not valid")
		}
		return nil, utils.NewStorageError(err)
	}

	return &models.AdminIdentity{ID: admin.ID, Email: admin.Email}, nil
}
