package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	adminRepo "sahara/database/repository/admin"
	"sahara/models"
	"sahara/utils"
)

type memAdminRepo struct {
	admins []models.Admin
}

func (m *memAdminRepo) Create(a *models.Admin) error {
	m.admins = append(m.admins, *a)
	return nil
}

func (m *memAdminRepo) GetByID(id string) (*models.Admin, error) {
	for i := range m.admins {
		if m.admins[i].ID == id {
			a := m.admins[i]
			return &a, nil
		}
	}
	return nil, adminRepo.ErrNotFound
}

func (m *memAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	for i := range m.admins {
		if m.admins[i].Email == email {
			a := m.admins[i]
			return &a, nil
		}
	}
	return nil, adminRepo.ErrNotFound
}

func seededRepo(t *testing.T) *memAdminRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	return &memAdminRepo{admins: []models.Admin{{
		ID:           "adm-1",
		Email:        "admin@sahara-tours.com",
		PasswordHash: string(hash),
	}}}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := seededRepo(t)
	svc := &DefaultAuthService{Repo: repo}

	result, err := svc.Login("admin@sahara-tours.com", "hunter2secret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a signed token")
	}
	if result.Admin.ID != "adm-1" || result.Admin.Email != "admin@sahara-tours.com" {
		t.Fatalf("unexpected identity: %+v", result.Admin)
	}

	identity, err := svc.Verify(result.Token)
	if err != nil {
		t.Fatalf("verify error: %v", err)
	}
	if identity.ID != "adm-1" {
		t.Fatalf("verified id = %q, want adm-1", identity.ID)
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := &DefaultAuthService{Repo: seededRepo(t)}

	for _, tc := range []struct{ email, password string }{
		{"nobody@sahara-tours.com", "hunter2secret"},
		{"admin@sahara-tours.com", "wrong"},
	} {
		_, err := svc.Login(tc.email, tc.password)
		var ve *utils.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("login(%q): expected ValidationError, got %v", tc.email, err)
		}
		if ve.Message != "Invalid credentials" {
			t.Fatalf("login(%q): message = %q, want Invalid credentials", tc.email, ve.Message)
		}
	}
}

func TestVerifyRejectsGarbageToken(t *testing.T) {
	svc := &DefaultAuthService{Repo: seededRepo(t)}

	_, err := svc.Verify("not-a-token")
	var ae *utils.AuthError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AuthError, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := &DefaultAuthService{Repo: seededRepo(t)}

	token, err := utils.GenerateToken("adm-1", "admin@sahara-tours.com", -time.Minute)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	var ae *utils.AuthError
	if _, err := svc.Verify(token); !errors.As(err, &ae) {
		t.Fatalf("expected AuthError for an expired token, got %v", err)
	}
}

func TestVerifyRejectsDeletedAdmin(t *testing.T) {
	repo := seededRepo(t)
	svc := &DefaultAuthService{Repo: repo}

	result, err := svc.Login("admin@sahara-tours.com", "hunter2secret")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}

	repo.admins = nil
	var ae *utils.AuthError
	if _, err := svc.Verify(result.Token); !errors.As(err, &ae) {
		t.Fatalf("expected AuthError once the admin record is gone, got %v", err)
	}
}
