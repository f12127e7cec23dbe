package contact

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	contactRepo "sahara/database/repository/contact"
	"sahara/models"
	"sahara/utils"
)

// CreateContactInput is the public contact form payload. Phone is optional.
type CreateContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ContactService manages contact form messages.
type ContactService interface {
	CreateContact(input CreateContactInput) (*models.Contact, error)
	ListContacts() ([]models.Contact, error)
	DeleteContact(id string) error
}

// DefaultContactService implements ContactService.
type DefaultContactService struct {
	Repo contactRepo.ContactRepository
}

// CreateContact validates and persists a new contact message with the
// submission date set server-side.
func (s *DefaultContactService) CreateContact(input CreateContactInput) (*models.Contact, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)

	if name == "" || email == "" || message == "" {
		return nil, utils.NewValidationError("Please include name, email, and message")
	}

	contact := models.Contact{
		ID:      uuid.New().String(),
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(input.Phone),
		Message: message,
		Date:    time.Now(),
	}

	if err := s.Repo.Create(&contact); err != nil {
		return nil, utils.NewStorageError(err)
	}
	return &contact, nil
}

// ListContacts returns all messages, newest first.
func (s *DefaultContactService) ListContacts() ([]models.Contact, error) {
	contacts, err := s.Repo.GetAll()
	if err != nil {
		return nil, utils.NewStorageError(err)
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts, nil
}

// DeleteContact hard-deletes a message by id.
func (s *DefaultContactService) DeleteContact(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, contactRepo.ErrNotFound) {
			return utils.NewNotFoundError("Contact")
		}
		return utils.NewStorageError(err)
	}
	return nil
}
