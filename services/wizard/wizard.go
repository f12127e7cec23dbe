package wizard

import (
	"errors"

	"github.com/google/uuid"

	experienceRepo "sahara/database/repository/experience"
	"sahara/models"
	"sahara/services/booking"
	"sahara/services/payment"
	"sahara/utils"
)

// Navigation actions accepted by SubmitStep.
const (
	ActionNext     = "next"
	ActionPrevious = "previous"
	ActionStay     = "stay"
)

// StepResult is the outcome of a step submission. A non-empty FieldErrors map
// means the step did not advance; this is not an error condition.
type StepResult struct {
	Session     *models.WizardSession `json:"session"`
	FieldErrors map[string]string     `json:"fieldErrors,omitempty"`
}

// ConfirmResult is the outcome of the final submission: the simulated payment
// receipt and the persisted booking.
type ConfirmResult struct {
	Booking *models.Booking        `json:"booking"`
	Receipt *models.PaymentReceipt `json:"receipt"`
	Summary models.PaymentSummary  `json:"summary"`
}

// WizardService drives the three-step booking flow. Session state lives in
// the store for the duration of the flow and is destroyed on confirmation or
// cancellation.
type WizardService interface {
	StartSession(experienceID string) (*models.WizardSession, error)
	GetSession(sessionID string) (*models.WizardSession, error)
	SubmitStep(sessionID string, form models.WizardForm, action string) (*StepResult, error)
	Confirm(sessionID string) (*ConfirmResult, error)
	Cancel(sessionID string) error
}

// DefaultWizardService implements WizardService.
type DefaultWizardService struct {
	Store    SessionStore
	Catalog  experienceRepo.ExperienceRepository
	Payments payment.Processor
	Bookings booking.BookingService
}

// StartSession opens a new wizard session. When an experience id is given its
// title, image, and price are snapshotted into the session; an unknown id is
// a NotFoundError, never replaced with fabricated data.
func (s *DefaultWizardService) StartSession(experienceID string) (*models.WizardSession, error) {
	session := &models.WizardSession{
		SessionID: uuid.New().String(),
		Step:      models.WizardStepSchedule,
		Form: models.WizardForm{
			ExperienceID:  experienceID,
			Participants:  1,
			PaymentMethod: models.PaymentMethodCreditCard,
		},
	}

	if experienceID != "" {
		if err := s.snapshotExperience(session, experienceID); err != nil {
			return nil, err
		}
	}
	session.TotalPrice = ComputeTotalPrice(session.PricePerPerson, session.Form.Participants)

	if err := s.Store.Save(session); err != nil {
		return nil, utils.NewStorageError(err)
	}
	return session, nil
}

// GetSession fetches the current state of a flow.
func (s *DefaultWizardService) GetSession(sessionID string) (*models.WizardSession, error) {
	return s.loadSession(sessionID)
}

// SubmitStep applies the submitted form state to the session and navigates.
// Next is gated by step-local validation: offending fields come back in
// FieldErrors and the step stays put. Previous always succeeds down to the
// first step. The running total is recomputed on every submission.
func (s *DefaultWizardService) SubmitStep(sessionID string, form models.WizardForm, action string) (*StepResult, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	if form.ExperienceID != "" && form.ExperienceID != session.Form.ExperienceID {
		if err := s.snapshotExperience(session, form.ExperienceID); err != nil {
			return nil, err
		}
	}
	if form.ExperienceID == "" {
		// Clients resubmit the whole form; keep the selection sticky.
		form.ExperienceID = session.Form.ExperienceID
	}
	session.Form = form
	session.TotalPrice = ComputeTotalPrice(session.PricePerPerson, session.Form.Participants)

	result := &StepResult{Session: session}

	switch action {
	case ActionPrevious:
		if session.Step > models.WizardStepSchedule {
			session.Step--
		}
	case ActionNext:
		if errs := ValidateStep(session.Step, session.Form); len(errs) > 0 {
			result.FieldErrors = errs
		} else if session.Step < models.WizardStepPayment {
			session.Step++
		}
	case ActionStay, "":
		// State update only.
	default:
		return nil, utils.NewValidationError("unknown action %q", action)
	}

	if err := s.Store.Save(session); err != nil {
		return nil, utils.NewStorageError(err)
	}
	return result, nil
}

// Confirm runs the final submission: all three steps are re-validated, the
// charge is simulated, the booking is persisted through the intake service,
// and the session is destroyed.
func (s *DefaultWizardService) Confirm(sessionID string) (*ConfirmResult, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	for _, step := range []int{models.WizardStepSchedule, models.WizardStepDetails, models.WizardStepPayment} {
		if errs := ValidateStep(step, session.Form); len(errs) > 0 {
			for _, msg := range errs {
				return nil, utils.NewValidationError("%s", msg)
			}
		}
	}

	summary := payment.ComputeSummary(session.PricePerPerson, session.Form.Participants)
	receipt, err := s.Payments.Process(session.Form.PaymentMethod, summary)
	if err != nil {
		return nil, err
	}

	booked, err := s.Bookings.CreateBooking(booking.CreateBookingInput{
		Name:            session.Form.FirstName + " " + session.Form.LastName,
		Email:           session.Form.Email,
		Phone:           session.Form.Phone,
		ExperienceID:    session.Form.ExperienceID,
		ExperienceTitle: session.ExperienceTitle,
		ExperienceImage: session.ExperienceImage,
		Date:            session.Form.Date,
		NumberOfPeople:  session.Form.Participants,
		SpecialRequests: session.Form.SpecialRequests,
		TotalAmount:     &summary.Total,
		TotalPrice:      &summary.Total,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Store.Delete(sessionID); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to delete wizard session %s: %v", sessionID, err)
	}

	return &ConfirmResult{Booking: booked, Receipt: receipt, Summary: summary}, nil
}

// Cancel abandons a flow and destroys its session.
func (s *DefaultWizardService) Cancel(sessionID string) error {
	if err := s.Store.Delete(sessionID); err != nil {
		return utils.NewStorageError(err)
	}
	return nil
}

func (s *DefaultWizardService) loadSession(sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, utils.NewNotFoundError("Wizard session")
		}
		return nil, utils.NewStorageError(err)
	}
	return session, nil
}

func (s *DefaultWizardService) snapshotExperience(session *models.WizardSession, experienceID string) error {
	exp, err := s.Catalog.GetByID(experienceID)
	if err != nil {
		if errors.Is(err, experienceRepo.ErrNotFound) {
			return utils.NewNotFoundError("Experience")
		}
		return utils.NewStorageError(err)
	}
	session.Form.ExperienceID = exp.ID
	session.ExperienceTitle = exp.Title
	session.ExperienceImage = exp.Image
	session.PricePerPerson = exp.PricePerPerson
	return nil
}
