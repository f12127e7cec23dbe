package wizard

import (
	"math"
	"regexp"

	"sahara/models"
)

var (
	emailPattern      = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	cardNumberPattern = regexp.MustCompile(`^[0-9\s]{13,19}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
)

func isOfferedTimeSlot(slot string) bool {
	for _, s := range models.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ValidateStep checks the step-local rules and returns field-keyed messages.
// An empty map means the step may advance.
func ValidateStep(step int, form models.WizardForm) map[string]string {
	errs := map[string]string{}

	switch step {
	case models.WizardStepSchedule:
		if form.ExperienceID == "" {
			errs["experience"] = "Please select an experience"
		}
		if form.Date == "" {
			errs["date"] = "Please select a date"
		}
		if form.Time == "" {
			errs["time"] = "Please select a time"
		} else if !isOfferedTimeSlot(form.Time) {
			errs["time"] = "Please select a time from the offered slots"
		}
		if form.Participants < 1 {
			errs["participants"] = "At least one participant is required"
		}
	case models.WizardStepDetails:
		if form.FirstName == "" {
			errs["firstName"] = "Please enter your first name"
		}
		if form.LastName == "" {
			errs["lastName"] = "Please enter your last name"
		}
		if form.Email == "" {
			errs["email"] = "Please enter your email"
		} else if !emailPattern.MatchString(form.Email) {
			errs["email"] = "Please enter a valid email"
		}
		if form.Phone == "" {
			errs["phone"] = "Please enter your phone number"
		}
	case models.WizardStepPayment:
		if form.PaymentMethod == models.PaymentMethodCreditCard {
			if form.CardName == "" {
				errs["cardName"] = "Please enter name on card"
			}
			if form.CardNumber == "" {
				errs["cardNumber"] = "Please enter your card number"
			} else if !cardNumberPattern.MatchString(form.CardNumber) {
				errs["cardNumber"] = "Please enter a valid card number"
			}
			if form.ExpiryDate == "" {
				errs["expiryDate"] = "Please enter expiry date"
			} else if !expiryPattern.MatchString(form.ExpiryDate) {
				errs["expiryDate"] = "Please enter a valid expiry date (MM/YY)"
			}
			if form.CVV == "" {
				errs["cvv"] = "Please enter CVV"
			} else if !cvvPattern.MatchString(form.CVV) {
				errs["cvv"] = "Please enter a valid CVV"
			}
		}
		if !form.TermsAccepted {
			errs["terms"] = "Please accept terms and conditions"
		}
	}

	return errs
}

// ComputeTotalPrice is the live price shown across the flow. A missing or
// invalid price counts as zero; the result never goes negative.
func ComputeTotalPrice(pricePerPerson float64, participants int) float64 {
	if math.IsNaN(pricePerPerson) || pricePerPerson < 0 {
		pricePerPerson = 0
	}
	if participants < 0 {
		participants = 0
	}
	return pricePerPerson * float64(participants)
}
