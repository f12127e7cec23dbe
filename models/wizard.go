package models

// Wizard steps, in flow order.
const (
	WizardStepSchedule = 1 // experience, date, time slot, participants
	WizardStepDetails  = 2 // customer identity
	WizardStepPayment  = 3 // payment method, card fields, terms
)

// Payment methods accepted on the payment step.
const (
	PaymentMethodCreditCard   = "creditCard"
	PaymentMethodPayPal       = "paypal"
	PaymentMethodBankTransfer = "bankTransfer"
)

// TimeSlots is the fixed list of offered departure times.
var TimeSlots = []string{
	"09:00 AM", "10:30 AM", "12:00 PM", "02:00 PM", "03:30 PM", "05:00 PM", "06:30 PM",
}

// WizardForm accumulates everything the three steps collect. It travels by
// value between step submissions and is destroyed on confirmation.
type WizardForm struct {
	// Step 1: experience and schedule.
	ExperienceID string `json:"experience"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Participants int    `json:"participants"`

	// Step 2: customer details.
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests"`

	// Step 3: payment.
	PaymentMethod string `json:"paymentMethod"`
	CardName      string `json:"cardName"`
	CardNumber    string `json:"cardNumber"`
	ExpiryDate    string `json:"expiryDate"`
	CVV           string `json:"cvv"`
	TermsAccepted bool   `json:"termsAccepted"`
}

// WizardSession is the serializable state container for one booking flow.
type WizardSession struct {
	SessionID string     `json:"sessionId"`
	Step      int        `json:"step"`
	Form      WizardForm `json:"form"`

	// Snapshot of the selected experience, fetched once at session start.
	ExperienceTitle string  `json:"experienceTitle,omitempty"`
	ExperienceImage string  `json:"experienceImage,omitempty"`
	PricePerPerson  float64 `json:"pricePerPerson"`

	// Recomputed on every participants change.
	TotalPrice float64 `json:"totalPrice"`
}

// PaymentSummary is the simulated charge breakdown shown on the payment step.
type PaymentSummary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// PaymentReceipt is the outcome of the simulated charge.
type PaymentReceipt struct {
	PaymentID string         `json:"paymentId"`
	Method    string         `json:"method"`
	Summary   PaymentSummary `json:"summary"`
	Status    string         `json:"status"`
}
