package payment

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sahara/models"
)

// TaxRate is applied on top of the experience subtotal.
const TaxRate = 0.10

// processingDelay stands in for the round-trip to a real payment gateway.
const processingDelay = 1 * time.Second

// Processor charges the computed total for a wizard session. The current
// implementation only simulates the charge; a gateway integration would
// replace DefaultProcessor without touching its callers.
type Processor interface {
	Process(method string, summary models.PaymentSummary) (*models.PaymentReceipt, error)
}

// DefaultProcessor simulates payment processing: a fixed delay, then success.
// There is no failure path.
type DefaultProcessor struct {
	Logger *zap.Logger
	// Delay overrides the simulated processing time when positive.
	Delay time.Duration
}

// ComputeSummary derives the charge breakdown from the wizard's price state.
func ComputeSummary(pricePerPerson float64, participants int) models.PaymentSummary {
	if pricePerPerson < 0 {
		pricePerPerson = 0
	}
	if participants < 0 {
		participants = 0
	}
	subtotal := pricePerPerson * float64(participants)
	tax := subtotal * TaxRate
	return models.PaymentSummary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// Process simulates the charge and returns a paid receipt.
func (p *DefaultProcessor) Process(method string, summary models.PaymentSummary) (*models.PaymentReceipt, error) {
	delay := p.Delay
	if delay <= 0 {
		delay = processingDelay
	}
	time.Sleep(delay)

	receipt := &models.PaymentReceipt{
		PaymentID: "pay_" + uuid.New().String(),
		Method:    method,
		Summary:   summary,
		Status:    "paid",
	}
	if p.Logger != nil {
		p.Logger.Info("Simulated payment successful",
			zap.String("paymentId", receipt.PaymentID),
			zap.String("method", method),
			zap.Float64("total", summary.Total),
		)
	}
	return receipt, nil
}
