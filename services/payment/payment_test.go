package payment

import (
	"strings"
	"testing"
	"time"
)

func TestComputeSummary(t *testing.T) {
	summary := ComputeSummary(150, 3)

	if summary.Subtotal != 450 {
		t.Fatalf("subtotal = %v, want 450", summary.Subtotal)
	}
	if summary.Tax != 45 {
		t.Fatalf("tax = %v, want 45", summary.Tax)
	}
	if summary.Total != 495 {
		t.Fatalf("total = %v, want 495", summary.Total)
	}
}

func TestComputeSummaryClampsNegatives(t *testing.T) {
	if s := ComputeSummary(-150, 3); s.Total != 0 {
		t.Fatalf("negative price must yield a zero total, got %v", s.Total)
	}
	if s := ComputeSummary(150, -3); s.Total != 0 {
		t.Fatalf("negative participants must yield a zero total, got %v", s.Total)
	}
}

func TestProcessReturnsPaidReceipt(t *testing.T) {
	p := &DefaultProcessor{Delay: time.Millisecond}
	summary := ComputeSummary(150, 2)

	receipt, err := p.Process("creditCard", summary)
	if err != nil {
		t.Fatalf("process error: %v", err)
	}
	if receipt.Status != "paid" {
		t.Fatalf("status = %q, want paid", receipt.Status)
	}
	if !strings.HasPrefix(receipt.PaymentID, "pay_") {
		t.Fatalf("paymentId = %q, want a pay_ prefix", receipt.PaymentID)
	}
	if receipt.Method != "creditCard" {
		t.Fatalf("method = %q, want creditCard", receipt.Method)
	}
	if receipt.Summary != summary {
		t.Fatalf("receipt summary = %+v, want %+v", receipt.Summary, summary)
	}
}
