package types

import (
	"testing"
)

func TestParsePaymentStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    PaymentStatus
		wantErr bool
	}{
		{raw: "PAID", want: PaymentStatusPaid},
		{raw: "PAGADO", want: PaymentStatusPaid},
		{raw: "pagado", want: PaymentStatusPaid},
		{raw: " paid ", want: PaymentStatusPaid},
		{raw: "PENDING", want: PaymentStatusPending},
		{raw: "PENDIENTE", want: PaymentStatusPending},
		{raw: "FAILED", want: PaymentStatusFailed},
		{raw: "VENCIDO", want: PaymentStatusFailed},
		{raw: "SETTLED", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParsePaymentStatus(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParsePaymentStatus(%q) expected error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePaymentStatus(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParsePaymentStatus(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestPaymentStatusIsSettled(t *testing.T) {
	if !PaymentStatusPaid.IsSettled() {
		t.Error("PAID must be settled")
	}
	if PaymentStatusPending.IsSettled() {
		t.Error("PENDING must not be settled")
	}
	if PaymentStatusFailed.IsSettled() {
		t.Error("FAILED must not be settled")
	}
}
