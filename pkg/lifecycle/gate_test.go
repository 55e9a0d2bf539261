package lifecycle

import (
	"testing"

	"estate-listing-be/internal/entity"
)

func TestRequiresPayment(t *testing.T) {
	free := &entity.Submission{CommissionAmount: 0}
	if RequiresPayment(free) {
		t.Error("free submission must not require payment")
	}

	paid := &entity.Submission{CommissionAmount: 150}
	if !RequiresPayment(paid) {
		t.Error("submission with a commission must require payment")
	}
}

func TestCanApprove(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		payment  entity.PaymentStatus
		override bool
		want     bool
	}{
		{
			name:    "free submission approves without payment",
			amount:  0,
			payment: entity.PaymentStatusUnpaid,
			want:    true,
		},
		{
			name:    "paid commission approves",
			amount:  100,
			payment: entity.PaymentStatusPaid,
			want:    true,
		},
		{
			name:    "unpaid commission blocks approval",
			amount:  100,
			payment: entity.PaymentStatusUnpaid,
			want:    false,
		},
		{
			name:     "override bypasses unpaid commission",
			amount:   100,
			payment:  entity.PaymentStatusUnpaid,
			override: true,
			want:     true,
		},
		{
			name:    "refunded payment blocks approval",
			amount:  100,
			payment: entity.PaymentStatusRefunded,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &entity.Submission{
				CommissionAmount: tt.amount,
				PaymentStatus:    tt.payment,
			}
			if got := CanApprove(sub, tt.override); got != tt.want {
				t.Errorf("CanApprove() = %v, want %v", got, tt.want)
			}
		})
	}
}
