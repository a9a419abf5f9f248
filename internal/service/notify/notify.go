// Package notify sends best-effort SMS confirmations to farmers. Delivery is
// fire-and-forget: a notification must never delay or fail the transaction
// that triggered it.
package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
	"github.com/nirbani/dairy/pkg/clients/msg91"
)

const sendTimeout = 15 * time.Second

// Notifier is what the ledger services call after a successful mutation.
type Notifier interface {
	CollectionRecorded(farmer models.Farmer, col models.MilkCollection)
	PaymentRecorded(farmer models.Farmer, payment models.Payment, newBalance float64)
}

// Nop discards all notifications.
type Nop struct{}

func (Nop) CollectionRecorded(models.Farmer, models.MilkCollection) {}
func (Nop) PaymentRecorded(models.Farmer, models.Payment, float64)  {}

// Service sends notifications over MSG91.
type Service struct {
	sms       msg91.Client
	dairyName string
	logger    *zap.Logger
}

// NewService wires the notifier. A nil sms client disables delivery but keeps
// the call sites uniform.
func NewService(sms msg91.Client, dairyName string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{sms: sms, dairyName: dairyName, logger: logger}
}

// CollectionRecorded confirms a milk intake to the farmer.
func (s *Service) CollectionRecorded(farmer models.Farmer, col models.MilkCollection) {
	message := fmt.Sprintf("%s: %s ji, your %s milk: %.1fL | fat %.1f%% | rate Rs %.2f/L | amount Rs %.2f. Thank you!",
		s.dairyName, farmer.Name, col.Shift, col.Quantity, col.Fat, col.Rate, col.Amount)
	s.deliver("collection", farmer.Phone, message)
}

// PaymentRecorded confirms a payment and the farmer's post-update balance.
// newBalance is read from the ledger after the mutation, so it is exact for
// every payment type.
func (s *Service) PaymentRecorded(farmer models.Farmer, payment models.Payment, newBalance float64) {
	message := fmt.Sprintf("%s: %s ji, %s of Rs %.2f received via %s. Outstanding balance: Rs %.2f. Thank you!",
		s.dairyName, farmer.Name, payment.PaymentType, payment.Amount, payment.PaymentMode, newBalance)
	s.deliver("payment", farmer.Phone, message)
}

func (s *Service) deliver(kind, phone, message string) {
	if s.sms == nil || phone == "" {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("sms dispatch panicked", zap.String("kind", kind), zap.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		err := s.sms.SendSMS(ctx, msg91.SendSMSRequest{Phone: phone, Message: message})
		if err != nil {
			s.logger.Warn("sms send failed", zap.String("kind", kind), zap.String("phone", phone), zap.Error(err))
			return
		}
		s.logger.Debug("sms sent", zap.String("kind", kind), zap.String("phone", phone))
	}()
}
