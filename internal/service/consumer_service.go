// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"estate-listing-be/internal/dto"
	"estate-listing-be/internal/entity"
	"estate-listing-be/internal/pkg/apperrors"
	"estate-listing-be/internal/pkg/logger"
	"estate-listing-be/internal/repository/unitofwork"
	"estate-listing-be/pkg/lifecycle"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the payment-confirmed queue and drives the
// lifecycle machine. The webhook handler stays fast; everything slow
// (status writes, publishing, events) happens here.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	policy     IPolicyService
	machine    *lifecycle.Machine
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	policy IPolicyService,
	machine *lifecycle.Machine,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		policy:     policy,
		machine:    machine,
		logger:     logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PaymentConfirmedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal payment message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed messages never become valid on retry
		return
	}

	policy, err := cs.policy.Current(ctx)
	if err != nil {
		cs.logger.Error("CONSUMER", "Failed to load commission policy", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	err = cs.machine.HandlePaymentConfirmed(ctx, uow, payload.SubmissionId, policy,
		payload.Amount, payload.Currency, entity.PaymentSource(payload.Source), payload.ProviderRef)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			// The submission is gone; retrying cannot help.
			cs.logger.Warn("CONSUMER", "Payment confirmed for unknown submission", map[string]interface{}{
				"submission_id": payload.SubmissionId,
			})
			msg.Ack()
			return
		}
		cs.logger.Error("CONSUMER", "Failed to apply payment confirmation", map[string]interface{}{
			"submission_id": payload.SubmissionId,
			"error":         err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("CONSUMER", "Payment confirmation applied", map[string]interface{}{
		"submission_id": payload.SubmissionId,
	})
	msg.Ack()
}
