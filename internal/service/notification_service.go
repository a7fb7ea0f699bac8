package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/events"
)

// NotificationService reacts to domain events. Delivery is log-only for now.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleAccountRegistered)
	n.dispatcher.Subscribe(events.EventCompanyRegistered, n.handleAccountRegistered)
	n.dispatcher.Subscribe(events.EventJobPosted, n.handleJobPosted)
}

func (n *NotificationService) handleAccountRegistered(_ context.Context, event events.Event) error {
	n.logger.Info("AccountRegistered",
		zap.String("event_id", event.ID),
		zap.String("account_id", event.Actor.ID.String()),
		zap.String("role", event.Actor.Role.String()),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleJobPosted(_ context.Context, event events.Event) error {
	n.logger.Info("JobPosted",
		zap.String("event_id", event.ID),
		zap.String("company_id", event.Actor.ID.String()),
		zap.Any("payload", event.Payload))
	return nil
}
