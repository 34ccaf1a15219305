package tenantforum

import (
	"context"

	"github.com/coregx/tenantforum/model"
)

// NotificationService defines an optional interface for reacting to forum
// events, e.g. to mail tenants about new responses to their topics.
//
// Notification errors are logged by the Forum and never fail the operation.
type NotificationService interface {
	// NotifyTopicCreated is called after a topic has been stored.
	NotifyTopicCreated(ctx context.Context, topic model.Topic) error

	// NotifyTopicDeleted is called after a topic and its responses have been removed.
	NotifyTopicDeleted(ctx context.Context, topic model.Topic) error

	// NotifyResponseCreated is called after a response has been stored.
	NotifyResponseCreated(ctx context.Context, topic model.Topic, response model.Response) error
}

// NoOpNotificationService is a no-op implementation of NotificationService.
// Use this when notifications are not needed.
type NoOpNotificationService struct{}

// NotifyTopicCreated does nothing.
func (n *NoOpNotificationService) NotifyTopicCreated(_ context.Context, _ model.Topic) error {
	return nil
}

// NotifyTopicDeleted does nothing.
func (n *NoOpNotificationService) NotifyTopicDeleted(_ context.Context, _ model.Topic) error {
	return nil
}

// NotifyResponseCreated does nothing.
func (n *NoOpNotificationService) NotifyResponseCreated(_ context.Context, _ model.Topic, _ model.Response) error {
	return nil
}

// LoggingNotificationService is a simple implementation that logs notifications.
type LoggingNotificationService struct {
	logger Logger
}

// NewLoggingNotificationService creates a new LoggingNotificationService.
func NewLoggingNotificationService(logger Logger) *LoggingNotificationService {
	return &LoggingNotificationService{logger: logger}
}

// NotifyTopicCreated logs topic creation.
func (n *LoggingNotificationService) NotifyTopicCreated(_ context.Context, topic model.Topic) error {
	n.logger.Infof("Topic created: id=%d, user=%d, visibility=%s", topic.ID, topic.UserID, topic.Visibility)
	return nil
}

// NotifyTopicDeleted logs topic deletion.
func (n *LoggingNotificationService) NotifyTopicDeleted(_ context.Context, topic model.Topic) error {
	n.logger.Infof("Topic deleted: id=%d, user=%d", topic.ID, topic.UserID)
	return nil
}

// NotifyResponseCreated logs response creation.
func (n *LoggingNotificationService) NotifyResponseCreated(_ context.Context, topic model.Topic, response model.Response) error {
	n.logger.Infof("Response created: id=%d, topic=%d, user=%d, topic_author=%d",
		response.ID, topic.ID, response.UserID, topic.UserID)
	return nil
}
