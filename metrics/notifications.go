package metrics

import (
	"context"

	"github.com/coregx/tenantforum"
	"github.com/coregx/tenantforum/model"
)

// NotificationService counts forum events and forwards them to next.
type NotificationService struct {
	next    tenantforum.NotificationService
	metrics *Metrics
}

// CountNotifications returns a NotificationService counting events before
// passing them on. A nil next drops the events after counting.
func CountNotifications(next tenantforum.NotificationService, m *Metrics) *NotificationService {
	if next == nil {
		next = &tenantforum.NoOpNotificationService{}
	}
	return &NotificationService{next: next, metrics: m}
}

// NotifyTopicCreated implements tenantforum.NotificationService.
func (n *NotificationService) NotifyTopicCreated(ctx context.Context, topic model.Topic) error {
	n.metrics.TopicsCreatedTotal.WithLabelValues(topic.Visibility.OrDefault().String()).Inc()
	return n.next.NotifyTopicCreated(ctx, topic)
}

// NotifyTopicDeleted implements tenantforum.NotificationService.
func (n *NotificationService) NotifyTopicDeleted(ctx context.Context, topic model.Topic) error {
	n.metrics.TopicsDeletedTotal.Inc()
	return n.next.NotifyTopicDeleted(ctx, topic)
}

// NotifyResponseCreated implements tenantforum.NotificationService.
func (n *NotificationService) NotifyResponseCreated(ctx context.Context, topic model.Topic, response model.Response) error {
	n.metrics.ResponsesCreatedTotal.Inc()
	return n.next.NotifyResponseCreated(ctx, topic, response)
}
