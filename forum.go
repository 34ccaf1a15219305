package tenantforum

import (
	"context"

	"github.com/coregx/tenantforum/model"
)

// Forum is the entry point for reading and writing topics and responses on
// behalf of an authenticated user or customer.
//
// Every lookup is scoped: records a caller may not see are reported as
// ErrNoSuchTopic or ErrNoSuchResponse, exactly like missing ones.
//
// Thread safety: Safe for concurrent use if the repositories are.
type Forum struct {
	topics        TopicRepository
	responses     ResponseRepository
	logger        Logger
	notifications NotificationService
}

// NewForum creates a new Forum with the provided options.
//
// Required options:
//   - WithRepositories: topic and response repositories
func NewForum(opts ...Option) (*Forum, error) {
	f := &Forum{
		logger:        &NoopLogger{},
		notifications: &NoOpNotificationService{},
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, NewErrorWithCause(ErrCodeConfiguration, "failed to apply forum option", err)
		}
	}

	if f.topics == nil {
		return nil, NewError(ErrCodeConfiguration, "TopicRepository is required (use WithRepositories)")
	}
	if f.responses == nil {
		return nil, NewError(ErrCodeConfiguration, "ResponseRepository is required (use WithRepositories)")
	}

	return f, nil
}

// GetVisibleTopics selects the topics visible to the user.
func (f *Forum) GetVisibleTopics(ctx context.Context, user model.User) ([]model.Topic, error) {
	return f.topics.Find(ctx, VisibleTo(user))
}

// GetVisibleTopic returns a topic visible to the user.
func (f *Forum) GetVisibleTopic(ctx context.Context, id int64, user model.User) (model.Topic, error) {
	return f.topics.Get(ctx, id, VisibleTo(user))
}

// GetOwnTopics selects the topics authored by the user.
func (f *Forum) GetOwnTopics(ctx context.Context, user model.User) ([]model.Topic, error) {
	return f.topics.Find(ctx, OwnedBy(user))
}

// GetOwnTopic returns a topic authored by the user.
func (f *Forum) GetOwnTopic(ctx context.Context, id int64, user model.User) (model.Topic, error) {
	return f.topics.Get(ctx, id, OwnedBy(user))
}

// GetTopics selects the topics of a customer.
func (f *Forum) GetTopics(ctx context.Context, customer model.Customer) ([]model.Topic, error) {
	return f.topics.Find(ctx, OfCustomer(customer))
}

// GetTopic returns a topic of a customer.
func (f *Forum) GetTopic(ctx context.Context, id int64, customer model.Customer) (model.Topic, error) {
	return f.topics.Get(ctx, id, OfCustomer(customer))
}

// GetVisibleResponses selects the responses to a topic visible to the user.
func (f *Forum) GetVisibleResponses(ctx context.Context, topicID int64, user model.User) ([]model.Response, error) {
	return f.responses.FindByTopic(ctx, topicID, VisibleTo(user))
}

// GetResponses selects the responses to a topic of a customer.
func (f *Forum) GetResponses(ctx context.Context, topicID int64, customer model.Customer) ([]model.Response, error) {
	return f.responses.FindByTopic(ctx, topicID, OfCustomer(customer))
}

// GetResponse returns a response of a customer.
func (f *Forum) GetResponse(ctx context.Context, id int64, customer model.Customer) (model.Response, error) {
	return f.responses.Get(ctx, id, OfCustomer(customer))
}

// GetOwnResponses selects the responses authored by the user.
func (f *Forum) GetOwnResponses(ctx context.Context, user model.User) ([]model.Response, error) {
	return f.responses.Find(ctx, OwnedBy(user))
}

// GetOwnResponse returns a response authored by the user.
func (f *Forum) GetOwnResponse(ctx context.Context, id int64, user model.User) (model.Response, error) {
	return f.responses.Get(ctx, id, OwnedBy(user))
}

// CreateTopic creates a topic owned by the user from an API payload.
func (f *Forum) CreateTopic(ctx context.Context, user model.User, payload model.TopicPayload) (model.Topic, error) {
	topic, err := model.NewTopic(user, payload)
	if err != nil {
		return model.Topic{}, NewErrorWithCause(ErrCodeValidation, "invalid topic", err)
	}

	topic, err = f.topics.Save(ctx, topic)
	if err != nil {
		return model.Topic{}, err
	}

	f.logger.Infof("Topic created: id=%d, user=%d, visibility=%s", topic.ID, user.ID, topic.Visibility)
	if err := f.notifications.NotifyTopicCreated(ctx, topic); err != nil {
		f.logger.Warnf("Failed to notify topic creation (topic=%d): %v", topic.ID, err)
	}

	return topic, nil
}

// PatchTopic updates title and text of an own topic.
func (f *Forum) PatchTopic(ctx context.Context, id int64, user model.User, patch model.TopicPatch) (model.Topic, error) {
	topic, err := f.GetOwnTopic(ctx, id, user)
	if err != nil {
		return model.Topic{}, err
	}

	if err := topic.Patch(patch); err != nil {
		return model.Topic{}, NewErrorWithCause(ErrCodeValidation, "invalid topic patch", err)
	}

	topic, err = f.topics.Save(ctx, topic)
	if err != nil {
		return model.Topic{}, err
	}

	f.logger.Debugf("Topic patched: id=%d, user=%d", topic.ID, user.ID)
	return topic, nil
}

// DeleteTopic deletes an own topic together with all its responses.
func (f *Forum) DeleteTopic(ctx context.Context, id int64, user model.User) error {
	topic, err := f.GetOwnTopic(ctx, id, user)
	if err != nil {
		return err
	}

	if err := f.topics.Delete(ctx, topic); err != nil {
		return err
	}

	f.logger.Infof("Topic deleted: id=%d, user=%d", topic.ID, user.ID)
	if err := f.notifications.NotifyTopicDeleted(ctx, topic); err != nil {
		f.logger.Warnf("Failed to notify topic deletion (topic=%d): %v", topic.ID, err)
	}

	return nil
}

// CreateResponse creates a response owned by the user. The topic responded
// to must be visible to the user.
func (f *Forum) CreateResponse(ctx context.Context, user model.User, payload model.ResponsePayload) (model.Response, error) {
	response, err := model.NewResponse(user, payload)
	if err != nil {
		return model.Response{}, NewErrorWithCause(ErrCodeValidation, "invalid response", err)
	}

	topic, err := f.GetVisibleTopic(ctx, response.TopicID, user)
	if err != nil {
		return model.Response{}, err
	}

	response, err = f.responses.Save(ctx, response)
	if err != nil {
		return model.Response{}, err
	}

	f.logger.Infof("Response created: id=%d, topic=%d, user=%d", response.ID, topic.ID, user.ID)
	if err := f.notifications.NotifyResponseCreated(ctx, topic, response); err != nil {
		f.logger.Warnf("Failed to notify response creation (response=%d): %v", response.ID, err)
	}

	return response, nil
}

// PatchResponse updates the text of an own response.
func (f *Forum) PatchResponse(ctx context.Context, id int64, user model.User, patch model.ResponsePatch) (model.Response, error) {
	response, err := f.GetOwnResponse(ctx, id, user)
	if err != nil {
		return model.Response{}, err
	}

	response.Patch(patch)

	response, err = f.responses.Save(ctx, response)
	if err != nil {
		return model.Response{}, err
	}

	f.logger.Debugf("Response patched: id=%d, user=%d, blank=%t", response.ID, user.ID, response.IsBlank())
	return response, nil
}

// DeleteResponse deletes an own response.
func (f *Forum) DeleteResponse(ctx context.Context, id int64, user model.User) error {
	response, err := f.GetOwnResponse(ctx, id, user)
	if err != nil {
		return err
	}

	if err := f.responses.Delete(ctx, response); err != nil {
		return err
	}

	f.logger.Infof("Response deleted: id=%d, topic=%d, user=%d", response.ID, response.TopicID, user.ID)
	return nil
}
