package metrics

import (
	"context"
	"time"

	"github.com/coregx/tenantforum"
	"github.com/coregx/tenantforum/model"
)

// Table labels of the instrumented repositories.
const (
	topicTable    = "topic"
	responseTable = "response"
)

// observe records a repository call. Lookup failures are expected results of
// scoped queries and are not counted as errors.
func (m *Metrics) observe(operation, table string, start time.Time, err error) {
	if tenantforum.IsNotFound(err) {
		err = nil
	}
	m.RecordDBQuery(operation, table, time.Since(start), err)
}

// TopicRepository wraps a tenantforum.TopicRepository with query metrics.
type TopicRepository struct {
	next    tenantforum.TopicRepository
	metrics *Metrics
}

// InstrumentTopics returns next wrapped with query metrics.
func InstrumentTopics(next tenantforum.TopicRepository, m *Metrics) *TopicRepository {
	return &TopicRepository{next: next, metrics: m}
}

// Load implements tenantforum.TopicRepository.
func (r *TopicRepository) Load(ctx context.Context, id int64) (model.Topic, error) {
	start := time.Now()
	topic, err := r.next.Load(ctx, id)
	r.metrics.observe("load", topicTable, start, err)
	return topic, err
}

// Save implements tenantforum.TopicRepository.
func (r *TopicRepository) Save(ctx context.Context, m model.Topic) (model.Topic, error) {
	start := time.Now()
	topic, err := r.next.Save(ctx, m)
	r.metrics.observe("save", topicTable, start, err)
	return topic, err
}

// Delete implements tenantforum.TopicRepository.
func (r *TopicRepository) Delete(ctx context.Context, m model.Topic) error {
	start := time.Now()
	err := r.next.Delete(ctx, m)
	r.metrics.observe("delete", topicTable, start, err)
	return err
}

// Find implements tenantforum.TopicRepository.
func (r *TopicRepository) Find(ctx context.Context, scope tenantforum.Scope) ([]model.Topic, error) {
	start := time.Now()
	topics, err := r.next.Find(ctx, scope)
	r.metrics.observe("find", topicTable, start, err)
	return topics, err
}

// Get implements tenantforum.TopicRepository.
func (r *TopicRepository) Get(ctx context.Context, id int64, scope tenantforum.Scope) (model.Topic, error) {
	start := time.Now()
	topic, err := r.next.Get(ctx, id, scope)
	r.metrics.observe("get", topicTable, start, err)
	return topic, err
}

// ResponseRepository wraps a tenantforum.ResponseRepository with query metrics.
type ResponseRepository struct {
	next    tenantforum.ResponseRepository
	metrics *Metrics
}

// InstrumentResponses returns next wrapped with query metrics.
func InstrumentResponses(next tenantforum.ResponseRepository, m *Metrics) *ResponseRepository {
	return &ResponseRepository{next: next, metrics: m}
}

// Load implements tenantforum.ResponseRepository.
func (r *ResponseRepository) Load(ctx context.Context, id int64) (model.Response, error) {
	start := time.Now()
	response, err := r.next.Load(ctx, id)
	r.metrics.observe("load", responseTable, start, err)
	return response, err
}

// Save implements tenantforum.ResponseRepository.
func (r *ResponseRepository) Save(ctx context.Context, m model.Response) (model.Response, error) {
	start := time.Now()
	response, err := r.next.Save(ctx, m)
	r.metrics.observe("save", responseTable, start, err)
	return response, err
}

// Delete implements tenantforum.ResponseRepository.
func (r *ResponseRepository) Delete(ctx context.Context, m model.Response) error {
	start := time.Now()
	err := r.next.Delete(ctx, m)
	r.metrics.observe("delete", responseTable, start, err)
	return err
}

// Find implements tenantforum.ResponseRepository.
func (r *ResponseRepository) Find(ctx context.Context, scope tenantforum.Scope) ([]model.Response, error) {
	start := time.Now()
	responses, err := r.next.Find(ctx, scope)
	r.metrics.observe("find", responseTable, start, err)
	return responses, err
}

// FindByTopic implements tenantforum.ResponseRepository.
func (r *ResponseRepository) FindByTopic(ctx context.Context, topicID int64, scope tenantforum.Scope) ([]model.Response, error) {
	start := time.Now()
	responses, err := r.next.FindByTopic(ctx, topicID, scope)
	r.metrics.observe("find_by_topic", responseTable, start, err)
	return responses, err
}

// Get implements tenantforum.ResponseRepository.
func (r *ResponseRepository) Get(ctx context.Context, id int64, scope tenantforum.Scope) (model.Response, error) {
	start := time.Now()
	response, err := r.next.Get(ctx, id, scope)
	r.metrics.observe("get", responseTable, start, err)
	return response, err
}
