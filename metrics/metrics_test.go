package metrics

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/tenantforum"
	"github.com/coregx/tenantforum/model"
)

func getTestMetrics() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry(), nil)
}

// mockTopicRepository is a mock implementation of tenantforum.TopicRepository
type mockTopicRepository struct {
	LoadFunc   func(ctx context.Context, id int64) (model.Topic, error)
	SaveFunc   func(ctx context.Context, m model.Topic) (model.Topic, error)
	DeleteFunc func(ctx context.Context, m model.Topic) error
	FindFunc   func(ctx context.Context, scope tenantforum.Scope) ([]model.Topic, error)
	GetFunc    func(ctx context.Context, id int64, scope tenantforum.Scope) (model.Topic, error)
}

func (m *mockTopicRepository) Load(ctx context.Context, id int64) (model.Topic, error) {
	return m.LoadFunc(ctx, id)
}

func (m *mockTopicRepository) Save(ctx context.Context, t model.Topic) (model.Topic, error) {
	return m.SaveFunc(ctx, t)
}

func (m *mockTopicRepository) Delete(ctx context.Context, t model.Topic) error {
	return m.DeleteFunc(ctx, t)
}

func (m *mockTopicRepository) Find(ctx context.Context, scope tenantforum.Scope) ([]model.Topic, error) {
	return m.FindFunc(ctx, scope)
}

func (m *mockTopicRepository) Get(ctx context.Context, id int64, scope tenantforum.Scope) (model.Topic, error) {
	return m.GetFunc(ctx, id, scope)
}

// mockResponseRepository is a mock implementation of tenantforum.ResponseRepository
type mockResponseRepository struct {
	FindByTopicFunc func(ctx context.Context, topicID int64, scope tenantforum.Scope) ([]model.Response, error)
	GetFunc         func(ctx context.Context, id int64, scope tenantforum.Scope) (model.Response, error)
}

func (m *mockResponseRepository) Load(context.Context, int64) (model.Response, error) {
	return model.Response{}, nil
}

func (m *mockResponseRepository) Save(_ context.Context, r model.Response) (model.Response, error) {
	return r, nil
}

func (m *mockResponseRepository) Delete(context.Context, model.Response) error {
	return nil
}

func (m *mockResponseRepository) Find(context.Context, tenantforum.Scope) ([]model.Response, error) {
	return []model.Response{}, nil
}

func (m *mockResponseRepository) FindByTopic(ctx context.Context, topicID int64, scope tenantforum.Scope) ([]model.Response, error) {
	return m.FindByTopicFunc(ctx, topicID, scope)
}

func (m *mockResponseRepository) Get(ctx context.Context, id int64, scope tenantforum.Scope) (model.Response, error) {
	return m.GetFunc(ctx, id, scope)
}

func TestRecordDBQuery(t *testing.T) {
	m := getTestMetrics()

	m.RecordDBQuery("SELECT", "tenantforum_topic", 10*time.Millisecond, nil)
	m.RecordDBQuery("select", "tenantforum_topic", 20*time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select", "tenantforum_topic")))
}

func TestUpdateDBStats(t *testing.T) {
	m := getTestMetrics()

	m.UpdateDBStats(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3})

	assert.Equal(t, float64(5), testutil.ToFloat64(m.DBConnectionsOpen))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.DBConnectionsInUse))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.DBConnectionsIdle))
}

func TestInstrumentTopics(t *testing.T) {
	m := getTestMetrics()
	dbErr := tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed", errors.New("down"))

	repo := InstrumentTopics(&mockTopicRepository{
		FindFunc: func(context.Context, tenantforum.Scope) ([]model.Topic, error) {
			return []model.Topic{{ID: 1}}, nil
		},
		GetFunc: func(context.Context, int64, tenantforum.Scope) (model.Topic, error) {
			return model.Topic{}, tenantforum.ErrNoSuchTopic
		},
		LoadFunc: func(context.Context, int64) (model.Topic, error) {
			return model.Topic{}, dbErr
		},
	}, m)

	ctx := context.Background()
	user := model.User{ID: 1}

	topics, err := repo.Find(ctx, tenantforum.VisibleTo(user))
	require.NoError(t, err)
	assert.Len(t, topics, 1)

	_, err = repo.Get(ctx, 1, tenantforum.VisibleTo(user))
	assert.ErrorIs(t, err, tenantforum.ErrNoSuchTopic)

	_, err = repo.Load(ctx, 1)
	assert.ErrorIs(t, err, dbErr)

	assert.Equal(t, 3, testutil.CollectAndCount(m.DBQueryDuration))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("get", "topic")),
		"not found is not an error")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("load", "topic")))
}

func TestInstrumentResponses(t *testing.T) {
	m := getTestMetrics()

	repo := InstrumentResponses(&mockResponseRepository{
		FindByTopicFunc: func(_ context.Context, topicID int64, _ tenantforum.Scope) ([]model.Response, error) {
			return []model.Response{{ID: 1, TopicID: topicID}}, nil
		},
		GetFunc: func(context.Context, int64, tenantforum.Scope) (model.Response, error) {
			return model.Response{}, tenantforum.ErrNoSuchResponse
		},
	}, m)

	ctx := context.Background()
	customer := model.Customer{ID: 1}

	responses, err := repo.FindByTopic(ctx, 42, tenantforum.OfCustomer(customer))
	require.NoError(t, err)
	assert.Equal(t, int64(42), responses[0].TopicID)

	_, err = repo.Get(ctx, 1, tenantforum.OfCustomer(customer))
	assert.ErrorIs(t, err, tenantforum.ErrNoSuchResponse)

	assert.Equal(t, 2, testutil.CollectAndCount(m.DBQueryDuration))
	assert.Equal(t, 0, testutil.CollectAndCount(m.DBQueryErrors))
}

type failingNotifications struct {
	tenantforum.NoOpNotificationService
}

func (f *failingNotifications) NotifyTopicCreated(context.Context, model.Topic) error {
	return errors.New("mail server down")
}

func TestCountNotifications(t *testing.T) {
	m := getTestMetrics()
	ctx := context.Background()

	n := CountNotifications(nil, m)
	require.NoError(t, n.NotifyTopicCreated(ctx, model.Topic{Visibility: model.VisibilityCustomer}))
	require.NoError(t, n.NotifyTopicCreated(ctx, model.Topic{}))
	require.NoError(t, n.NotifyTopicDeleted(ctx, model.Topic{}))
	require.NoError(t, n.NotifyResponseCreated(ctx, model.Topic{}, model.Response{}))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.TopicsCreatedTotal.WithLabelValues("CUSTOMER")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TopicsCreatedTotal.WithLabelValues("TENEMENT")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TopicsDeletedTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ResponsesCreatedTotal))

	failing := CountNotifications(&failingNotifications{}, m)
	assert.Error(t, failing.NotifyTopicCreated(ctx, model.Topic{}))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.TopicsCreatedTotal.WithLabelValues("TENEMENT")))
}
