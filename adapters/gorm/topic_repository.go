package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/coregx/tenantforum"
	"github.com/coregx/tenantforum/internal/sqlcond"
	"github.com/coregx/tenantforum/model"
)

// TopicRepository implements tenantforum.TopicRepository using GORM.
type TopicRepository struct {
	db   *gorm.DB
	cond *sqlcond.Builder
}

func (r *TopicRepository) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.cond.Tables().Topic())
}

// Load retrieves a topic by ID.
func (r *TopicRepository) Load(ctx context.Context, id int64) (model.Topic, error) {
	var topic model.Topic
	err := r.table(ctx).Where(r.cond.TopicColumn("id")+" = ?", id).Take(&topic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return topic, tenantforum.ErrNoSuchTopic
	}
	if err != nil {
		return topic, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to load topic", err)
	}
	return topic, nil
}

// Save creates or updates a topic.
func (r *TopicRepository) Save(ctx context.Context, m model.Topic) (model.Topic, error) {
	if m.ID == 0 {
		if err := r.table(ctx).Create(&m).Error; err != nil {
			return m, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to insert topic", err)
		}
		return m, nil
	}

	if err := r.table(ctx).Save(&m).Error; err != nil {
		return m, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to update topic", err)
	}
	return m, nil
}

// Delete removes a topic and its responses in one transaction.
func (r *TopicRepository) Delete(ctx context.Context, m model.Topic) error {
	tables := r.cond.Tables()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(tables.Response()).Where("topic_id = ?", m.ID).Delete(&model.Response{}).Error; err != nil {
			return err
		}
		return tx.Table(tables.Topic()).Delete(&m).Error
	})
	if err != nil {
		return tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to delete topic", err)
	}
	return nil
}

// Find retrieves all topics in scope, oldest first.
func (r *TopicRepository) Find(ctx context.Context, scope tenantforum.Scope) ([]model.Topic, error) {
	cond, err := r.cond.Topics(scope)
	if err != nil {
		return nil, err
	}

	topics := []model.Topic{}
	err = r.table(ctx).
		Where(cond.SQL, cond.Args...).
		Order(r.cond.TopicColumn("created") + " ASC").
		Order(r.cond.TopicColumn("id") + " ASC").
		Find(&topics).Error
	if err != nil {
		return nil, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to find topics", err)
	}
	return topics, nil
}

// Get retrieves a topic by ID within scope.
func (r *TopicRepository) Get(ctx context.Context, id int64, scope tenantforum.Scope) (model.Topic, error) {
	var topic model.Topic

	cond, err := r.cond.Topics(scope)
	if err != nil {
		return topic, err
	}
	cond = sqlcond.And(sqlcond.Eq(r.cond.TopicColumn("id"), id), cond)

	err = r.table(ctx).Where(cond.SQL, cond.Args...).Take(&topic).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return topic, tenantforum.ErrNoSuchTopic
	}
	if err != nil {
		return topic, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to get topic", err)
	}
	return topic, nil
}
