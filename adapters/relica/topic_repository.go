// Package relica provides Relica ORM implementations for tenantforum repositories.
//
//nolint:dupl // Repository pattern requires similar implementations for different types
package relica

import (
	"context"
	"database/sql"
	"errors"

	"github.com/coregx/relica"
	"github.com/coregx/tenantforum"
	"github.com/coregx/tenantforum/internal/sqlcond"
	"github.com/coregx/tenantforum/model"
)

// TopicRepository implements tenantforum.TopicRepository using Relica ORM.
type TopicRepository struct {
	db   *relica.DB
	cond *sqlcond.Builder
}

func (r *TopicRepository) tableName() string {
	return r.cond.Tables().Topic()
}

// Load retrieves a topic by ID.
func (r *TopicRepository) Load(ctx context.Context, id int64) (model.Topic, error) {
	var topic model.Topic
	err := r.db.WithContext(ctx).Select("*").From(r.tableName()).Where("id = ?", id).One(&topic)
	if errors.Is(err, sql.ErrNoRows) {
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
		// Insert using Model() API - auto-populates m.ID
		err := r.db.WithContext(ctx).Model(&m).Table(r.tableName()).Insert()
		if err != nil {
			return m, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to insert topic", err)
		}
		return m, nil
	}

	err := r.db.WithContext(ctx).Model(&m).Table(r.tableName()).Update()
	if err != nil {
		return m, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to update topic", err)
	}
	return m, nil
}

// Delete removes a topic and its responses in one transaction.
//
// Responses are removed first so the topic goes away even where the
// foreign key cascade is not enforced (SQLite without foreign_keys).
func (r *TopicRepository) Delete(ctx context.Context, m model.Topic) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to begin transaction", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.Delete(r.cond.Tables().Response()).Where("topic_id = ?", m.ID).Execute()
	if err != nil {
		return tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to delete topic responses", err)
	}

	if err = tx.Model(&m).Table(r.tableName()).Delete(); err != nil {
		return tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to delete topic", err)
	}

	if err = tx.Commit(); err != nil {
		return tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to commit topic deletion", err)
	}
	return nil
}

// Find retrieves all topics in scope, oldest first.
func (r *TopicRepository) Find(ctx context.Context, scope tenantforum.Scope) ([]model.Topic, error) {
	cond, err := r.cond.Topics(scope)
	if err != nil {
		return nil, err
	}

	var topics []model.Topic
	err = r.db.WithContext(ctx).Select("*").
		From(r.tableName()).
		Where(cond.SQL, cond.Args...).
		OrderBy("created ASC, id ASC").
		All(&topics)
	if err != nil {
		return nil, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to find topics", err)
	}

	if topics == nil {
		topics = []model.Topic{}
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

	err = r.db.WithContext(ctx).Select("*").From(r.tableName()).Where(cond.SQL, cond.Args...).One(&topic)
	if errors.Is(err, sql.ErrNoRows) {
		return topic, tenantforum.ErrNoSuchTopic
	}
	if err != nil {
		return topic, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to get topic", err)
	}
	return topic, nil
}
