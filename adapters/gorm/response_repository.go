package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/coregx/tenantforum"
	"github.com/coregx/tenantforum/internal/sqlcond"
	"github.com/coregx/tenantforum/model"
)

// ResponseRepository implements tenantforum.ResponseRepository using GORM.
type ResponseRepository struct {
	db   *gorm.DB
	cond *sqlcond.Builder
}

func (r *ResponseRepository) table(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.cond.Tables().Response())
}

// Load retrieves a response by ID.
func (r *ResponseRepository) Load(ctx context.Context, id int64) (model.Response, error) {
	var response model.Response
	err := r.table(ctx).Where(r.cond.ResponseColumn("id")+" = ?", id).Take(&response).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response, tenantforum.ErrNoSuchResponse
	}
	if err != nil {
		return response, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to load response", err)
	}
	return response, nil
}

// Save creates or updates a response.
func (r *ResponseRepository) Save(ctx context.Context, m model.Response) (model.Response, error) {
	if m.ID == 0 {
		if err := r.table(ctx).Create(&m).Error; err != nil {
			return m, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to insert response", err)
		}
		return m, nil
	}

	if err := r.table(ctx).Save(&m).Error; err != nil {
		return m, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to update response", err)
	}
	return m, nil
}

// Delete removes a response.
func (r *ResponseRepository) Delete(ctx context.Context, m model.Response) error {
	if err := r.table(ctx).Delete(&m).Error; err != nil {
		return tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to delete response", err)
	}
	return nil
}

// Find retrieves all responses in scope, oldest first.
func (r *ResponseRepository) Find(ctx context.Context, scope tenantforum.Scope) ([]model.Response, error) {
	cond, err := r.cond.Responses(scope)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, cond)
}

// FindByTopic retrieves the responses to a topic within scope, oldest first.
func (r *ResponseRepository) FindByTopic(ctx context.Context, topicID int64, scope tenantforum.Scope) ([]model.Response, error) {
	cond, err := r.cond.Responses(scope)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, sqlcond.And(sqlcond.Eq(r.cond.ResponseColumn("topic_id"), topicID), cond))
}

func (r *ResponseRepository) find(ctx context.Context, cond sqlcond.Cond) ([]model.Response, error) {
	responses := []model.Response{}
	err := r.table(ctx).
		Where(cond.SQL, cond.Args...).
		Order(r.cond.ResponseColumn("created") + " ASC").
		Order(r.cond.ResponseColumn("id") + " ASC").
		Find(&responses).Error
	if err != nil {
		return nil, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to find responses", err)
	}
	return responses, nil
}

// Get retrieves a response by ID within scope.
func (r *ResponseRepository) Get(ctx context.Context, id int64, scope tenantforum.Scope) (model.Response, error) {
	var response model.Response

	cond, err := r.cond.Responses(scope)
	if err != nil {
		return response, err
	}
	cond = sqlcond.And(sqlcond.Eq(r.cond.ResponseColumn("id"), id), cond)

	err = r.table(ctx).Where(cond.SQL, cond.Args...).Take(&response).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response, tenantforum.ErrNoSuchResponse
	}
	if err != nil {
		return response, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to get response", err)
	}
	return response, nil
}
