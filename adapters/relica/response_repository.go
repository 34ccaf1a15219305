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

// ResponseRepository implements tenantforum.ResponseRepository using Relica ORM.
type ResponseRepository struct {
	db   *relica.DB
	cond *sqlcond.Builder
}

func (r *ResponseRepository) tableName() string {
	return r.cond.Tables().Response()
}

// Load retrieves a response by ID.
func (r *ResponseRepository) Load(ctx context.Context, id int64) (model.Response, error) {
	var response model.Response
	err := r.db.WithContext(ctx).Select("*").From(r.tableName()).Where("id = ?", id).One(&response)
	if errors.Is(err, sql.ErrNoRows) {
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
		err := r.db.WithContext(ctx).Model(&m).Table(r.tableName()).Insert()
		if err != nil {
			return m, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to insert response", err)
		}
		return m, nil
	}

	err := r.db.WithContext(ctx).Model(&m).Table(r.tableName()).Update()
	if err != nil {
		return m, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to update response", err)
	}
	return m, nil
}

// Delete removes a response.
func (r *ResponseRepository) Delete(ctx context.Context, m model.Response) error {
	err := r.db.WithContext(ctx).Model(&m).Table(r.tableName()).Delete()
	if err != nil {
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
	var responses []model.Response
	err := r.db.WithContext(ctx).Select("*").
		From(r.tableName()).
		Where(cond.SQL, cond.Args...).
		OrderBy("created ASC, id ASC").
		All(&responses)
	if err != nil {
		return nil, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to find responses", err)
	}

	if responses == nil {
		responses = []model.Response{}
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

	err = r.db.WithContext(ctx).Select("*").From(r.tableName()).Where(cond.SQL, cond.Args...).One(&response)
	if errors.Is(err, sql.ErrNoRows) {
		return response, tenantforum.ErrNoSuchResponse
	}
	if err != nil {
		return response, tenantforum.NewErrorWithCause(tenantforum.ErrCodeDatabase, "failed to get response", err)
	}
	return response, nil
}
