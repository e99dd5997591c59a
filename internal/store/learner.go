package store

import (
	"context"
	"fmt"

	"github.com/hollisv/caresim/ent"
	"github.com/hollisv/caresim/ent/learner"
)

// learnerRepo implements LearnerRepo using the ent client.
type learnerRepo struct {
	client *ent.Client
}

func (r *learnerRepo) Ensure(ctx context.Context, name, organization, role string) (*Learner, error) {
	if role != RoleLearner && role != RoleManager {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	l, err := r.client.Learner.Query().
		Where(learner.Name(name)).
		Only(ctx)
	if err == nil {
		return entLearner(l), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query learner: %w", err)
	}

	l, err = r.client.Learner.Create().
		SetName(name).
		SetOrganization(organization).
		SetRole(role).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create learner: %w", err)
	}
	return entLearner(l), nil
}

func (r *learnerRepo) Get(ctx context.Context, id int) (*Learner, error) {
	l, err := r.client.Learner.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get learner: %w", err)
	}
	return entLearner(l), nil
}

func (r *learnerRepo) GetByName(ctx context.Context, name string) (*Learner, error) {
	l, err := r.client.Learner.Query().
		Where(learner.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query learner by name: %w", err)
	}
	return entLearner(l), nil
}

func (r *learnerRepo) ListByOrganization(ctx context.Context, organization string) ([]*Learner, error) {
	rows, err := r.client.Learner.Query().
		Where(learner.Organization(organization)).
		Order(ent.Asc(learner.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learners by organization: %w", err)
	}
	result := make([]*Learner, len(rows))
	for i, l := range rows {
		result[i] = entLearner(l)
	}
	return result, nil
}

func entLearner(l *ent.Learner) *Learner {
	return &Learner{
		ID:           l.ID,
		Name:         l.Name,
		Organization: l.Organization,
		Role:         l.Role,
		CreatedAt:    l.CreatedAt,
	}
}
