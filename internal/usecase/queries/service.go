package queries

import (
	"context"
)

type ServiceReadStore interface {
	FindActive(ctx context.Context) ([]*ServiceView, error)
}

type ServiceQueries interface {
	// ListActive returns offerable services ordered by name.
	ListActive(ctx context.Context) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	store ServiceReadStore
}

func NewServiceQueries(store ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{store: store}
}

func (q *serviceQueriesImpl) ListActive(ctx context.Context) ([]*ServiceView, error) {
	return q.store.FindActive(ctx)
}
