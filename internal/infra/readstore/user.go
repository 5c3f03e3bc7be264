package readstore

import (
	"context"

	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/pkg/pgconv"
	"halisaha-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.User, error)
	ListUsers(ctx context.Context, db pgstore.DBTX) ([]pgstore.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgstore.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgstore.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	result := make([]*queries.UserView, len(rows))
	for i, row := range rows {
		result[i] = toUserView(row)
	}
	return result, nil
}

// password_hash never leaves this function
func toUserView(row pgstore.User) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      row.Role,
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
