package repository

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/repository/$GOFILE -package=repositorymock

import (
	"context"

	"halisaha-api/internal/domain/review"
	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db pgstore.DBTX, arg pgstore.CreateReviewParams) (uuid.UUID, error)
	UpdateReview(ctx context.Context, db pgstore.DBTX, arg pgstore.UpdateReviewParams) (int64, error)
	DeleteReview(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
}

func NewReviewRepository(queries ReviewWriteQueries) *ReviewRepository {
	return &ReviewRepository{queries: queries}
}

func (r *ReviewRepository) Create(ctx context.Context, tx pgstore.DBTX, rev *review.Review) (uuid.UUID, error) {
	id, err := r.queries.CreateReview(ctx, tx, converter.ReviewToCreateParams(rev))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx pgstore.DBTX, rev *review.Review) error {
	n, err := r.queries.UpdateReview(ctx, tx, converter.ReviewToUpdateParams(rev))
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx pgstore.DBTX, reviewID uuid.UUID) error {
	n, err := r.queries.DeleteReview(ctx, tx, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
