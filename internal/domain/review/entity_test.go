//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"halisaha-api/internal/domain/review"
	"halisaha-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := newFromBuilder(builder.NewReviewBuilder())
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Zemin harika, soyunma odaları temiz.", actual.Comment().String())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "single character",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("a") },
			},
			{
				name:   "maximum length in multibyte runes",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("ş", review.MaxCommentLength)) },
			},
			{
				name:   "empty comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name:   "whitespace only comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("   ") },
				errIs:  review.ErrEmptyComment,
			},
			{
				name:   "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("references are required", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing user",
				mutate: func(b *builder.ReviewBuilder) { b.WithUserID(uuid.Nil) },
				errIs:  review.ErrMissingUser,
			},
			{
				name:   "missing venue",
				mutate: func(b *builder.ReviewBuilder) { b.WithVenueID(uuid.Nil) },
				errIs:  review.ErrMissingVenue,
			},
		})
	})

	t.Run("comment trimming", func(t *testing.T) {
		rev, err := review.NewReview(uuid.New(), uuid.New(), 4, "  Işıklar iyi  ", time.Now())
		require.NoError(t, err)

		assert.Equal(t, "Işıklar iyi", rev.Comment().String())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		userID, venueID := uuid.New(), uuid.New()
		now := time.Now()

		review1, err1 := review.NewReview(userID, venueID, 5, "Güzel", now)
		review2, err2 := review.NewReview(userID, venueID, 5, "Güzel", now)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, review1.ID(), review2.ID())
	})
}

func TestReview_Apply(t *testing.T) {
	orig := builder.NewReviewBuilder().BuildDomain()
	later := orig.CreatedAt().Add(time.Hour)
	rating := 2
	comment := "  Duşlar soğuktu "

	t.Run("patches given fields only", func(t *testing.T) {
		next, err := orig.Apply(review.Patch{Rating: &rating}, later)
		require.NoError(t, err)

		assert.Equal(t, 2, next.Rating().Value())
		assert.Equal(t, orig.Comment(), next.Comment())
		assert.Equal(t, orig.ID(), next.ID())
		assert.Equal(t, orig.UserID(), next.UserID())
		assert.Equal(t, orig.VenueID(), next.VenueID())
		assert.Equal(t, orig.CreatedAt(), next.CreatedAt())
		assert.Equal(t, later, next.UpdatedAt())

		assert.Equal(t, 5, orig.Rating().Value(), "receiver must stay untouched")
	})

	t.Run("comment is trimmed", func(t *testing.T) {
		next, err := orig.Apply(review.Patch{Comment: &comment}, later)
		require.NoError(t, err)
		assert.Equal(t, "Duşlar soğuktu", next.Comment().String())
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		bad := 9
		_, err := orig.Apply(review.Patch{Rating: &bad}, later)
		assert.ErrorIs(t, err, review.ErrInvalidRating)

		blank := " "
		_, err = orig.Apply(review.Patch{Comment: &blank}, later)
		assert.ErrorIs(t, err, review.ErrEmptyComment)
	})
}

func newFromBuilder(b *builder.ReviewBuilder) (*review.Review, error) {
	return review.NewReview(b.UserID, b.VenueID, b.Rating, b.Comment, b.CreatedAt)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := newFromBuilder(builder.NewReviewBuilder().With(c.mutate))

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
