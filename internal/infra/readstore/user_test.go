//go:build unit

package readstore

import (
	"context"
	"testing"

	"halisaha-api/internal/infra"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db pgstore.DBTX, id uuid.UUID) (pgstore.User, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgstore.User), args.Error(1)
}

func (m *MockUserReadQueries) ListUsers(ctx context.Context, db pgstore.DBTX) ([]pgstore.User, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]pgstore.User), args.Error(1)
}

func TestFindByID(t *testing.T) {
	owner := builder.NewUserBuilder().AsOwner().WithPhone("05551112233").BuildRow()

	tests := []struct {
		name       string
		id         uuid.UUID
		mockReturn pgstore.User
		mockError  error
		wantUser   bool
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			id:         owner.ID,
			mockReturn: owner,
			wantUser:   true,
		},
		{
			name:       "user not found",
			id:         uuid.New(),
			mockReturn: pgstore.User{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			id:         uuid.New(),
			mockReturn: pgstore.User{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.id).Return(tt.mockReturn, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)
			got, err := store.FindByID(context.Background(), tt.id)

			if tt.wantUser {
				assert.NoError(t, err)
				assert.Equal(t, owner.ID, got.ID)
				assert.Equal(t, "OWNER", got.Role)
				if assert.NotNil(t, got.Phone) {
					assert.Equal(t, "05551112233", *got.Phone)
				}
			} else {
				assert.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestList(t *testing.T) {
	rows := []pgstore.User{
		builder.NewUserBuilder().WithEmail("a@example.com").BuildRow(),
		builder.NewUserBuilder().WithEmail("b@example.com").AsAdmin().BuildRow(),
	}

	mockQueries := new(MockUserReadQueries)
	mockQueries.On("ListUsers", mock.Anything, mock.Anything).Return(rows, nil)

	store := NewUserReadStore(mockQueries, nil)
	got, err := store.List(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "a@example.com", got[0].Email)
		assert.Equal(t, "ADMIN", got[1].Role)
		assert.Nil(t, got[0].Phone)
	}
	mockQueries.AssertExpectations(t)
}
