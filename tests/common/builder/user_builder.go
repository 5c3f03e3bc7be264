//go:build unit || e2e

package builder

import (
	"time"

	"halisaha-api/internal/domain/user"
	reqdto "halisaha-api/internal/handler/dto/request"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/pkg/pgconv"
	"halisaha-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         user.Role
	Phone        *string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "Test Kullanıcı",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         user.RoleUser,
		CreatedAt:    time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) BuildDomain() *user.User {
	name, err := user.NewName(u.Name)
	if err != nil {
		panic(err)
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		panic(err)
	}
	return user.ReconstructUser(u.ID, name, email, u.PasswordHash, u.Role, u.Phone, u.CreatedAt, u.CreatedAt)
}

func (u *UserBuilder) BuildRow() pgstore.User {
	return pgstore.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role.String(),
		Phone:        pgconv.StringPtrToPgtype(u.Phone),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt),
		UpdatedAt:    pgconv.TimeToPgtype(u.CreatedAt),
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.CreatedAt,
	}
}

func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = &phone
	return u
}

func (u *UserBuilder) AsOwner() *UserBuilder {
	u.Role = user.RoleOwner
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = user.RoleAdmin
	return u
}

func (u *UserBuilder) BuildRegisterRequestDTO(password string) reqdto.RegisterRequest {
	return reqdto.RegisterRequest{Name: u.Name, Email: u.Email, Password: password}
}

func (u *UserBuilder) BuildLoginRequestDTO(password string) reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: u.Email, Password: password}
}
