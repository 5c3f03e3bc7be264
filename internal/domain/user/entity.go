package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	role         Role
	phone        *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name Name, email Email, passwordHash string, role Role, phone *string, now time.Time) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	normalized, err := NewPhone(phone)
	if err != nil {
		return nil, err
	}
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		phone:        normalized,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Phone() *string       { return u.phone }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func ReconstructUser(id uuid.UUID, name Name, email Email, passwordHash string, role Role, phone *string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		phone:        phone,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}
