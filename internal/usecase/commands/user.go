package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"log/slog"

	"halisaha-api/internal/domain/policy"
	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/pkg/clock"
	"halisaha-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	// empty means USER
	Role  user.Role
	Phone *string
}

type UserCommands interface {
	Create(ctx context.Context, actor policy.Actor, in CreateUserInput) (uuid.UUID, error)
}

type userCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
	clock  clock.Clock
	logger *slog.Logger
}

func NewUserCommands(uow shared.UnitOfWork, hasher PasswordHasher, clk clock.Clock, logger *slog.Logger) UserCommands {
	return &userCommandsImpl{uow: uow, hasher: hasher, clock: clk, logger: logger}
}

func (uc *userCommandsImpl) Create(ctx context.Context, actor policy.Actor, in CreateUserInput) (uuid.UUID, error) {
	if !policy.CanManageUsers(actor) {
		return uuid.Nil, forbidden()
	}

	role := in.Role
	if role == "" {
		role = user.RoleUser
	}
	u, err := newAccount(uc.hasher, in.Name, in.Email, in.Password, role, in.Phone, uc.clock)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := createAccount(ctx, uc.uow, u)
	if err != nil {
		return uuid.Nil, err
	}
	uc.logger.Info("user created by admin",
		slog.String("user_id", id.String()),
		slog.String("role", role.String()),
		slog.String("actor_id", actor.ID.String()))
	return id, nil
}
