package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"log/slog"

	"halisaha-api/internal/domain/auth"
	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/infra"
	"halisaha-api/internal/pkg/clock"
	"halisaha-api/internal/pkg/errs"
	"halisaha-api/internal/usecase/queries"
	"halisaha-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTokenGeneration = errs.New("token generation failed")

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	User  *queries.UserView
	Token string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, creds auth.Credentials) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	hasher PasswordHasher
	tokens TokenIssuer
	clock  clock.Clock
	logger *slog.Logger
}

func NewAuthCommands(uow shared.UnitOfWork, hasher PasswordHasher, tokens TokenIssuer, clk clock.Clock, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		hasher: hasher,
		tokens: tokens,
		clock:  clk,
		logger: logger,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	u, err := newAccount(a.hasher, in.Name, in.Email, in.Password, user.RoleUser, nil, a.clock)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := createAccount(ctx, a.uow, u)
	if err != nil {
		if errs.Is(err, errs.ErrEmailTaken) {
			a.logger.Warn("register: email already registered", slog.String("email", u.Email().Value()))
		}
		return uuid.Nil, err
	}

	a.logger.Info("user registered", slog.String("user_id", id.String()))
	return id, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, creds auth.Credentials) (*LoginResult, error) {
	u, err := a.uow.CommandReads().UserByEmail(ctx, creds.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			a.logger.Warn("login: unknown email", slog.String("email", creds.Email().Value()))
			return nil, errs.ErrInvalidCredentials
		}
		return nil, storeErr(err, errs.ErrUserNotFound)
	}

	if err := a.hasher.Compare(u.PasswordHash(), creds.Password()); err != nil {
		a.logger.Warn("login: password mismatch", slog.String("user_id", u.ID().String()))
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{User: userView(u), Token: token}, nil
}

func newAccount(hasher PasswordHasher, name, email, plain string, role user.Role, phone *string, clk clock.Clock) (*user.User, error) {
	n, err := user.NewName(name)
	if err != nil {
		return nil, validationErr(err)
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, validationErr(err)
	}
	pw, err := user.NewPassword(plain)
	if err != nil {
		return nil, validationErr(err)
	}
	hash, err := hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}
	u, err := user.NewUser(n, e, hash, role, phone, clk.Now())
	if err != nil {
		return nil, validationErr(err)
	}
	return u, nil
}

func createAccount(ctx context.Context, uow shared.UnitOfWork, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Users().Create(ctx, tx.DB(), u)
		return err
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		// email is the only unique column on users besides the id
		return uuid.Nil, errs.Mark(err, errs.ErrEmailTaken)
	}
	if err != nil {
		return uuid.Nil, storeErr(err, errs.ErrUserNotFound)
	}
	return id, nil
}

// userView never carries the password hash.
func userView(u *user.User) *queries.UserView {
	return &queries.UserView{
		ID:        u.ID(),
		Name:      u.Name().Value(),
		Email:     u.Email().Value(),
		Role:      u.Role().String(),
		Phone:     u.Phone(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
