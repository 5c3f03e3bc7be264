package converter

import (
	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/infra/pgstore"
	"halisaha-api/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) pgstore.CreateUserParams {
	return pgstore.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Phone:        pgconv.StringPtrToPgtype(u.Phone()),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func UserFromRow(row pgstore.User) (*user.User, error) {
	name, err := user.NewName(row.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID,
		name,
		email,
		row.PasswordHash,
		role,
		pgconv.StringPtrFromPgtype(row.Phone),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
