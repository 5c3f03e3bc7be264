package request

import (
	"halisaha-api/internal/domain/user"
	"halisaha-api/internal/usecase/commands"
)

type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required,min=1"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     string  `json:"role" binding:"omitempty,role"`
	Phone    *string `json:"phone" binding:"omitempty,min=10"`
}

func (r *CreateUserRequest) ToInput() commands.CreateUserInput {
	return commands.CreateUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     user.Role(r.Role),
		Phone:    r.Phone,
	}
}
