package response

import (
	"time"

	"halisaha-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreatedUserResponse struct {
	UserID string `json:"userId"`
}

type LoginResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	out := &UserResponse{}
	mustCopy(out, v)
	return out
}

func FromUserViews(vs []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, len(vs))
	for i, v := range vs {
		out[i] = FromUserView(v)
	}
	return out
}

var copyOpts = copier.Option{
	Converters: []copier.TypeConverter{uuidToString, optionalUUIDToString},
}

// mustCopy panics on mismatched field types.
func mustCopy(to, from any) {
	if err := copier.CopyWithOption(to, from, copyOpts); err != nil {
		panic(err)
	}
}
