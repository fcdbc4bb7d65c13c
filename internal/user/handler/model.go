package userhandler

import (
	"github.com/xw1nchester/hisba-backend/internal/user"
	"github.com/xw1nchester/hisba-backend/pkg/types"
	"github.com/xw1nchester/hisba-backend/pkg/utils"
)

type ProfileRequest struct {
	Age          *types.IntOrString `json:"age" validate:"omitempty,gt=0"`
	Phone        *string            `json:"phone" validate:"omitempty,max=20"`
	IDNumber     *string            `json:"idNumber" validate:"omitempty,max=20"`
	ProfileImage *string            `json:"profileImage" validate:"omitempty,max=255"`
}

func (pr ProfileRequest) ToDomain() user.Profile {
	profile := user.Profile{
		Phone:        pr.Phone,
		IDNumber:     pr.IDNumber,
		ProfileImage: pr.ProfileImage,
	}

	if pr.Age != nil {
		age := int(*pr.Age)
		profile.Age = &age
	}

	return profile
}

func withStaticURL(u user.User, staticURL string) user.User {
	u.ProfileImage = utils.MediaURL(staticURL, u.ProfileImage)
	return u
}

func NewUserResponse(u user.User, staticURL string) user.UserResponse {
	return user.UserResponse{User: withStaticURL(u, staticURL)}
}

func NewUsersResponse(users []user.User, staticURL string) user.UsersResponse {
	for i := range users {
		users[i] = withStaticURL(users[i], staticURL)
	}
	return user.UsersResponse{Users: users}
}

func NewPublicProfileResponse(u user.User, staticURL string) user.PublicProfileResponse {
	return user.PublicProfileResponse{User: withStaticURL(u, staticURL).Public()}
}
