package user

import "time"

type Permission string

const (
	PermissionUser   Permission = "user"
	PermissionEditor Permission = "editor"
)

type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash []byte     `json:"-"`
	IsAdmin      bool       `json:"isAdmin"`
	IsSeller     bool       `json:"isSeller"`
	Permission   Permission `json:"permission"`
	Age          *int       `json:"age"`
	Phone        string     `json:"phone"`
	IDNumber     *string    `json:"idNumber"`
	ProfileImage string     `json:"profileImage"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Profile holds the user editable fields. Nil fields are left unchanged.
type Profile struct {
	Age          *int
	Phone        *string
	IDNumber     *string
	ProfileImage *string
}

type PublicProfile struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	IsSeller     bool      `json:"isSeller"`
	ProfileImage string    `json:"profileImage"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u User) Public() PublicProfile {
	return PublicProfile{
		ID:           u.ID,
		Username:     u.Username,
		IsSeller:     u.IsSeller,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
	}
}

type UserResponse struct {
	User User `json:"user"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}

type PublicProfileResponse struct {
	User PublicProfile `json:"user"`
}
