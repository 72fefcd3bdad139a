package response

import (
	"time"

	"slot-booking/internal/usecase/queries"
)

type ProfileResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone,omitempty"`
}

// UserResponse exposes the profile under a single "profile" key tagged by profile_kind.
type UserResponse struct {
	ID          string           `json:"id"`
	Username    string           `json:"username"`
	Email       string           `json:"email"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	ProfileKind string           `json:"profile_kind"`
	Profile     *ProfileResponse `json:"profile"`
	CreatedAt   time.Time        `json:"created_at"`
}

func FromUserProfileView(v *queries.UserProfileView) *UserResponse {
	res := &UserResponse{
		ID:          v.ID.String(),
		Username:    v.Username,
		Email:       v.Email,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		ProfileKind: v.ProfileKind,
		CreatedAt:   v.CreatedAt.UTC(),
	}
	switch {
	case v.Company != nil:
		desc := v.Company.Description
		res.Profile = &ProfileResponse{ID: v.Company.ID.String(), Name: v.Company.Name, Description: &desc}
	case v.Client != nil:
		phone := v.Client.Phone
		res.Profile = &ProfileResponse{ID: v.Client.ID.String(), Name: v.Client.Name, Phone: &phone}
	}
	return res
}
