package request

import "slot-booking/internal/usecase/commands"

type RegisterUserRequest struct {
	Username           string `json:"username" binding:"required,max=150"`
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required,min=8"`
	FirstName          string `json:"first_name" binding:"max=150"`
	LastName           string `json:"last_name" binding:"max=150"`
	ProfileKind        string `json:"profile_kind" binding:"omitempty,oneof=company client"`
	CompanyName        string `json:"company_name,omitempty"`
	CompanyDescription string `json:"company_description,omitempty"`
	ClientName         string `json:"client_name,omitempty"`
	Phone              string `json:"phone,omitempty"`
}

func (r RegisterUserRequest) ToCommand() commands.RegisterUserRequest {
	return commands.RegisterUserRequest{
		Username:           r.Username,
		Email:              r.Email,
		Password:           r.Password,
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		ProfileKind:        r.ProfileKind,
		CompanyName:        r.CompanyName,
		CompanyDescription: r.CompanyDescription,
		ClientName:         r.ClientName,
		Phone:              r.Phone,
	}
}
