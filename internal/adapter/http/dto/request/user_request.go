package request

import (
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
)

type CreateUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
}

func (r CreateUserRequest) ToInput() usecase.UserInput {
	return usecase.UserInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Phone:     r.Phone,
		Role:      entities.Role(r.Role),
	}
}

// UpdateUserRequest only touches the fields present in the body.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	Active    *bool   `json:"active"`
}

func (r UpdateUserRequest) ToInput() usecase.UserUpdate {
	in := usecase.UserUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Active:    r.Active,
	}
	if r.Role != nil {
		role := entities.Role(*r.Role)
		in.Role = &role
	}
	return in
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

type ProfileRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Phone           *string `json:"phone"`
	CurrentPassword string  `json:"current_password"`
	NewPassword     string  `json:"new_password" binding:"omitempty,min=6"`
}

func (r ProfileRequest) ToInput() usecase.ProfileUpdate {
	return usecase.ProfileUpdate{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Phone:           r.Phone,
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
	}
}
