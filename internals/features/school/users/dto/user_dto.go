package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "sekolahku_backend/internals/features/school/users/model"
)

type CreateUserRequest struct {
	SchoolID uuid.UUID `json:"-" validate:"required"`
	Name     string    `json:"user_name" validate:"required,min=2,max=120"`
	Email    string    `json:"user_email" validate:"required,email,max=160"`
	Password string    `json:"user_password" validate:"required,min=8,max=72"`
	Role     string    `json:"user_role" validate:"required"`
	Status   *string   `json:"user_status"`
}

func (r CreateUserRequest) ToModel(hashedPassword string) userModel.UserModel {
	status := userModel.StatusActive
	if r.Status != nil {
		status = *r.Status
	}
	return userModel.UserModel{
		UserSchoolID: r.SchoolID,
		UserName:     r.Name,
		UserEmail:    r.Email,
		UserPassword: hashedPassword,
		UserRole:     r.Role,
		UserStatus:   status,
	}
}

type UpdateUserRequest struct {
	Name   *string `json:"user_name" validate:"omitempty,min=2,max=120"`
	Email  *string `json:"user_email" validate:"omitempty,email,max=160"`
	Role   *string `json:"user_role"`
	Status *string `json:"user_status"`
}

func (r UpdateUserRequest) Apply(m *userModel.UserModel) {
	if r.Name != nil {
		m.UserName = *r.Name
	}
	if r.Email != nil {
		m.UserEmail = *r.Email
	}
	if r.Role != nil {
		m.UserRole = *r.Role
	}
	if r.Status != nil {
		m.UserStatus = *r.Status
	}
}

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	SchoolID  uuid.UUID `json:"user_school_id"`
	Name      string    `json:"user_name"`
	Email     string    `json:"user_email"`
	Role      string    `json:"user_role"`
	Status    string    `json:"user_status"`
	CreatedAt time.Time `json:"user_created_at"`
	UpdatedAt time.Time `json:"user_updated_at"`
}

func FromUserModel(m userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:    m.UserID,
		SchoolID:  m.UserSchoolID,
		Name:      m.UserName,
		Email:     m.UserEmail,
		Role:      m.UserRole,
		Status:    m.UserStatus,
		CreatedAt: m.UserCreatedAt,
		UpdatedAt: m.UserUpdatedAt,
	}
}

func FromUserModels(rows []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromUserModel(m))
	}
	return out
}
