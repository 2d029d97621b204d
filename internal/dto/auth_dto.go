package dto

import "github.com/google/uuid"

type LoginRequest struct {
	// Identifier is either an email or a US phone in DDD-DDD-DDDD form.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginUser struct {
	Id          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
}

type LoginResponse struct {
	User LoginUser `json:"user"`
}
