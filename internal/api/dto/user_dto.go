package dto

import "time"

// UserSummary is the author/owner block embedded in view models.
type UserSummary struct {
	ID       string `json:"_id"`
	UserName string `json:"userName"`
	Avatar   string `json:"avatar"`
	FullName string `json:"fullName"`
}

// UserInfo is the full own-profile view.
type UserInfo struct {
	ID         string    `json:"_id"`
	UserName   string    `json:"userName"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AccountUpdateRequest changes display name and email.
type AccountUpdateRequest struct {
	FullName string `json:"fullName" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
}

// ChangePasswordRequest rotates the credential hash.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=128"`
}
