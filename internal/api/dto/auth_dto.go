package dto

// RegisterRequest creates an account. Avatar and cover image arrive as
// multipart files alongside these fields.
type RegisterRequest struct {
	UserName string `form:"userName" binding:"required,min=3,max=30"`
	Email    string `form:"email" binding:"required,email"`
	FullName string `form:"fullName" binding:"required,min=3,max=30"`
	Password string `form:"password" binding:"required,min=8,max=128"`
}

// LoginRequest authenticates by handle or email.
type LoginRequest struct {
	UserNameOrEmail string `json:"userNameOrEmail" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// TokenData is the issued credential pair.
type TokenData struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	TokenType    string   `json:"tokenType"`
	ExpiresIn    int      `json:"expiresIn"`
	User         UserInfo `json:"user"`
}

// RefreshRequest carries the refresh token when it is not presented as a
// cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
