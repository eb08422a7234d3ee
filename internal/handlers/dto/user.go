package dto

import "github.com/thereayou/twitter-lite/internal/database"

type RegisterRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

type UpdateNameRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

type UserProfile struct {
	ID        uint               `json:"id"`
	Name      string             `json:"name"`
	Followers []database.UserRef `json:"followers"`
	Following []database.UserRef `json:"following"`
}
