package controllers

import (
	"github.com/blogem/kakao-token/middleware"
	"github.com/blogem/kakao-token/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Auth *AuthController
	User *UserController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, auth middleware.Authenticator, recorder *middleware.AuditRecorder) *Controllers {
	return &Controllers{
		Auth: NewAuthController(auth, recorder),
		User: NewUserController(services),
	}
}
