package services

import (
	"github.com/blogem/kakao-token/repositories"
)

// Services holds all service instances
type Services struct {
	Login LoginService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Login: NewLoginService(repos.User, repos.Audit),
	}
}
