package services

import (
	"gossip/internal/models"
	"gossip/internal/repositories"
)

type UserService interface {
	GetProfileByID(id int) (*models.Profile, error)
	GetProfileByEmail(email string) (*models.Profile, error)
}

type userService struct {
	repo repositories.AccountRepository
}

func NewUserService(repo repositories.AccountRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetProfileByID(id int) (*models.Profile, error) {
	return s.repo.GetByID(id)
}

func (s *userService) GetProfileByEmail(email string) (*models.Profile, error) {
	return s.repo.GetByEmail(email)
}
