package service

import (
	"learnify_backend/internal/model"
	"learnify_backend/internal/repository"
	"learnify_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) GetAll() ([]model.User, error) {
	return s.UserRepo.FindAll()
}

func (s *UserService) Get(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetByUsername(username string) (*model.User, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

// Update applies profile changes. A blank password keeps the stored hash,
// a non-blank one is re-hashed.
func (s *UserService) Update(id uint, updated *model.User) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if updated.Username != "" && updated.Username != user.Username {
		exists, err := s.UserRepo.ExistsByUsername(updated.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, util.ErrUsernameRegistered
		}
		user.Username = updated.Username
	}
	if updated.Email != "" && updated.Email != user.Email {
		exists, err := s.UserRepo.ExistsByEmail(updated.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, util.ErrEmailRegistered
		}
		user.Email = updated.Email
	}
	if updated.FirstName != "" {
		user.FirstName = updated.FirstName
	}
	if updated.LastName != "" {
		user.LastName = updated.LastName
	}
	if updated.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(updated.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetActive(id uint, active bool) error {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return util.ErrUserNotFound
	}
	user.Active = active
	return s.UserRepo.Update(user)
}

func (s *UserService) SetRole(id uint, role model.UserRole) error {
	if !role.Valid() {
		return util.ErrInvalidRole
	}
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return util.ErrUserNotFound
	}
	user.Role = role
	return s.UserRepo.Update(user)
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.UserRepo.FindByID(id); err != nil {
		return util.ErrUserNotFound
	}
	return s.UserRepo.Delete(id)
}
