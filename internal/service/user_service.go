package service

import (
	"fmt"

	"github.com/openvelo/road-backend-go/internal/models"
)

// UserService manages user accounts. Creation is idempotent on username so
// the mobile client can call it on every launch.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Create returns the existing user when the username is already taken
// instead of failing
func (s *UserService) Create(payload models.UserCreate) (*models.User, error) {
	existing, err := s.users.GetUserByUsername(payload.Username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return existing, nil
	}
	return s.users.CreateUser(payload.Username)
}

func (s *UserService) Get(id int64) (*models.User, error) {
	user, err := s.users.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("user_id not found")
	}
	return user, nil
}

func (s *UserService) List() ([]models.User, error) {
	return s.users.ListUsers()
}
