package store

import "github.com/daifend/platform/model"

// GetUser returns a single user or ErrNotFound.
func (s *Storage) GetUser(id uint) (model.User, error) {
	var user model.User
	if err := s.db.First(&user, id).Error; err != nil {
		return model.User{}, translate(err)
	}
	return user, nil
}

// GetUserByUsername returns the user with the given username or ErrNotFound.
func (s *Storage) GetUserByUsername(username string) (model.User, error) {
	var user model.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return model.User{}, translate(err)
	}
	return user, nil
}

// CreateUser persists a new user. The password is stored as an opaque string;
// no hashing scheme is applied or enforced here.
func (s *Storage) CreateUser(user *model.User) error {
	if user.Username == "" || user.Email == "" || user.Password == "" {
		return invalidf("username, email and password are required")
	}
	if user.Role == "" {
		user.Role = "user"
	}
	return s.db.Create(user).Error
}
