package user

import (
	"fmt"

	"savayas/models"
)

// GetUserByID returns the full user record.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user %s not found", id)
	}
	return usr, nil
}

// GetUserByEmail returns the user owning the given email address.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("no user registered with %s", email)
	}
	return usr, nil
}

// UpdateUser replaces the mutable profile fields of an existing account.
// Credentials and role are never touched here.
func (s *DefaultUserService) UpdateUser(user models.User) (*models.User, error) {
	existing, err := s.Repo.GetByID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("user %s not found", user.ID)
	}

	if user.FirstName != "" {
		existing.FirstName = user.FirstName
	}
	if user.LastName != "" {
		existing.LastName = user.LastName
	}
	if user.PhoneNumber != "" {
		existing.PhoneNumber = user.PhoneNumber
	}

	if err := s.Repo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return existing, nil
}

// DeleteUser removes the account record.
func (s *DefaultUserService) DeleteUser(id string) error {
	return s.Repo.Delete(id)
}

// GetAllUsers lists every account. Admin only.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}
