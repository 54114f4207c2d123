package user

import (
	userRepo "savayas/database/repository/user"
	"savayas/models"
	"savayas/services/notification"
)

// UserService manages accounts, credentials and token issuance.
type UserService interface {
	Register(reg models.UserRegistration) (*models.AuthResponse, error)
	Authenticate(email, password string) (*models.AuthResponse, error)
	Refresh(refreshToken string) (*models.AuthResponse, error)
	Logout(userID string) error
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUser(user models.User) (*models.User, error)
	DeleteUser(id string) error
	GetAllUsers() ([]models.User, error)
	RequestEmailVerification(userID string) error
	VerifyEmail(userID, otp string) error
}

// DefaultUserService implements UserService on the Mongo user repository.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Notifier notification.NotificationService
}
