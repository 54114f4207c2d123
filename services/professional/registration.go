package professional

import (
	"fmt"

	"savayas/models"
	userService "savayas/services/user"
	"savayas/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates the user account and the practitioner profile together.
// The profile starts unapproved and stays off public listings until an admin
// approves it.
func (s *DefaultProfessionalService) Register(reg models.ProfessionalRegistration) (*models.AuthResponse, error) {
	existing, err := s.Users.GetByEmail(reg.Email)
	if err != nil {
		utils.GetLogger().Error("professional registration: failed to check email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("user already exists with this email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("registration failed, please try again")
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Email:        reg.Email,
		PasswordHash: string(hash),
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		PhoneNumber:  reg.PhoneNumber,
		Role:         models.RoleProfessional,
	}
	if err := s.Users.Create(usr); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	prof := &models.Professional{
		ID:                uuid.New().String(),
		UserID:            usr.ID,
		Name:              reg.FirstName + " " + reg.LastName,
		Specialization:    reg.Specialization,
		LicenseNumber:     reg.LicenseNumber,
		YearsOfExperience: reg.YearsOfExperience,
		Bio:               reg.Bio,
		HourlyRate:        reg.HourlyRate,
		IsApproved:        false,
	}
	if err := s.Professionals.Create(prof); err != nil {
		// Roll back the account so the email is not burned by a half
		// finished signup.
		if delErr := s.Users.Delete(usr.ID); delErr != nil {
			utils.GetLogger().Error("professional registration: orphaned user account",
				zap.String("userID", usr.ID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return userService.IssueTokens(s.Users, usr)
}
