package professional

import (
	availabilityRepo "savayas/database/repository/availability"
	professionalRepo "savayas/database/repository/professional"
	userRepo "savayas/database/repository/user"
	"savayas/models"
)

// ProfessionalService manages practitioner profiles and their weekly
// availability rules.
type ProfessionalService interface {
	Register(reg models.ProfessionalRegistration) (*models.AuthResponse, error)
	GetProfile(id string) (*models.Professional, error)
	GetProfileByUserID(userID string) (*models.Professional, error)
	UpdateProfile(id string, upd models.ProfessionalUpdate) (*models.Professional, error)
	DeleteProfile(id string) error
	ListApproved() ([]models.Professional, error)
	ListAll() ([]models.Professional, error)
	Approve(id string, approved bool) error

	UpsertAvailability(professionalID string, req models.UpsertAvailabilityRequest) (*models.AvailabilityRule, error)
	ListAvailability(professionalID string) ([]models.AvailabilityRule, error)
	DeleteAvailability(professionalID, ruleID string) error
}

// DefaultProfessionalService implements ProfessionalService on the Mongo
// repositories.
type DefaultProfessionalService struct {
	Users         userRepo.UserRepository
	Professionals professionalRepo.ProfessionalRepository
	Availability  availabilityRepo.AvailabilityRepository
}
