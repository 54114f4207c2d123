package professionalRepo

import "savayas/models"

// ProfessionalRepository defines the persistence operations for practitioner
// profiles.
type ProfessionalRepository interface {
	Create(prof *models.Professional) error
	Update(prof *models.Professional) error
	Delete(id string) error
	GetByID(id string) (*models.Professional, error)
	GetByUserID(userID string) (*models.Professional, error)
	Exists(id string) (bool, error)
	ListApproved() ([]models.Professional, error)
	GetAll() ([]models.Professional, error)
	SetApproved(id string, approved bool) error
}
