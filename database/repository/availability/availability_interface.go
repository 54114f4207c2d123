package availabilityRepo

import "savayas/models"

// AvailabilityRepository stores recurring weekly availability rules. The CRUD
// surface keeps at most one rule per (professional, dayOfWeek) pair.
type AvailabilityRepository interface {
	ListRules(professionalID string, dayOfWeek int) ([]models.AvailabilityRule, error)
	ListAll(professionalID string) ([]models.AvailabilityRule, error)
	GetByID(id string) (*models.AvailabilityRule, error)
	Upsert(rule *models.AvailabilityRule) error
	Delete(id string) error
}
