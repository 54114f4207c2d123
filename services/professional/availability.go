package professional

import (
	"fmt"

	"savayas/models"
)

// UpsertAvailability creates or replaces the weekly rule for one day. A
// professional keeps at most one rule per day of the week.
func (s *DefaultProfessionalService) UpsertAvailability(professionalID string, req models.UpsertAvailabilityRequest) (*models.AvailabilityRule, error) {
	if _, err := s.GetProfile(professionalID); err != nil {
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}
	rule := &models.AvailabilityRule{
		ProfessionalID: professionalID,
		DayOfWeek:      req.DayOfWeek,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		IsAvailable:    isAvailable,
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	if err := s.Availability.Upsert(rule); err != nil {
		return nil, fmt.Errorf("failed to save availability rule: %w", err)
	}
	return rule, nil
}

// ListAvailability returns all weekly rules for a professional.
func (s *DefaultProfessionalService) ListAvailability(professionalID string) ([]models.AvailabilityRule, error) {
	if _, err := s.GetProfile(professionalID); err != nil {
		return nil, err
	}
	return s.Availability.ListAll(professionalID)
}

// DeleteAvailability removes a rule after checking it belongs to the caller.
func (s *DefaultProfessionalService) DeleteAvailability(professionalID, ruleID string) error {
	rule, err := s.Availability.GetByID(ruleID)
	if err != nil {
		return fmt.Errorf("failed to fetch availability rule: %w", err)
	}
	if rule == nil {
		return fmt.Errorf("availability rule %s not found", ruleID)
	}
	if rule.ProfessionalID != professionalID {
		return fmt.Errorf("availability rule %s does not belong to this professional", ruleID)
	}
	return s.Availability.Delete(ruleID)
}
