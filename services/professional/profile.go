package professional

import (
	"fmt"

	"savayas/models"
)

// GetProfile returns the practitioner profile by its ID.
func (s *DefaultProfessionalService) GetProfile(id string) (*models.Professional, error) {
	prof, err := s.Professionals.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professional: %w", err)
	}
	if prof == nil {
		return nil, fmt.Errorf("professional %s not found", id)
	}
	return prof, nil
}

// GetProfileByUserID resolves the profile owned by an account. Used by the
// authenticated professional to reach their own profile.
func (s *DefaultProfessionalService) GetProfileByUserID(userID string) (*models.Professional, error) {
	prof, err := s.Professionals.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professional: %w", err)
	}
	if prof == nil {
		return nil, fmt.Errorf("no professional profile for this account")
	}
	return prof, nil
}

// UpdateProfile applies the non-nil fields of upd to the profile.
func (s *DefaultProfessionalService) UpdateProfile(id string, upd models.ProfessionalUpdate) (*models.Professional, error) {
	prof, err := s.GetProfile(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		prof.Name = *upd.Name
	}
	if upd.Specialization != nil {
		prof.Specialization = *upd.Specialization
	}
	if upd.YearsOfExperience != nil {
		prof.YearsOfExperience = *upd.YearsOfExperience
	}
	if upd.Bio != nil {
		prof.Bio = *upd.Bio
	}
	if upd.HourlyRate != nil {
		if *upd.HourlyRate <= 0 {
			return nil, fmt.Errorf("hourlyRate must be positive")
		}
		prof.HourlyRate = *upd.HourlyRate
	}

	if err := s.Professionals.Update(prof); err != nil {
		return nil, fmt.Errorf("failed to update professional: %w", err)
	}
	return prof, nil
}

// DeleteProfile removes the practitioner profile and its availability rules.
func (s *DefaultProfessionalService) DeleteProfile(id string) error {
	rules, err := s.Availability.ListAll(id)
	if err != nil {
		return fmt.Errorf("failed to list availability rules: %w", err)
	}
	for _, rule := range rules {
		if err := s.Availability.Delete(rule.ID); err != nil {
			return fmt.Errorf("failed to delete availability rule %s: %w", rule.ID, err)
		}
	}
	return s.Professionals.Delete(id)
}

// ListApproved returns profiles visible to clients.
func (s *DefaultProfessionalService) ListApproved() ([]models.Professional, error) {
	return s.Professionals.ListApproved()
}

// ListAll returns every profile including unapproved ones. Admin only.
func (s *DefaultProfessionalService) ListAll() ([]models.Professional, error) {
	return s.Professionals.GetAll()
}

// Approve flips the admin approval flag.
func (s *DefaultProfessionalService) Approve(id string, approved bool) error {
	prof, err := s.Professionals.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch professional: %w", err)
	}
	if prof == nil {
		return fmt.Errorf("professional %s not found", id)
	}
	return s.Professionals.SetApproved(id, approved)
}
