package models

import "time"

// Professional is a practitioner profile linked to a user account with the
// professional role. Only approved profiles are listed publicly or bookable.
type Professional struct {
	ID                string    `bson:"id" json:"id"`
	UserID            string    `bson:"user_id" json:"userId"`
	Name              string    `bson:"name" json:"name"`
	Specialization    string    `bson:"specialization" json:"specialization"`
	LicenseNumber     string    `bson:"license_number" json:"licenseNumber"`
	YearsOfExperience int       `bson:"years_of_experience" json:"yearsOfExperience"`
	Bio               string    `bson:"bio" json:"bio"`
	HourlyRate        float64   `bson:"hourly_rate" json:"hourlyRate"`
	IsApproved        bool      `bson:"is_approved" json:"isApproved"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updatedAt"`
}

// ProfessionalRegistration carries the account plus profile fields for
// professional signup.
type ProfessionalRegistration struct {
	Email             string  `json:"email" binding:"required,email"`
	Password          string  `json:"password" binding:"required,min=8"`
	FirstName         string  `json:"firstName" binding:"required"`
	LastName          string  `json:"lastName" binding:"required"`
	PhoneNumber       string  `json:"phoneNumber"`
	Specialization    string  `json:"specialization" binding:"required"`
	LicenseNumber     string  `json:"licenseNumber" binding:"required"`
	YearsOfExperience int     `json:"yearsOfExperience" binding:"min=0"`
	Bio               string  `json:"bio" binding:"required,max=1000"`
	HourlyRate        float64 `json:"hourlyRate" binding:"required,gt=0"`
}

// ProfessionalUpdate holds the fields a professional may change on their own
// profile. Nil means "leave unchanged".
type ProfessionalUpdate struct {
	Name              *string  `json:"name,omitempty"`
	Specialization    *string  `json:"specialization,omitempty"`
	YearsOfExperience *int     `json:"yearsOfExperience,omitempty"`
	Bio               *string  `json:"bio,omitempty"`
	HourlyRate        *float64 `json:"hourlyRate,omitempty"`
}
