// Package validation provides input validation utilities.
//
// Request-body validators collect every violation instead of failing on the
// first one, so a response can report the complete list keyed by field name.
package validation

import (
	"regexp"
	"time"

	"devconnect/internal/models"
)

const minPasswordLen = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidEmail checks basic email format.
func ValidEmail(email string) bool {
	return len(email) <= 254 && emailRegex.MatchString(email)
}

// Register validates a registration request body.
func Register(name, email, password string) []models.FieldError {
	var errs []models.FieldError
	if name == "" {
		errs = append(errs, models.FieldError{Field: "name", Message: "Name is required"})
	}
	if !ValidEmail(email) {
		errs = append(errs, models.FieldError{Field: "email", Message: "Please include a valid email"})
	}
	if len(password) < minPasswordLen {
		errs = append(errs, models.FieldError{Field: "password", Message: "Password must be 6 or more characters"})
	}
	return errs
}

// Login validates a login request body.
func Login(email, password string) []models.FieldError {
	var errs []models.FieldError
	if !ValidEmail(email) {
		errs = append(errs, models.FieldError{Field: "email", Message: "Please include a valid email"})
	}
	if password == "" {
		errs = append(errs, models.FieldError{Field: "password", Message: "Password is required"})
	}
	return errs
}

// Profile validates a profile create/update request body.
func Profile(status string, skills []string) []models.FieldError {
	var errs []models.FieldError
	if status == "" {
		errs = append(errs, models.FieldError{Field: "status", Message: "Status is required"})
	}
	if len(skills) == 0 {
		errs = append(errs, models.FieldError{Field: "skills", Message: "Skills are required"})
	}
	return errs
}

// Experience validates an experience entry request body.
func Experience(title, company string, from time.Time) []models.FieldError {
	var errs []models.FieldError
	if title == "" {
		errs = append(errs, models.FieldError{Field: "title", Message: "Title is required"})
	}
	if company == "" {
		errs = append(errs, models.FieldError{Field: "company", Message: "Company is required"})
	}
	if from.IsZero() {
		errs = append(errs, models.FieldError{Field: "from", Message: "Starting date is required"})
	}
	return errs
}

// Education validates an education entry request body.
func Education(school, degree, fieldOfStudy string, from time.Time) []models.FieldError {
	var errs []models.FieldError
	if school == "" {
		errs = append(errs, models.FieldError{Field: "school", Message: "School is required"})
	}
	if degree == "" {
		errs = append(errs, models.FieldError{Field: "degree", Message: "Degree is required"})
	}
	if fieldOfStudy == "" {
		errs = append(errs, models.FieldError{Field: "fieldofstudy", Message: "Field of study is required"})
	}
	if from.IsZero() {
		errs = append(errs, models.FieldError{Field: "from", Message: "Starting date is required"})
	}
	return errs
}

// Post validates a post create request body.
func Post(text string) []models.FieldError {
	var errs []models.FieldError
	if text == "" {
		errs = append(errs, models.FieldError{Field: "text", Message: "Text is required"})
	}
	return errs
}
