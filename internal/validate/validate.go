// Package validate holds the client-side checks that run before a request
// ever reaches the upstream API. Application submissions fail fast on the
// first missing document so the applicant fixes one thing at a time; the
// admin user form reports every violation at once so all invalid fields can
// be highlighted together. Both disciplines are deliberate.
package validate

import (
	"fmt"
	"regexp"

	"github.com/mehdi-chebbi/potal-oss-fr/internal/model"
)

// MissingDocumentError reports the first mandatory document absent from an
// application submission.
type MissingDocumentError struct {
	Document model.DocumentKind
}

func (e *MissingDocumentError) Error() string {
	return fmt.Sprintf("missing required document %q", string(e.Document))
}

// Application checks that every document the offer type mandates is present.
// Documents are checked in a fixed order (the base four first, then the
// tender six) so the reported field is deterministic: a missing cv is always
// reported before any other gap.
func Application(offerType model.OfferType, has func(model.DocumentKind) bool) error {
	for _, doc := range model.RequiredDocuments(offerType) {
		if !has(doc) {
			return &MissingDocumentError{Document: doc}
		}
	}
	return nil
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserFormInput is the raw state of the admin user form.
type UserFormInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// UserForm validates the admin user form and returns a message per violated
// field, all at once. Password rules apply when creating a new user, or when
// a password was typed during an edit; a blank password on edit means "keep
// the current one" and is not an error.
func UserForm(input UserFormInput, isEditing bool) map[string]string {
	errs := make(map[string]string)

	if input.Name == "" {
		errs["name"] = "Name is required"
	}
	if input.Email == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(input.Email) {
		errs["email"] = "Invalid email"
	}

	if !isEditing || input.Password != "" {
		if len(input.Password) < 6 {
			errs["password"] = "Min 6 chars"
		}
		if input.Password != input.ConfirmPassword {
			errs["confirmPassword"] = "Passwords must match"
		}
	}

	return errs
}
