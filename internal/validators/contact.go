package validators

import (
	"regexp"

	"github.com/contactapp/contact-api/models"
)

// Field bounds for contact payloads.
const (
	maxFirstNameLen = 100
	maxLastNameLen  = 100
	maxEmailLen     = 200
	maxPhoneLen     = 20
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateContact checks a contact payload for both create and replace:
// first_name is required, the remaining fields are optional but bounded,
// and email must look like an address when present.
func ValidateContact(contact models.Contact) error {
	e := &ValidationError{}

	requireBounded(e, FieldFirstName, contact.FirstName, maxFirstNameLen)
	optionalBounded(e, FieldLastName, contact.LastName, maxLastNameLen)
	optionalBounded(e, FieldPhone, contact.Phone, maxPhoneLen)

	optionalBounded(e, FieldEmail, contact.Email, maxEmailLen)
	if contact.Email != "" && len(contact.Email) <= maxEmailLen && !emailPattern.MatchString(contact.Email) {
		e.add(FieldEmail, "must be a valid email address")
	}

	return e.orNil()
}
