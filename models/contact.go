package models

// Contact is a single address-book entry owned by exactly one user.
// Ownership is carried by the Username foreign key and is never exposed
// over the wire.
type Contact struct {
	// ID is the server-assigned unique identifier of the contact.
	ID int64 `json:"id"`

	// Username is the owning user's login. It is resolved from the
	// authenticated request, never from the request body.
	Username string `json:"-"`

	// FirstName is the only required contact field.
	FirstName string `json:"first_name"`

	// LastName is optional.
	LastName string `json:"last_name"`

	// Email is optional; when present it must be a valid address.
	Email string `json:"email"`

	// Phone is optional and length-bounded.
	Phone string `json:"phone"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// ContactFilter describes a contact search request. All filters are
// case-insensitive substring matches and are AND-combined when more than
// one is given. Page is 1-based.
type ContactFilter struct {
	// Name matches against the space-joined full name, so a value spanning
	// the first/last name boundary still finds the contact.
	Name string

	Email string
	Phone string

	Page int
	Size int
}
