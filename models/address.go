package models

// Address is a postal address nested under a contact. It is reachable only
// through a contact owned by the authenticated user.
type Address struct {
	// ID is the server-assigned unique identifier of the address.
	ID int64 `json:"id"`

	// ContactID is the owning contact. Resolved from the URL, never from
	// the request body.
	ContactID int64 `json:"-"`

	Street   string `json:"street"`
	City     string `json:"city"`
	Province string `json:"province"`

	// Country is required.
	Country string `json:"country"`

	// PostalCode is required and length-bounded.
	PostalCode string `json:"postal_code"`
}

// TableName returns the name of the database table
// associated with the Address model.
func (a Address) TableName() string {
	return "addresses"
}
