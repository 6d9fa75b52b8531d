package validators

import "github.com/contactapp/contact-api/models"

// Field bounds for address payloads.
const (
	maxStreetLen     = 255
	maxCityLen       = 100
	maxProvinceLen   = 100
	maxCountryLen    = 100
	maxPostalCodeLen = 10
)

// ValidateAddress checks an address payload for both create and replace:
// every field is required, postal_code is additionally length-bounded.
func ValidateAddress(address models.Address) error {
	e := &ValidationError{}

	requireBounded(e, FieldStreet, address.Street, maxStreetLen)
	requireBounded(e, FieldCity, address.City, maxCityLen)
	requireBounded(e, FieldProvince, address.Province, maxProvinceLen)
	requireBounded(e, FieldCountry, address.Country, maxCountryLen)
	requireBounded(e, FieldPostalCode, address.PostalCode, maxPostalCodeLen)

	return e.orNil()
}
