package store

// Static SQL statements. Optional contact columns are stored as NULL when
// empty (NULLIF on write) and read back as empty strings (COALESCE), so the
// Go layer never deals with nullable strings for them.
const (
	createUser = `INSERT INTO users (username, password, name)
    VALUES ($1, $2, $3)
    RETURNING username, password, name, token;`

	findUserByUsername = `SELECT username, password, name, token
    FROM users
    WHERE username = $1;`

	findUserByToken = `SELECT username, password, name, token
    FROM users
    WHERE token = $1;`

	updateUserToken = `UPDATE users
    SET token = $1
    WHERE username = $2;`

	deleteUser = `DELETE FROM users
    WHERE username = $1;`

	createContact = `INSERT INTO contacts (username, first_name, last_name, email, phone)
    VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
    RETURNING id, username, first_name, COALESCE(last_name, ''), COALESCE(email, ''), COALESCE(phone, '');`

	findContactByID = `SELECT id, username, first_name, COALESCE(last_name, ''), COALESCE(email, ''), COALESCE(phone, '')
    FROM contacts
    WHERE id = $1 AND username = $2;`

	updateContact = `UPDATE contacts
    SET first_name = $1, last_name = NULLIF($2, ''), email = NULLIF($3, ''), phone = NULLIF($4, '')
    WHERE id = $5 AND username = $6
    RETURNING id, username, first_name, COALESCE(last_name, ''), COALESCE(email, ''), COALESCE(phone, '');`

	deleteContact = `DELETE FROM contacts
    WHERE id = $1 AND username = $2;`

	createAddress = `INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, contact_id, street, city, province, country, postal_code;`

	findAddressByID = `SELECT id, contact_id, street, city, province, country, postal_code
    FROM addresses
    WHERE id = $1 AND contact_id = $2;`

	updateAddress = `UPDATE addresses
    SET street = $1, city = $2, province = $3, country = $4, postal_code = $5
    WHERE id = $6 AND contact_id = $7
    RETURNING id, contact_id, street, city, province, country, postal_code;`

	deleteAddress = `DELETE FROM addresses
    WHERE id = $1 AND contact_id = $2;`

	listAddresses = `SELECT id, contact_id, street, city, province, country, postal_code
    FROM addresses
    WHERE contact_id = $1
    ORDER BY id;`
)
