package store

import "github.com/contactapp/contact-api/internal/logger"

// Storages bundles every repository behind its interface so that the service
// layer receives one injection point instead of a handle per entity.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
	AddressRepository AddressRepository
}

// NewStorages wires all repositories to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
		AddressRepository: NewAddressRepository(db, logger),
	}
}
