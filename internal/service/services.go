package service

import (
	"github.com/contactapp/contact-api/internal/config"
	"github.com/contactapp/contact-api/internal/logger"
	"github.com/contactapp/contact-api/internal/store"
)

// Services bundles every business-logic service behind one value so the HTTP
// layer can be wired with a single dependency.
type Services struct {
	AuthService
	UserService
	ContactService
	AddressService
}

// NewServices constructs the full service layer on top of the given storages.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, logger),
		UserService:    NewUserService(storages.UserRepository, cfg, logger),
		ContactService: NewContactService(storages.ContactRepository, logger),
		AddressService: NewAddressService(storages.ContactRepository, storages.AddressRepository, logger),
	}
}
