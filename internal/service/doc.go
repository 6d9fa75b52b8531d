// Package service contains the business logic of the contact API: account
// registration and login, bearer-token authentication, and ownership-scoped
// management of contacts and their addresses. Services validate input,
// delegate persistence to the store repositories, and translate storage
// errors into the vocabulary the HTTP layer maps to status codes.
package service
