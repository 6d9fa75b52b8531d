// Package http implements the HTTP transport layer of the contact API.
// It provides the router, middleware, and route handlers for the REST
// endpoints. Tracing, request logging, and bearer-token authentication are
// handled at this layer before requests reach the service layer; every
// response is wrapped in the {"data": ...} / {"errors": ...} envelope.
package http
