package core

import "net/http"

// Access is the capability an endpoint requires.
type Access int

const (
	// AccessPublic endpoints are read with GET and carry no authentication.
	AccessPublic Access = iota
	// AccessPrivate endpoints are signed and sent as form-encoded POST.
	AccessPrivate
)

// String returns "public" or "private".
func (a Access) String() string {
	return [...]string{"public", "private"}[a]
}

// APIVersion is the path prefix version of the REST API.
const APIVersion = "0"

// Endpoint describes one REST operation. Endpoints are plain data: a single generic
// dispatch routine interprets them.
type Endpoint struct {
	Op     Operation
	Method string
	Path   string
	Access Access
	// Cost is the number of call-counter points the exchange charges.
	Cost int
}

// PublicEndpoint returns the descriptor of a GET /0/public/<op> endpoint.
func PublicEndpoint(op Operation) Endpoint {
	return Endpoint{
		Op:     op,
		Method: http.MethodGet,
		Path:   "/" + APIVersion + "/public/" + op.String(),
		Access: AccessPublic,
		Cost:   1,
	}
}

// PrivateEndpoint returns the descriptor of a POST /0/private/<op> endpoint.
func PrivateEndpoint(op Operation, cost int) Endpoint {
	return Endpoint{
		Op:     op,
		Method: http.MethodPost,
		Path:   "/" + APIVersion + "/private/" + op.String(),
		Access: AccessPrivate,
		Cost:   cost,
	}
}

// IsPrivate reports whether the endpoint must be signed.
func (e Endpoint) IsPrivate() bool {
	return e.Access == AccessPrivate
}
