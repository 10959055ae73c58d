package core

// Request is a single HTTP call ready for the transport.
type Request struct {
	Method  string            `json:"method"`
	Path    string            `json:"path"`
	Query   Params            `json:"query,omitempty"`
	Body    string            `json:"-"`
	Headers map[string]string `json:"-"`
	Access  Access            `json:"access"`
	Cost    int               `json:"cost"`
}

// NewRequest creates a request for method and path with a cost of one.
func NewRequest(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Headers: make(map[string]string),
		Cost:    1,
	}
}

// NewEndpointRequest creates a request for the given endpoint descriptor.
func NewEndpointRequest(ep Endpoint) *Request {
	r := NewRequest(ep.Method, ep.Path).SetAccess(ep.Access)
	if ep.Cost > 0 {
		r.SetCost(ep.Cost)
	}
	return r
}

// SetQuery replaces the query string parameters.
func (r *Request) SetQuery(params Params) *Request {
	r.Query = params
	return r
}

// SetFormBody sets an already encoded form body.
func (r *Request) SetFormBody(body string) *Request {
	r.Body = body
	return r
}

// SetHeader sets a header value.
func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

// SetAccess sets the access class, used to pick a throttle bucket.
func (r *Request) SetAccess(access Access) *Request {
	r.Access = access
	return r
}

// SetCost sets the call-counter cost.
func (r *Request) SetCost(cost int) *Request {
	r.Cost = cost
	return r
}
