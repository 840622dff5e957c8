package function

import "net/http"

// Response is a buffered Context. Host adapters hand it to the handler and
// write it out afterwards.
type Response struct {
	StatusCode int
	Payload    interface{}
	Succeeded  bool
}

func NewResponse() *Response {
	return &Response{StatusCode: http.StatusOK}
}

func (r *Response) Status(code int) Context {
	r.StatusCode = code
	return r
}

func (r *Response) Succeed(payload interface{}) {
	r.Payload = payload
	r.Succeeded = true
}
