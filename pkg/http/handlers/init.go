package handlers

import (
	"github.com/okteto/attendees-function/pkg/function"
)

type HttpEndpoints struct {
	handler *function.Handler
}

func NewHTTPHandler(
	store function.AttendeeStore,
) *HttpEndpoints {
	return &HttpEndpoints{
		handler: function.NewHandler(store),
	}
}
