// Package function holds the attendee handler shared by every host runtime.
package function

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okteto/attendees-function/pkg/types"
	"go.mongodb.org/mongo-driver/bson"
)

// Event is the inbound trigger built by the host adapter.
type Event struct {
	Method string
	Body   []byte
}

// Context builds the response for a single invocation.
type Context interface {
	Status(code int) Context
	Succeed(payload interface{})
}

type AttendeeStore interface {
	InsertAttendee(ctx context.Context, attendee types.Attendee) (int64, error)
	FindAttendees(ctx context.Context) ([]bson.M, error)
}

type Handler struct {
	store AttendeeStore
}

func NewHandler(store AttendeeStore) *Handler {
	return &Handler{store: store}
}

// Handle runs exactly one store operation for the event. A returned error is
// a fault the host adapter must answer on its own.
func (h *Handler) Handle(ctx context.Context, event Event, fctx Context) error {
	switch event.Method {
	case http.MethodPost:
		return h.addAttendee(ctx, event, fctx)
	case http.MethodGet:
		return h.listAttendees(ctx, fctx)
	default:
		fctx.Status(http.StatusMethodNotAllowed)
		return nil
	}
}

func (h *Handler) addAttendee(ctx context.Context, event Event, fctx Context) error {
	var attendee types.Attendee
	if err := json.Unmarshal(event.Body, &attendee); err != nil {
		return fmt.Errorf("decode attendee: %w", err)
	}

	n, err := h.store.InsertAttendee(ctx, attendee)
	if err != nil {
		return fmt.Errorf("insert attendee: %w", err)
	}
	if n != 1 {
		fctx.Status(http.StatusInternalServerError)
		return nil
	}
	fctx.Status(http.StatusNoContent)
	return nil
}

func (h *Handler) listAttendees(ctx context.Context, fctx Context) error {
	result, err := h.store.FindAttendees(ctx)
	if err != nil {
		return fmt.Errorf("find attendees: %w", err)
	}
	// the stored documents are returned unprojected, _id included
	fctx.Status(http.StatusOK).Succeed(result)
	return nil
}
