package handlers

import (
	"io"
	"net/http"

	"github.com/coneno/logger"
	"github.com/gin-gonic/gin"
	"github.com/okteto/attendees-function/pkg/function"
)

// AddAttendeesAPI mounts the function on the group root for every method.
// Unsupported methods are answered by the function itself.
func (h *HttpEndpoints) AddAttendeesAPI(rg *gin.RouterGroup) {
	rg.Any("/", h.handleAttendees)
}

func (h *HttpEndpoints) handleAttendees(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.Error.Printf("unable to read request body: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	resp := function.NewResponse()
	err = h.handler.Handle(c.Request.Context(), function.Event{
		Method: c.Request.Method,
		Body:   body,
	}, resp)
	if err != nil {
		logger.Error.Println(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	if resp.Succeeded {
		c.JSON(resp.StatusCode, resp.Payload)
		return
	}
	c.Status(resp.StatusCode)
	c.Writer.WriteHeaderNow()
}
