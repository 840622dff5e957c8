// Package lambdaproxy runs the attendee handler behind API Gateway proxy
// integrations.
package lambdaproxy

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/coneno/logger"
	"github.com/okteto/attendees-function/pkg/function"
	"github.com/okteto/attendees-function/pkg/metrics"
)

type Proxy struct {
	handler *function.Handler
	metrics *metrics.Metrics
}

func NewProxy(store function.AttendeeStore, m *metrics.Metrics) *Proxy {
	return &Proxy{
		handler: function.NewHandler(store),
		metrics: m,
	}
}

// HandleRequest never returns an error to the Lambda runtime; faults become a
// bare 500 response.
func (p *Proxy) HandleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	res := p.handle(ctx, req)
	p.metrics.Observe(req.HTTPMethod, res.StatusCode)
	return res, nil
}

func (p *Proxy) handle(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			logger.Error.Printf("unable to decode request body: %v", err)
			return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}
		}
		body = decoded
	}

	resp := function.NewResponse()
	if err := p.handler.Handle(ctx, function.Event{Method: req.HTTPMethod, Body: body}, resp); err != nil {
		logger.Error.Println(err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}
	}

	if !resp.Succeeded {
		return events.APIGatewayProxyResponse{StatusCode: resp.StatusCode}
	}
	payload, err := json.Marshal(resp.Payload)
	if err != nil {
		logger.Error.Printf("unable to encode response: %v", err)
		return events.APIGatewayProxyResponse{StatusCode: http.StatusInternalServerError}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(payload),
	}
}
