package social

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SimulatedAuthorizer answers every request with configured outcome after delay.
// It stands in for the browser handshake, no session is ever established
type SimulatedAuthorizer struct {
	Outcome ResponseType
	Delay   time.Duration
}

func (a *SimulatedAuthorizer) Authorize(ctx context.Context, req Request) (Response, error) {
	timer := time.NewTimer(a.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Response{Type: ResponseDismiss}, nil
	case <-timer.C:
	}

	outcome := a.Outcome
	if outcome == "" {
		outcome = ResponseSuccess
	}

	res := Response{Type: outcome, Params: map[string]string{"state": req.State}}
	if outcome == ResponseSuccess {
		res.Params["code"] = uuid.NewString()
	}
	return res, nil
}
