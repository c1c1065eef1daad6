// Package social models third-party sign-in providers. The handshake itself is
// delegated to an Authorizer, providers only build the request and check that
// the response belongs to it.
package social

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ResponseType discriminates outcome of authorization
type ResponseType string

const (
	ResponseSuccess ResponseType = "success"
	ResponseCancel  ResponseType = "cancel"
	ResponseDismiss ResponseType = "dismiss"
	ResponseError   ResponseType = "error"
)

// Provider names
const (
	Google   = "Google"
	Facebook = "Facebook"
)

const (
	googleAuthURL   = "https://accounts.google.com/o/oauth2/v2/auth"
	facebookAuthURL = "https://www.facebook.com/v6.0/dialog/oauth"
)

// Request is authorization request handed to Authorizer
type Request struct {
	Provider string
	ClientID string
	State    string
	URL      string
}

// Response is opaque provider response, only Type is inspected by flows
type Response struct {
	Type     ResponseType
	Provider string
	Params   map[string]string
	Err      error
}

// Authorizer performs provider handshake, e.g. browser based OAuth flow
type Authorizer interface {
	Authorize(context.Context, Request) (Response, error)
}

// Provider is capability set flows depend on
type Provider interface {
	Name() string
	BeginAuthorization(context.Context) (*Pending, error)
}

// Pending is authorization in progress
type Pending struct {
	done     chan struct{}
	mu       sync.Mutex
	resolved bool
	res      Response
	cbs      []func(Response)
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// OnResult registers callback, it is invoked right away when result is already known
func (p *Pending) OnResult(cb func(Response)) {
	p.mu.Lock()
	if p.resolved {
		res := p.res
		p.mu.Unlock()
		cb(res)
		return
	}
	p.cbs = append(p.cbs, cb)
	p.mu.Unlock()
}

// Wait blocks until authorization completes and callbacks registered so far have run, or ctx is done
func (p *Pending) Wait(ctx context.Context) (Response, error) {
	select {
	case <-ctx.Done():
		return Response{}, ctx.Err()
	case <-p.done:
		return p.res, nil
	}
}

func (p *Pending) resolve(res Response) {
	p.mu.Lock()
	p.res = res
	p.resolved = true
	cbs := p.cbs
	p.cbs = nil
	p.mu.Unlock()

	for _, cb := range cbs {
		cb(res)
	}
	close(p.done)
}

type provider struct {
	name       string
	clientID   string
	authURL    string
	scopes     string
	authorizer Authorizer
}

// NewGoogle builds Google provider
func NewGoogle(clientID string, authorizer Authorizer) Provider {
	return &provider{
		name:       Google,
		clientID:   clientID,
		authURL:    googleAuthURL,
		scopes:     "openid profile email",
		authorizer: authorizer,
	}
}

// NewFacebook builds Facebook provider
func NewFacebook(appID string, authorizer Authorizer) Provider {
	return &provider{
		name:       Facebook,
		clientID:   appID,
		authURL:    facebookAuthURL,
		scopes:     "public_profile,email",
		authorizer: authorizer,
	}
}

func (p *provider) Name() string {
	return p.name
}

func (p *provider) BeginAuthorization(ctx context.Context) (*Pending, error) {
	if p.clientID == "" {
		return nil, fmt.Errorf("%s client id is not configured", p.name)
	}

	req := p.request()
	pending := newPending()

	go func() {
		res, err := p.authorizer.Authorize(ctx, req)
		if err != nil {
			res = Response{Type: ResponseError, Err: err}
		}
		res.Provider = p.name

		if res.Type == ResponseSuccess && res.Params["state"] != req.State {
			res = Response{Type: ResponseError, Provider: p.name, Err: errors.New("authorization state mismatch")}
		}

		logrus.WithFields(logrus.Fields{"provider": p.name, "type": res.Type}).Debug("social authorization completed")
		pending.resolve(res)
	}()

	return pending, nil
}

func (p *provider) request() Request {
	state := uuid.NewString()

	q := url.Values{}
	q.Set("client_id", p.clientID)
	q.Set("response_type", "code")
	q.Set("scope", p.scopes)
	q.Set("state", state)

	return Request{
		Provider: p.name,
		ClientID: p.clientID,
		State:    state,
		URL:      p.authURL + "?" + q.Encode(),
	}
}
