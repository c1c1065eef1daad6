package infra

import (
	"fmt"
	"net/http"

	"github.com/umalmyha/authflow/internal/auth"
	"github.com/umalmyha/authflow/internal/config"
	"github.com/umalmyha/authflow/internal/social"
)

func Authenticator(cfg config.AuthCfg) (auth.Authenticator, error) {
	switch cfg.Backend {
	case config.BackendStub:
		return auth.NewStubAuthenticator(cfg.StubDelay)
	case config.BackendHTTP:
		return auth.NewHTTPAuthenticator(cfg.HTTPURL, &http.Client{Timeout: cfg.HTTPTimeout}), nil
	default:
		return nil, fmt.Errorf("unknown auth backend %s", cfg.Backend)
	}
}

// SocialProviders builds Google and Facebook providers backed by simulated handshake
func SocialProviders(cfg config.SocialCfg) []social.Provider {
	authorizer := &social.SimulatedAuthorizer{
		Outcome: social.ResponseType(cfg.Outcome),
		Delay:   cfg.Delay,
	}

	return []social.Provider{
		social.NewGoogle(cfg.GoogleClientID, authorizer),
		social.NewFacebook(cfg.FacebookAppID, authorizer),
	}
}
