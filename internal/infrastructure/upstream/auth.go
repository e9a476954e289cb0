package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
	"github.com/HairulDev/tsn-asia-next/internal/core/ports"
)

const loginPath = "/auth/login"

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authUser is the wire shape of the user object in the login response. The
// embedded company is optional; not every role belongs to one.
type authUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
	Company   *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"company"`
}

// AuthClient authenticates against the backend. Login is the only endpoint
// called without a bearer token.
type AuthClient struct {
	c *Client
}

func (c *Client) Auth() *AuthClient {
	return &AuthClient{c: c}
}

// Login exchanges credentials for the backend bearer token and user profile.
// Upstream rejections (401/400) are reported as ErrInvalidCredentials wrapped
// around the server's own message so it can be shown inline on the login form.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	raw, status, err := a.c.do(ctx, http.MethodPost, loginPath, nil, loginPayload{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope(loginPath, status, raw)
	if err != nil {
		var ue *domain.UpstreamError
		if errors.As(err, &ue) && (ue.StatusCode == http.StatusUnauthorized || ue.StatusCode == http.StatusBadRequest) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, ue.Message)
		}
		return nil, err
	}

	if env.Token == "" {
		return nil, &domain.ShapeError{Endpoint: loginPath, Reason: "missing token"}
	}
	if len(env.User) == 0 {
		return nil, &domain.ShapeError{Endpoint: loginPath, Reason: "missing user"}
	}
	var wire authUser
	if err := json.Unmarshal(env.User, &wire); err != nil {
		return nil, &domain.ShapeError{Endpoint: loginPath, Reason: "user has unexpected shape"}
	}

	result := &ports.AuthResult{
		Token: env.Token,
		User: domain.User{
			ID:        wire.ID,
			Name:      wire.Name,
			Email:     wire.Email,
			Role:      wire.Role,
			CompanyID: wire.CompanyID,
		},
	}
	if wire.Company != nil {
		result.CompanyName = wire.Company.Name
		if result.User.CompanyID == "" {
			result.User.CompanyID = wire.Company.ID
		}
	}
	return result, nil
}
