package restapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	"github.com/mrraghuvarun/talent/internal/domain/model"
	"github.com/mrraghuvarun/talent/internal/ports"
)

type loginResponse struct {
	User struct {
		ID    model.CandidateID `json:"id"`
		Role  string            `json:"role"`
		Email string            `json:"email"`
	} `json:"user"`
	Token string `json:"token"`
}

// Login issues POST /login and returns the viewer and its bearer token.
func (c *Client) Login(ctx context.Context, creds domainauth.Credentials) (ports.LoginResult, error) {
	var out loginResponse
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint("login"), creds, &out); err != nil {
		return ports.LoginResult{}, fmt.Errorf("login: %w", err)
	}
	if out.Token == "" {
		return ports.LoginResult{}, errors.New("login: response carried no token")
	}
	email := out.User.Email
	if email == "" {
		email = creds.Email
	}
	return ports.LoginResult{
		Viewer: domainauth.ViewerContext{
			UserID: out.User.ID.String(),
			Email:  email,
			Role:   domainauth.ParseRole(out.User.Role),
		},
		Token: out.Token,
	}, nil
}
