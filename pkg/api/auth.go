package api

import (
	json "github.com/json-iterator/go"
	"github.com/mingle-social/cli/pkg/logger"
)

// Signup creates a new account
func (c *Client) Signup(email, username, password string) (*User, error) {
	logger.Debug("Signing up", "email", email, "username", username)

	req := SignupRequest{
		Email:    email,
		Username: username,
		Password: password,
	}

	resp, err := c.t.UserR().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/signup")

	if err := c.t.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var signupResp SignupResponse
	if err := json.Unmarshal(resp.Body(), &signupResp); err != nil {
		return nil, err
	}

	logger.Debug("Signup successful", "user_id", signupResp.User.ID)
	return &signupResp.User, nil
}

// Login authenticates with email and password and returns the bearer
// token
func (c *Client) Login(email, password string) (string, error) {
	logger.Debug("Attempting login", "email", email)

	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	resp, err := c.t.UserR().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/login")

	if err := c.t.CheckResponse(resp, err); err != nil {
		return "", err
	}

	var loginResp LoginResponse
	if err := json.Unmarshal(resp.Body(), &loginResp); err != nil {
		return "", err
	}

	logger.Debug("Login successful")
	return loginResp.Token, nil
}

// Me gets the current authenticated user with their following set
func (c *Client) Me() (*Me, error) {
	logger.Debug("Fetching current user")

	resp, err := c.t.UserR().Get("/me")

	if err := c.t.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var me Me
	if err := json.Unmarshal(resp.Body(), &me); err != nil {
		return nil, err
	}

	logger.Debug("Current user fetched", "username", me.Username)
	return &me, nil
}

// UpdateUsername changes the current user's username
func (c *Client) UpdateUsername(username string) error {
	logger.Debug("Updating username", "username", username)

	resp, err := c.t.UserR().
		SetHeader("Content-Type", "application/json").
		SetBody(UpdateUsernameRequest{Username: username}).
		Put("/update-username")

	return c.t.CheckResponse(resp, err)
}

// UpdatePassword changes the current user's password
func (c *Client) UpdatePassword(oldPassword, newPassword string) error {
	logger.Debug("Updating password")

	resp, err := c.t.UserR().
		SetHeader("Content-Type", "application/json").
		SetBody(UpdatePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}).
		Put("/update-password")

	return c.t.CheckResponse(resp, err)
}
