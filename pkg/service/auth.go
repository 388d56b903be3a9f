package service

import (
	"fmt"

	"github.com/mingle-social/cli/pkg/api"
	"github.com/mingle-social/cli/pkg/formatter"
	"github.com/mingle-social/cli/pkg/logger"
	"github.com/mingle-social/cli/pkg/prompter"
	"github.com/mingle-social/cli/pkg/session"
)

type AuthService struct {
	api   *api.Client
	store *session.Store
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	store := newSessionStore()
	return &AuthService{
		api:   newAPIClient(store),
		store: store,
	}
}

// Signup creates a new account
func (s *AuthService) Signup() error {
	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	username, err := prompter.PromptString("Username: ")
	if err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	formatter.PrintInfo("Creating account...")
	user, err := s.api.Signup(email, username, password)
	if err != nil {
		return reportError(err)
	}

	formatter.PrintSuccess("✓ Signup successful! Please login.")
	logger.Info("Account created", "user_id", user.ID)
	return nil
}

// Login authenticates and stores the session token
func (s *AuthService) Login() error {
	if sess := s.store.Current(); sess != nil {
		formatter.PrintWarning("Already logged in as %s", sess.Username)
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	formatter.PrintInfo("Authenticating...")
	token, err := s.api.Login(email, password)
	if err != nil {
		return reportError(err)
	}

	// Store the token first so the /me call below goes out decorated
	if err := s.store.Save(&session.Session{Token: token, Email: email}); err != nil {
		formatter.PrintError("Failed to save session: %v", err)
		return err
	}

	me, err := s.api.Me()
	if err != nil {
		// Logged in either way; identity details are a nicety
		logger.Warn("Could not fetch profile after login", "error", err)
		formatter.PrintSuccess("✓ Login successful!")
		return nil
	}

	if err := s.store.Save(&session.Session{
		Token:    token,
		UserID:   me.ID,
		Username: me.Username,
		Email:    me.Email,
	}); err != nil {
		formatter.PrintError("Failed to save session: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Login successful!")
	formatter.PrintInfo("Logged in as %s", formatter.Bold.Sprint(me.Username))
	return nil
}

// Logout clears the stored session
func (s *AuthService) Logout() error {
	if s.store.Current() == nil {
		formatter.PrintWarning("Not logged in")
		return nil
	}

	confirm, err := prompter.PromptConfirm("Logout?")
	if err != nil {
		return err
	}
	if !confirm {
		return nil
	}

	if err := s.store.Clear(); err != nil {
		formatter.PrintError("Failed to clear session: %v", err)
		return err
	}

	formatter.PrintSuccess("✓ Logged out successfully")
	return nil
}

// Me displays the current user
func (s *AuthService) Me() error {
	if err := requireSession(s.store); err != nil {
		return err
	}

	me, err := s.api.Me()
	if err != nil {
		return reportError(err)
	}

	formatter.PrintKeyValue(map[string]interface{}{
		"Username":  me.Username,
		"Email":     me.Email,
		"Following": len(me.Following),
	})
	return nil
}

// UpdateUsername changes the username of the current user
func (s *AuthService) UpdateUsername(username string) error {
	if err := requireSession(s.store); err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if err := s.api.UpdateUsername(username); err != nil {
		return reportError(err)
	}

	if sess := s.store.Current(); sess != nil {
		sess.Username = username
		if err := s.store.Save(sess); err != nil {
			logger.Warn("Failed to update stored session", "error", err)
		}
	}

	formatter.PrintSuccess("✓ Username updated to %s", username)
	return nil
}

// UpdatePassword changes the password of the current user
func (s *AuthService) UpdatePassword() error {
	if err := requireSession(s.store); err != nil {
		return err
	}

	oldPassword, err := prompter.PromptPassword("Current password: ")
	if err != nil {
		return err
	}
	newPassword, err := prompter.PromptPassword("New password: ")
	if err != nil {
		return err
	}
	if newPassword == "" {
		return fmt.Errorf("new password cannot be empty")
	}

	if err := s.api.UpdatePassword(oldPassword, newPassword); err != nil {
		return reportError(err)
	}

	formatter.PrintSuccess("✓ Password updated")
	return nil
}
