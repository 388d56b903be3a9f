package service

import (
	"fmt"
	"time"

	"github.com/mingle-social/cli/pkg/api"
	"github.com/mingle-social/cli/pkg/apierrors"
	"github.com/mingle-social/cli/pkg/config"
	"github.com/mingle-social/cli/pkg/formatter"
	"github.com/mingle-social/cli/pkg/session"
	"github.com/mingle-social/cli/pkg/transport"
)

// newSessionStore builds the store over the configured credentials path
func newSessionStore() *session.Store {
	return session.NewStore(config.GetCredentialsPath())
}

// newAPIClient wires the transport to the session store and registers
// the login-redirect side effect for expired sessions
func newAPIClient(store *session.Store) *api.Client {
	t := transport.New(transport.Config{
		UserBaseURL: config.GetString("api.user_base_url"),
		PostBaseURL: config.GetString("api.post_base_url"),
		Timeout:     time.Duration(config.GetInt("api.timeout")) * time.Second,
	}, store)

	t.OnAuthExpired(func() {
		formatter.PrintError("Session expired, please log in again")
		formatter.PrintInfo("Run 'mingle auth login' to start a new session")
	})

	return api.NewClient(t)
}

// requireSession fails fast when no session exists, pointing at login.
// The server stays authoritative for requests that do go out.
func requireSession(store *session.Store) error {
	if store.Current() == nil {
		formatter.PrintError("Not logged in. Please run 'mingle auth login'")
		return fmt.Errorf("not authenticated")
	}
	return nil
}

// reportError renders a failure for the user. Auth failures were
// already announced by the transport's expiry hook, so they pass
// through silently.
func reportError(err error) error {
	if err == nil {
		return nil
	}
	if !apierrors.IsAuth(err) {
		formatter.PrintError("%s", apierrors.FormatError(err))
	}
	return err
}
