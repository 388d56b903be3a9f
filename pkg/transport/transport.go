package transport

import (
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/json-iterator/go"
	"github.com/mingle-social/cli/pkg/apierrors"
	"github.com/mingle-social/cli/pkg/logger"
	"github.com/mingle-social/cli/pkg/session"
)

const userAgent = "Mingle-CLI/0.1.0"

// Config holds the transport settings. The backend serves user routes
// and post routes from two separate base paths.
type Config struct {
	UserBaseURL string
	PostBaseURL string
	Timeout     time.Duration
}

// Transport is the single point of truth for authentication on the
// wire. Every outgoing request is decorated with the current bearer
// token when a session exists; a 401 from any call clears the session
// and signals the login redirect, synchronously with the error path.
type Transport struct {
	user  *resty.Client
	post  *resty.Client
	store *session.Store

	onAuthExpired func()
}

// New creates a transport bound to the given session store
func New(cfg Config, store *session.Store) *Transport {
	t := &Transport{store: store}
	t.user = t.newClient(cfg.UserBaseURL, cfg.Timeout)
	t.post = t.newClient(cfg.PostBaseURL, cfg.Timeout)
	return t
}

func (t *Transport) newClient(baseURL string, timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetBaseURL(baseURL)
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", userAgent)

	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		// Requests without a session are still sent; the server is
		// authoritative about what needs auth.
		if token := t.store.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		logger.Debug("HTTP Request", "method", req.Method, "url", req.URL)
		return nil
	})

	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug("HTTP Response", "status", resp.StatusCode(), "url", resp.Request.URL)
		return nil
	})

	return c
}

// OnAuthExpired registers the navigation-to-login side effect invoked
// when a response comes back 401
func (t *Transport) OnAuthExpired(fn func()) {
	t.onAuthExpired = fn
}

// UserR returns a request against the user routes
func (t *Transport) UserR() *resty.Request {
	return t.user.R()
}

// PostR returns a request against the post routes
func (t *Transport) PostR() *resty.Request {
	return t.post.R()
}

// CheckResponse classifies the outcome of an exchange. Authentication
// failures are fully handled here: the session is cleared and the
// expiry hook fires before the error is returned. Everything else is
// surfaced to the caller with the server message when present. Nothing
// is retried.
func (t *Transport) CheckResponse(resp *resty.Response, err error) error {
	if err != nil {
		logger.Error("HTTP request failed", "error", err)
		return &apierrors.NetworkError{Cause: err}
	}

	if resp.IsSuccess() {
		return nil
	}

	status := resp.StatusCode()

	if status == 401 {
		logger.Warn("Authentication expired", "url", resp.Request.URL)
		if clearErr := t.store.Clear(); clearErr != nil {
			logger.Error("Failed to clear session", "error", clearErr)
		}
		if t.onAuthExpired != nil {
			t.onAuthExpired()
		}
		return apierrors.NewAuthError(serverMessage(resp.Body()))
	}

	if status >= 500 {
		logger.Error("Server error", "status", status, "url", resp.Request.URL)
		return &apierrors.ServerError{StatusCode: status}
	}

	valErr := parseValidationError(resp.Body(), status)
	logger.Warn("Request rejected", "status", status, "message", valErr.Message, "code", valErr.Code)
	return valErr
}

// errorBody covers the shapes the backend uses: a plain message under
// "error" or "message", or a structured error object.
type errorBody struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
}

type structuredError struct {
	Code     int                    `json:"code"`
	KeyValue map[string]interface{} `json:"keyValue"`
	Message  string                 `json:"message"`
}

// mongoDuplicateKey is the storage engine's duplicate-key code. It is
// normalized here so nothing above the transport knows about it.
const mongoDuplicateKey = 11000

func parseValidationError(body []byte, status int) *apierrors.ValidationError {
	valErr := &apierrors.ValidationError{
		Message:    "request failed",
		StatusCode: status,
	}

	var raw errorBody
	if err := json.Unmarshal(body, &raw); err != nil {
		return valErr
	}

	if raw.Message != "" {
		valErr.Message = raw.Message
	}

	if len(raw.Error) == 0 {
		return valErr
	}

	var msg string
	if err := json.Unmarshal(raw.Error, &msg); err == nil {
		if msg != "" {
			valErr.Message = msg
		}
		return valErr
	}

	var structured structuredError
	if err := json.Unmarshal(raw.Error, &structured); err == nil {
		if structured.Message != "" {
			valErr.Message = structured.Message
		}
		if structured.Code == mongoDuplicateKey {
			valErr.Code = "duplicate_key"
			for field := range structured.KeyValue {
				valErr.Field = field
				break
			}
			if valErr.Message == "request failed" {
				valErr.Message = "already exists"
			}
		}
	}

	return valErr
}

// serverMessage pulls a display message out of an error body, if any
func serverMessage(body []byte) string {
	var raw errorBody
	if err := json.Unmarshal(body, &raw); err != nil {
		return ""
	}
	if raw.Message != "" {
		return raw.Message
	}
	var msg string
	if err := json.Unmarshal(raw.Error, &msg); err == nil {
		return msg
	}
	return ""
}
