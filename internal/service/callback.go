package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	apperrors "github.com/toolrent/admin-gateway/internal/errors"
)

// RedirectDelay is how long the callback result page lingers before
// navigating back to the application root. The user may follow the
// manual link immediately instead of waiting.
const RedirectDelay = 3 * time.Second

// CallbackState is the per-navigation state of the callback flow.
type CallbackState int

const (
	CallbackIdle CallbackState = iota
	CallbackProcessing
	CallbackSuccess
	CallbackFailed
)

// CallbackParams are the query parameters the provider redirect carries.
type CallbackParams struct {
	Code             string
	State            string
	ErrorCode        string
	ErrorDescription string
}

// CallbackOutcome tells the HTTP layer what to render and where to send
// the user next.
type CallbackOutcome struct {
	State      CallbackState
	Message    string
	RedirectTo string
	// Delay is zero for silent redirects and RedirectDelay otherwise.
	Delay time.Duration
}

// CallbackFlow drives one callback navigation through the state machine
//
//	Idle -> Processing -> {Success, Failed}
//
// Terminal states are sticky: re-running a finished flow returns the
// recorded outcome without touching the store again. The exchange
// idempotency itself is enforced one level down by the store's guard;
// the flow adds the error short-circuit and the redirect scheduling.
type CallbackFlow struct {
	store  *SessionStore
	logger *slog.Logger

	state   CallbackState
	outcome CallbackOutcome
}

// NewCallbackFlow constructs a flow in the Idle state. One flow
// instance corresponds to one callback navigation.
func NewCallbackFlow(store *SessionStore, logger *slog.Logger) *CallbackFlow {
	if logger == nil {
		logger = slog.Default()
	}
	return &CallbackFlow{store: store, logger: logger}
}

// State returns the flow's current state.
func (f *CallbackFlow) State() CallbackState { return f.state }

// Run processes the callback parameters. A provider-reported error
// short-circuits straight to Failed with no backend call; absent both
// code and error, the flow resolves to a silent redirect with no
// session change.
func (f *CallbackFlow) Run(ctx context.Context, params CallbackParams) CallbackOutcome {
	if f.state == CallbackSuccess || f.state == CallbackFailed {
		return f.outcome
	}

	if params.ErrorCode != "" {
		msg := "Login failed: " + params.ErrorCode
		if params.ErrorDescription != "" {
			msg = fmt.Sprintf("Login failed: %s (%s)", params.ErrorCode, params.ErrorDescription)
		}
		return f.fail(apperrors.ErrCodeExchangeFailed, msg)
	}

	if params.Code == "" {
		// Nothing to process; send the user home without touching the session.
		f.outcome = CallbackOutcome{State: CallbackIdle, RedirectTo: "/"}
		return f.outcome
	}

	f.state = CallbackProcessing
	result, err := f.store.CompleteLogin(ctx, CompleteLoginInput{Code: params.Code, State: params.State})
	if err != nil {
		f.logger.WarnContext(ctx, "login completion failed", "error", err)
		return f.fail(apperrors.GetCode(err), userMessage(err))
	}

	if result.StateMismatch {
		f.logger.WarnContext(ctx, "session established despite state mismatch",
			"username", result.Session.User.Username)
	}

	f.state = CallbackSuccess
	f.outcome = CallbackOutcome{
		State:      CallbackSuccess,
		Message:    "Welcome, " + result.Session.User.Username,
		RedirectTo: "/",
		Delay:      RedirectDelay,
	}
	return f.outcome
}

func (f *CallbackFlow) fail(code apperrors.ErrorCode, message string) CallbackOutcome {
	f.state = CallbackFailed
	target := "/"
	if code != "" {
		target = "/?" + url.Values{"login_error": []string{string(code)}}.Encode()
	}
	f.outcome = CallbackOutcome{
		State:      CallbackFailed,
		Message:    message,
		RedirectTo: target,
		Delay:      RedirectDelay,
	}
	return f.outcome
}

// userMessage translates store errors into text fit for the result page.
func userMessage(err error) string {
	switch {
	case apperrors.IsAlreadyProcessed(err):
		return "This login has already been processed."
	case apperrors.IsExchangeFailed(err):
		return "The authorization code was invalid, expired, or already used. Please sign in again."
	case apperrors.IsMalformedResponse(err):
		return "The server returned an unexpected response. Please sign in again."
	case apperrors.IsNetwork(err):
		return "Could not reach the server. Please check your connection and sign in again."
	default:
		return "Login failed. Please sign in again."
	}
}
