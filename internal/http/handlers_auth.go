// Package httpx contains the gateway's HTTP surface: auth flow
// endpoints, the pass-through resource APIs, and middleware.
package httpx

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	apperrors "github.com/toolrent/admin-gateway/internal/errors"
	"github.com/toolrent/admin-gateway/internal/service"
)

// AuthHandlers provides HTTP handlers for the login lifecycle.
type AuthHandlers struct {
	Store  *service.SessionStore
	Logger *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Login initiates the provider redirect.
// GET /auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	loginURL, err := h.Store.BeginLogin(r.Context())
	if err != nil {
		h.logger().WarnContext(r.Context(), "login initiation failed", "error", err)
		WriteAppError(w, err)
		return
	}
	http.Redirect(w, r, loginURL, http.StatusFound)
}

// callbackPage is the interstitial shown after the provider redirect.
// It lingers so the user can read the outcome, then navigates home with
// the sensitive query parameters already stripped; a manual link is
// there for anyone who will not wait.
var callbackPage = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="{{.DelaySeconds}};url={{.RedirectTo}}">
<title>ToolRent Admin</title>
</head>
<body>
<p>{{.Message}}</p>
<p><a href="{{.RedirectTo}}">Continue</a></p>
</body>
</html>
`))

// Callback processes the provider redirect.
// GET /auth/callback?code=...&state=... or ?error=...&error_description=...
func (h *AuthHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	flow := service.NewCallbackFlow(h.Store, h.logger())
	outcome := flow.Run(r.Context(), service.CallbackParams{
		Code:             q.Get("code"),
		State:            q.Get("state"),
		ErrorCode:        q.Get("error"),
		ErrorDescription: q.Get("error_description"),
	})

	// Nothing to show: strip the query and go home immediately.
	if outcome.Delay == 0 {
		http.Redirect(w, r, outcome.RedirectTo, http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if outcome.State == service.CallbackFailed {
		w.WriteHeader(http.StatusUnauthorized)
	}
	err := callbackPage.Execute(w, map[string]any{
		"Message":      outcome.Message,
		"RedirectTo":   outcome.RedirectTo,
		"DelaySeconds": int(outcome.Delay.Seconds()),
	})
	if err != nil {
		h.logger().ErrorContext(r.Context(), "render callback page", "error", err)
	}
}

// legacyLoginRequest is the JSON body for the password login endpoint.
type legacyLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LegacyLogin validates a username/password pair through the backend.
// POST /auth/login.
func (h *AuthHandlers) LegacyLogin(w http.ResponseWriter, r *http.Request) {
	var req legacyLoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	sess, err := h.Store.LegacyLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		if apperrors.IsValidation(err) {
			WriteError(w, ErrorParams{
				Code:    http.StatusUnauthorized,
				ErrCode: "invalid_credentials",
				Err:     errors.New("invalid username or password"),
			})
			return
		}
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"user": sess.User,
	})
}

// Logout tears the session down.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	target := h.Store.Logout(r.Context())
	WriteJSON(w, http.StatusOK, map[string]string{"redirectTo": target})
}

// Status reports the current session and provider availability.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	info := h.Store.LoadSystemInfo(r.Context())
	resp := map[string]any{
		"authenticated": false,
		"system":        info,
	}
	if sess, ok := h.Store.Current(); ok {
		resp["authenticated"] = true
		resp["user"] = sess.User
	}
	WriteJSON(w, http.StatusOK, resp)
}

// Restore attempts to rebuild the session from the vault.
// POST /auth/restore.
func (h *AuthHandlers) Restore(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.Store.Restore(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "no_session",
			Err:     fmt.Errorf("no persisted session to restore"),
		})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"user": sess.User})
}
