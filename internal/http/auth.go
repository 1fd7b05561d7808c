package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fittrackhq/fittrack/internal/domain"
	"github.com/fittrackhq/fittrack/internal/service"
	"github.com/fittrackhq/fittrack/internal/session"
	"github.com/fittrackhq/fittrack/pkg/fitsdk"
	"github.com/fittrackhq/fittrack/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
	Cookies     CookieConfig
}

func toAuthResponse(s session.Session) fitsdk.AuthResponse {
	return fitsdk.AuthResponse{
		UserID:    s.Identity.UserID,
		Username:  s.Identity.Username,
		Email:     s.Identity.Email,
		FirstName: s.Identity.FirstName,
		LastName:  s.Identity.LastName,
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// HandleRegister creates an account and signs it in.
//
//	@Summary		Register a new account
//	@Description	Creates a user with the given credentials and profile names, then signs the new user in.
//	@Description	All validation failures are reported together in the errors array.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fitsdk.RegisterRequest	true	"Registration form"
//	@Success		201		{object}	fitsdk.AuthResponse		"Account created; session cookie set"
//	@Failure		400		{object}	fitsdk.ErrorResponse	"Validation failures"
//	@Failure		409		{object}	fitsdk.ErrorResponse	"Username or email already in use"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req fitsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
	})
	if err != nil {
		// Echo the non-password fields so the client can refill the form.
		writeServiceErrorForm(w, r, err, "Not found", map[string]string{
			"username":   req.Username,
			"email":      req.Email,
			"first_name": req.FirstName,
			"last_name":  req.LastName,
		})
		return
	}

	h.Cookies.SetSessionCookie(w, sess)
	httpx.WriteJSON(w, http.StatusCreated, toAuthResponse(sess))
}

// HandleLogin authenticates a username/password pair.
//
//	@Summary		Log in
//	@Description	Authenticates with username and password, minting a session delivered as an HttpOnly cookie.
//	@Description	Unknown usernames and wrong passwords produce the same error.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fitsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	fitsdk.AuthResponse		"Signed in; session cookie set"
//	@Failure		400		{object}	fitsdk.ErrorResponse	"Missing username or password"
//	@Failure		401		{object}	fitsdk.ErrorResponse	"Invalid credentials"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req fitsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Please enter both username and password")
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "Not found")
		return
	}

	h.Cookies.SetSessionCookie(w, sess)
	httpx.WriteJSON(w, http.StatusOK, toAuthResponse(sess))
}

// HandleLogout destroys the current session.
//
//	@Summary		Log out
//	@Description	Destroys the server-side session and clears the cookie. Safe to call without a session.
//	@Tags			Auth
//	@Produce		json
//	@Success		204	"Session destroyed"
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		if err := h.AuthService.Logout(r.Context(), cookie.Value); err != nil {
			writeServiceError(w, r, err, "Not found")
			return
		}
	}

	h.Cookies.ClearSessionCookie(w)
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetProfile returns the signed-in user's profile.
//
//	@Summary		Get profile
//	@Tags			Auth
//	@Security		SessionCookie
//	@Produce		json
//	@Success		200	{object}	fitsdk.Profile
//	@Failure		401	{object}	fitsdk.ErrorResponse	"Not signed in"
//	@Router			/v1/auth/profile [get].
func (h *AuthHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.AuthService.Profile(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err, "Profile not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfile(profile))
}

// HandleUpdateProfile replaces the signed-in user's profile.
//
//	@Summary		Update profile
//	@Tags			Auth
//	@Security		SessionCookie
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fitsdk.Profile	true	"Profile fields"
//	@Success		200		{object}	fitsdk.Profile
//	@Failure		401		{object}	fitsdk.ErrorResponse	"Not signed in"
//	@Router			/v1/auth/profile [put].
func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req fitsdk.Profile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := userIDFromContext(r.Context())
	p := domain.Profile{
		UserID:        userID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   req.DateOfBirth,
		Gender:        req.Gender,
		HeightCm:      req.HeightCm,
		WeightKg:      req.WeightKg,
		ActivityLevel: req.ActivityLevel,
	}
	if err := h.AuthService.UpdateProfile(r.Context(), p); err != nil {
		writeServiceError(w, r, err, "Profile not found")
		return
	}

	updated, err := h.AuthService.Profile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "Profile not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfile(updated))
}
