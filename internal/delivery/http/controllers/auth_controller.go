package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"booknest/internal/delivery/http/helpers"
	"booknest/internal/domain"
	"booknest/internal/session"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

type AuthController struct {
	Logger *slog.Logger
	Auth   domain.AuthService
	Store  *session.Store
}

func NewAuthController(logger *slog.Logger, auth domain.AuthService, store *session.Store) *AuthController {
	return &AuthController{Logger: logger, Auth: auth, Store: store}
}

// RegisterRequest is the request body for POST /auth/register. Registration
// always creates a PARTICIPANT; admins are provisioned out of band.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Validate implements Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, "firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, "lastName is required")
	}
	if r.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(r.Email) {
		errs = append(errs, "email format is invalid")
	}
	if len(r.Password) < 6 {
		errs = append(errs, "password must be at least 6 characters")
	}
	return errs
}

// SessionResponse is the data payload returned after register and login.
type SessionResponse struct {
	User     *domain.User `json:"user"`
	Redirect string       `json:"redirect,omitempty"`
}

// SessionSuccessResponse is the success envelope for register and login.
type SessionSuccessResponse struct {
	Data  SessionResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Register godoc
// @Summary Register a new participant account
// @Description Registers against the backend, opens a session, and returns the user.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} controllers.SessionSuccessResponse "data contains the user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already in use)"
// @Router /auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Auth.Register(r.Context(), domain.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      domain.RoleParticipant,
	})
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	c.Store.Save(w, &session.Session{Token: result.AccessToken, User: result.User})
	helpers.WriteJSONSuccess(w, http.StatusCreated, SessionResponse{User: result.User})
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (r LoginRequest) Validate() []string {
	var errs []string
	if r.Email == "" {
		errs = append(errs, "email is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// Login godoc
// @Summary Log in
// @Description Authenticates against the backend, opens a session, and returns the user. The redirect field echoes a safe ?redirect= target for the login screen to navigate to.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Param redirect query string false "Path to return to after login"
// @Success 200 {object} controllers.SessionSuccessResponse "data contains the user and redirect target"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized (bad credentials)"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Auth.Login(r.Context(), domain.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	c.Store.Save(w, &session.Session{Token: result.AccessToken, User: result.User})
	helpers.WriteJSONSuccess(w, http.StatusOK, SessionResponse{
		User:     result.User,
		Redirect: safeRedirect(r.URL.Query().Get("redirect")),
	})
}

// safeRedirect only accepts local paths, so the login flow cannot be used as
// an open redirect.
func safeRedirect(target string) string {
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return target
	}
	return ""
}

// LogoutResponse is the data payload for POST /auth/logout.
type LogoutResponse struct {
	Status string `json:"status"`
}

// Logout godoc
// @Summary Log out
// @Description Tears down the session. The backend token is stateless; clearing the cookie ends the session.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains status"
// @Router /auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.Store.Clear(w)
	helpers.WriteJSONSuccess(w, http.StatusOK, LogoutResponse{Status: "logged out"})
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Description Validates the session token against the backend profile endpoint and refreshes the cached user.
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the user"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/profile [get]
func (c *AuthController) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := c.Auth.GetProfile(r.Context())
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	c.refreshSession(w, r, user)
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// UpdateProfileRequest is the request body for PATCH /auth/profile.
// All fields optional; omitted fields are unchanged.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

// Validate implements Validator.
func (r UpdateProfileRequest) Validate() []string {
	var errs []string
	if r.Email != nil && !emailRegex.MatchString(*r.Email) {
		errs = append(errs, "email format is invalid")
	}
	if r.FirstName != nil && strings.TrimSpace(*r.FirstName) == "" {
		errs = append(errs, "firstName must not be empty")
	}
	if r.LastName != nil && strings.TrimSpace(*r.LastName) == "" {
		errs = append(errs, "lastName must not be empty")
	}
	return errs
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags auth
// @Accept json
// @Produce json
// @Param body body UpdateProfileRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /auth/profile [patch]
func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Auth.UpdateProfile(r.Context(), domain.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		helpers.HandleBackendError(w, r, c.Logger, c.Store, err)
		return
	}
	c.refreshSession(w, r, user)
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// refreshSession rewrites the session cookie with a fresh copy of the user
// while keeping the current token.
func (c *AuthController) refreshSession(w http.ResponseWriter, r *http.Request, user *domain.User) {
	if sess, ok := session.FromContext(r.Context()); ok {
		c.Store.Save(w, &session.Session{Token: sess.Token, User: user})
	}
}
