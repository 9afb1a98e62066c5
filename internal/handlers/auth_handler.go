package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/cafedirectory/backend/internal/auth"
	"github.com/cafedirectory/backend/internal/models"
	"github.com/cafedirectory/backend/internal/services"
	"github.com/cafedirectory/backend/internal/views"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Register performs user credentials validation and creation.
	//
	// "req" parameter contains username, email and plaintext password.
	//
	// If the username is taken, services.ErrUsernameTaken will be returned;
	// if the email is taken, services.ErrEmailTaken. The new user is not
	// logged in automatically.
	Register(ctx context.Context, req *models.RegisterRequest) error
	// Method Login performs user credentials verification and returns the user.
	//
	// If the user does not exist or the password does not match,
	// services.ErrInvalidCredentials will be returned together with "nil" value.
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, error)
}

// AuthHandler handles the registration, login, and logout page routes
type AuthHandler struct {
	BaseHandler
	authService AuthService
	sessions    *auth.SessionManager
	views       *views.Renderer
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authService AuthService,
	sessions *auth.SessionManager,
	renderer *views.Renderer,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{logger: logger},
		authService: authService,
		sessions:    sessions,
		views:       renderer,
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router, requireSessionPage func(http.Handler) http.Handler) {
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.Register)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.With(requireSessionPage).Post("/logout", h.Logout)
}

// RegisterPage handles GET /register
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "register.html", popFlash(w, r))
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, r, http.StatusBadRequest, "register.html", "failed to parse form")
		return
	}

	req := &models.RegisterRequest{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if err := h.authService.Register(r.Context(), req); err != nil {
		h.logger.Warn("registration failed", zap.Error(err))
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrEmailTaken) {
			status = http.StatusConflict
		}
		h.renderForm(w, r, status, "register.html", err.Error())
		return
	}

	setFlash(w, "Registration successful. You can now log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, "login.html", popFlash(w, r))
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, r, http.StatusBadRequest, "login.html", "failed to parse form")
		return
	}

	req := &models.LoginRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	user, err := h.authService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.renderForm(w, r, http.StatusUnauthorized, "login.html", err.Error())
			return
		}
		h.logger.Error("failed to login user", zap.Error(err))
		h.renderForm(w, r, http.StatusInternalServerError, "login.html", "something went wrong, please try again")
		return
	}

	if err := h.sessions.SetCookie(w, user.ID); err != nil {
		h.logger.Error("failed to establish session", zap.Error(err))
		h.renderForm(w, r, http.StatusInternalServerError, "login.html", "something went wrong, please try again")
		return
	}

	setFlash(w, "Login successful.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	setFlash(w, "You have logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderForm renders the register or login page with an optional status message
func (h *AuthHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, name, message string) {
	if err := h.views.Render(w, status, name, views.FormData{Flash: message}); err != nil {
		h.logger.Error("failed to render page", zap.String("template", name), zap.Error(err))
	}
}
