package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/cafedirectory/backend/internal/auth"
	"github.com/cafedirectory/backend/internal/models"
	"github.com/cafedirectory/backend/internal/repositories"
	"github.com/cafedirectory/backend/internal/services"
	"github.com/cafedirectory/backend/internal/views"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CafeService is the interface that wraps methods for cafe directory business logic.
type CafeService interface {
	// Method GetAll retrieves all cafes in insertion order.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	GetAll(ctx context.Context) ([]models.Cafe, error)
	// Method Create validates a cafe creation request and persists the new cafe.
	//
	// If required fields are missing, services.ErrMissingFields (wrapped with
	// the field names) will be returned together with "nil" value.
	Create(ctx context.Context, req *models.CreateCafeRequest) (*models.Cafe, error)
	// Method Delete removes a cafe on behalf of the given user.
	//
	// services.ErrForbidden is returned for non-administrators and
	// repositories.ErrNotFound for unknown cafe ids.
	Delete(ctx context.Context, userID, cafeID int) error
}

// CafeHandler handles the home page and the cafe JSON API
type CafeHandler struct {
	BaseHandler
	cafeService CafeService
	views       *views.Renderer
}

// NewCafeHandler creates a new cafe handler
func NewCafeHandler(cafeService CafeService, renderer *views.Renderer, logger *zap.Logger) *CafeHandler {
	return &CafeHandler{
		BaseHandler: BaseHandler{logger: logger},
		cafeService: cafeService,
		views:       renderer,
	}
}

// RegisterRoutes registers all cafe handler routes
func (h *CafeHandler) RegisterRoutes(r chi.Router, requireSession, requireSessionPage, optionalSession func(http.Handler) http.Handler) {
	r.With(optionalSession).Get("/", h.Home)
	r.Route("/api/cafes", func(r chi.Router) {
		r.Get("/", h.List)
		r.With(requireSession).Post("/", h.Create)
	})
	r.With(requireSessionPage).Post("/delete_cafe/{id}", h.Delete)
}

// Home handles GET /
func (h *CafeHandler) Home(w http.ResponseWriter, r *http.Request) {
	cafes, err := h.cafeService.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to load cafes", zap.Error(err))
		http.Error(w, "failed to load cafes", http.StatusInternalServerError)
		return
	}

	_, loggedIn := auth.GetUserID(r.Context())
	data := views.HomeData{
		Cafes:    cafes,
		LoggedIn: loggedIn,
		Flash:    popFlash(w, r),
	}

	if err := h.views.Render(w, http.StatusOK, "home.html", data); err != nil {
		h.logger.Error("failed to render home page", zap.Error(err))
	}
}

// List handles GET /api/cafes
// @Summary List all cafes
// @Description Get all cafes in the directory
// @Tags cafes
// @Produce json
// @Success 200 {array} models.Cafe
// @Failure 500 {object} map[string]string
// @Router /api/cafes [get]
func (h *CafeHandler) List(w http.ResponseWriter, r *http.Request) {
	cafes, err := h.cafeService.GetAll(r.Context())
	if err != nil {
		h.logger.Error("failed to get cafes", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get cafes")
		return
	}

	if cafes == nil {
		cafes = []models.Cafe{}
	}
	h.respondJSON(w, http.StatusOK, cafes)
}

// Create handles POST /api/cafes
// @Summary Add a new cafe
// @Description Add a new cafe to the directory. Requires an authenticated session.
// @Tags cafes
// @Accept json
// @Produce json
// @Param request body models.CreateCafeRequest true "Cafe to add"
// @Success 201 {object} models.Cafe
// @Failure 400 {object} map[string]string "Missing required fields"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /api/cafes [post]
func (h *CafeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCafeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cafe, err := h.cafeService.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create cafe", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to create cafe")
		return
	}

	h.respondJSON(w, http.StatusCreated, cafe)
}

// Delete handles POST /delete_cafe/{id}
func (h *CafeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	cafeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "cafe not found", http.StatusNotFound)
		return
	}

	if err := h.cafeService.Delete(r.Context(), userID, cafeID); err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			http.Error(w, "you do not have permission to delete this cafe", http.StatusForbidden)
		case errors.Is(err, repositories.ErrNotFound):
			http.Error(w, "cafe not found", http.StatusNotFound)
		default:
			h.logger.Error("failed to delete cafe", zap.Error(err), zap.Int("cafe_id", cafeID))
			http.Error(w, "failed to delete cafe", http.StatusInternalServerError)
		}
		return
	}

	setFlash(w, "Cafe deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
