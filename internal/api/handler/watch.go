package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nvales/watchdex/internal/api/middleware"
	"github.com/nvales/watchdex/internal/api/response"
	"github.com/nvales/watchdex/internal/domain"
	"github.com/nvales/watchdex/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchHandler handles catalog endpoints
type WatchHandler struct {
	watchService *service.WatchService
}

// NewWatchHandler creates a new watch handler
func NewWatchHandler(watchService *service.WatchService) *WatchHandler {
	return &WatchHandler{watchService: watchService}
}

// List returns a filtered, paginated catalog listing
func (h *WatchHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.WatchFilter{
		Brand:    q.Get("brand"),
		Movement: q.Get("movement"),
	}

	if v := q.Get("page"); v != "" {
		if page, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.Page = page
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.Limit = limit
		}
	}
	if v := q.Get("priceMin"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMin = &min
		}
	}
	if v := q.Get("priceMax"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMax = &max
		}
	}

	page, err := h.watchService.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, page)
}

// Get returns a single catalog record
func (h *WatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := watchID(w, r)
	if !ok {
		return
	}

	watch, err := h.watchService.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, map[string]any{"watch": watch})
}

// Create adds a new catalog record
func (h *WatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var watch domain.Watch
	if err := json.NewDecoder(r.Body).Decode(&watch); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(&watch); err != nil {
		response.BadRequest(w, validationMessage(err))
		return
	}

	created, err := h.watchService.Create(r.Context(), &watch)
	if err != nil {
		respondError(w, err)
		return
	}

	response.Created(w, map[string]any{"watch": created})
}

// Update applies a whitelist-guarded partial update to a catalog record
func (h *WatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := watchID(w, r)
	if !ok {
		return
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	watch, err := h.watchService.Update(r.Context(), id, payload)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, map[string]any{"watch": watch})
}

// Delete removes a catalog record
func (h *WatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := watchID(w, r)
	if !ok {
		return
	}

	watch, err := h.watchService.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, map[string]any{"watch": watch})
}

// AddReview appends the principal's review to a catalog record
func (h *WatchHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.Principal(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found")
		return
	}

	id, ok := watchID(w, r)
	if !ok {
		return
	}

	var input domain.ReviewCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := validate.Struct(input); err != nil {
		response.BadRequest(w, validationMessage(err))
		return
	}

	watch, err := h.watchService.AddReview(r.Context(), id, user.ID, input)
	if err != nil {
		respondError(w, err)
		return
	}

	response.Created(w, map[string]any{"watch": watch})
}

// watchID parses the id route parameter. A malformed id behaves like a
// missing record.
func watchID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, domain.ErrWatchNotFound.Error())
		return primitive.NilObjectID, false
	}
	return id, true
}
