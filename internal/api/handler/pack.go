package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/quizhost/quizhost/internal/api/apierr"
	"github.com/quizhost/quizhost/internal/api/response"
	"github.com/quizhost/quizhost/internal/model"
	"github.com/quizhost/quizhost/internal/services/catalog"
)

// PackHandler handles question pack endpoints
type PackHandler struct {
	catalog *catalog.Service
	logger  *slog.Logger
}

// NewPackHandler creates a new pack handler
func NewPackHandler(catalogService *catalog.Service, logger *slog.Logger) *PackHandler {
	return &PackHandler{
		catalog: catalogService,
		logger:  logger,
	}
}

// CreatePack handles PUT /api/v1/packs/{name}
func (h *PackHandler) CreatePack(w http.ResponseWriter, r *http.Request) {
	var categories map[string][]model.QuestionConfig
	if err := json.NewDecoder(r.Body).Decode(&categories); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	pack := &model.QuestionPack{
		Name:       mux.Vars(r)["name"],
		Categories: categories,
	}

	if err := h.catalog.SavePack(r.Context(), pack); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PackFromModel(pack))
}

// GetPack handles GET /api/v1/packs/{name}
func (h *PackHandler) GetPack(w http.ResponseWriter, r *http.Request) {
	pack, err := h.catalog.GetPack(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PackFromModel(pack))
}

// ListPacks handles GET /api/v1/packs
func (h *PackHandler) ListPacks(w http.ResponseWriter, r *http.Request) {
	names, err := h.catalog.ListPacks(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, map[string][]string{"packs": names})
}

// DeletePack handles DELETE /api/v1/packs/{name}
func (h *PackHandler) DeletePack(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if err := h.catalog.DeletePack(r.Context(), name); err != nil {
		apierr.WriteError(w, err)
		return
	}

	h.logger.Info("pack deleted", slog.String("pack", name))
	response.NoContent(w)
}
