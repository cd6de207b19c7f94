package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gitcards/internal/cache"
	"gitcards/internal/render"
	"gitcards/internal/service"
	"gitcards/pkg/errors"
	"gitcards/pkg/logger"

	"github.com/gorilla/mux"
)

const (
	cacheSeconds = 1800 // 30 min
	staleSeconds = 3600 // 1 hour stale-while-revalidate
)

type CardHandler struct {
	service *service.ProfileService
	cache   *cache.CardCache
	now     func() time.Time
}

func NewCardHandler(svc *service.ProfileService, cardCache *cache.CardCache) *CardHandler {
	return &CardHandler{
		service: svc,
		cache:   cardCache,
		now:     time.Now,
	}
}

func (h *CardHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/card/{username}/{type}", h.getCard).Methods("GET")
	r.HandleFunc("/profiles/{username}/stats", h.getProfileStats).Methods("GET")
	r.HandleFunc("/themes", h.getThemes).Methods("GET")
	r.HandleFunc("/healthz", h.getHealth).Methods("GET")
}

func writeSuccess(w http.ResponseWriter, data any, message ...string) {
	resp := APIResponse{
		Status: "success",
		Data:   data,
	}
	if len(message) > 0 {
		resp.Message = message[0]
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func writeSVG(w http.ResponseWriter, status int, svg string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(status)
	fmt.Fprint(w, svg)
}

// getCard godoc
// @Summary Render a profile card
// @Description Returns a standalone SVG card for embedding in READMEs and documents
// @Tags Cards
// @Produce image/svg+xml
// @Param username path string true "GitHub username"
// @Param type path string true "Card type" Enums(stats, profile-header, languages-by-repo, languages-by-commit, commits-by-hour, repo-table)
// @Param theme query string false "Theme name" Enums(default, dark, algolia, aura, aura_dark, dracula)
// @Success 200 {string} string "SVG image"
// @Failure 400 {string} string "Error SVG"
// @Failure 404 {string} string "Error SVG"
// @Router /card/{username}/{type} [get]
func (h *CardHandler) getCard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]
	cardType := vars["type"]

	themeName := render.CanonicalThemeName(r.URL.Query().Get("theme"))

	if svg, ok := h.cache.Get(username, cardType, themeName); ok {
		setCacheHeaders(w)
		writeSVG(w, http.StatusOK, string(svg))
		return
	}

	data, err := h.service.FetchProfileData(r.Context(), username)
	if err != nil {
		logger.Error("Card render for %s/%s failed: %v", username, cardType, err)
		writeSVG(w, errors.HTTPStatus(err), render.ErrorCard(errors.Message(err)))
		return
	}

	svg, ok := render.Card(cardType, data, render.GetTheme(themeName), h.now())
	if !ok {
		writeSVG(w, http.StatusBadRequest, render.ErrorCard(fmt.Sprintf("Unknown chart type: %q", cardType)))
		return
	}

	h.cache.Set(username, cardType, themeName, []byte(svg))

	logger.Info("Rendered %s card for %s (theme %s)", cardType, username, themeName)
	setCacheHeaders(w)
	writeSVG(w, http.StatusOK, svg)
}

// getProfileStats godoc
// @Summary Get aggregated profile stats
// @Description Full aggregated profile payload consumed by the interactive dashboard
// @Tags Profiles
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {object} stats.ProfileData
// @Failure 400 {object} errors.HTTPErrorResponse
// @Failure 404 {object} errors.HTTPErrorResponse
// @Failure 502 {object} errors.HTTPErrorResponse
// @Router /profiles/{username}/stats [get]
func (h *CardHandler) getProfileStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	username := vars["username"]

	data, err := h.service.FetchProfileData(r.Context(), username)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	logger.Info("Fetched profile stats for %s", username)
	writeSuccess(w, data, "Successfully fetched profile stats")
}

// getThemes godoc
// @Summary List card themes
// @Tags Cards
// @Produce json
// @Success 200 {array} string
// @Router /themes [get]
func (h *CardHandler) getThemes(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, render.ThemeNames(), "Successfully fetched themes")
}

// getHealth godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h *CardHandler) getHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

func setCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", fmt.Sprintf(
		"public, max-age=%d, s-maxage=%d, stale-while-revalidate=%d",
		cacheSeconds, cacheSeconds, staleSeconds,
	))
}
