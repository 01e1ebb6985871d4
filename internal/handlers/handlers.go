// Package handlers exposes the consensus engine over HTTP. Every request
// runs an independent pipeline pass; handlers only reshape its Result.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pickline/consensus/internal/canon"
	"github.com/pickline/consensus/internal/pipeline"
	"github.com/pickline/consensus/internal/ws"
	"github.com/pickline/consensus/pkg/contracts"
	"github.com/pickline/consensus/pkg/models"
)

// Runner abstracts the pipeline for handler tests
type Runner interface {
	Run(ctx context.Context) pipeline.Result
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	pipeline Runner
	cfg      contracts.EngineConfig
	hub      *ws.Hub
}

// NewHandler creates a new handler with dependencies. hub may be nil when
// live updates are disabled.
func NewHandler(p Runner, cfg contracts.EngineConfig, hub *ws.Hub) *Handler {
	return &Handler{
		pipeline: p,
		cfg:      cfg,
		hub:      hub,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "consensus-api",
	})
}

// GetConsensus returns paginated consensus groups with filtering.
// Query params: sport (exact or "ALL"), min_cappers, limit, offset
func (h *Handler) GetConsensus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	sportParam := r.URL.Query().Get("sport")
	minCappers := parseIntParam(r, "min_cappers", h.cfg.MinCappers)
	limit := parseIntParam(r, "limit", h.cfg.DefaultLimit)
	offset := parseIntParam(r, "offset", 0)

	if err := validatePaging(limit, offset); err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if minCappers < 0 {
		respondError(w, http.StatusBadRequest, "min_cappers must be >= 0", nil)
		return
	}
	if limit > h.cfg.MaxLimit {
		limit = h.cfg.MaxLimit
	}

	result := h.pipeline.Run(ctx)

	sport, matchAll := resolveSportFilter(sportParam)

	groups := make([]models.ConsensusGroup, 0, len(result.Groups))
	for _, g := range result.Groups {
		if g.CapperCount < minCappers {
			continue
		}
		if !matchAll && g.Sport != sport {
			continue
		}
		groups = append(groups, g)
	}

	total := len(groups)
	page := paginate(groups, limit, offset)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         result.Success,
		"message":         result.Message,
		"total":           total,
		"groups":          page,
		"limit":           limit,
		"offset":          offset,
		"sports":          distinctSports(result.Groups),
		"cappers":         distinctCappers(result.Groups),
		"degraded_sports": result.Degraded,
		"failed_sources":  result.FailedSources,
	})
}

// GetTopConsensus returns the bounded, ranked list of highest-consensus groups
func (h *Handler) GetTopConsensus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result := h.pipeline.Run(ctx)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": result.Success,
		"message": result.Message,
		"top":     result.Formatted.TopOverall,
		"count":   len(result.Formatted.TopOverall),
	})
}

// GetConsensusBySport returns the filtered consensus partitioned per sport
func (h *Handler) GetConsensusBySport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result := h.pipeline.Run(ctx)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  result.Success,
		"message":  result.Message,
		"by_sport": result.Formatted.BySport,
	})
}

// GetFadeThePublic returns contrarian-signal candidates
func (h *Handler) GetFadeThePublic(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result := h.pipeline.Run(ctx)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": result.Success,
		"message": result.Message,
		"fade":    result.Formatted.FadeThePublic,
		"count":   len(result.Formatted.FadeThePublic),
	})
}

// GetDailyBets returns the enriched daily summary view
func (h *Handler) GetDailyBets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result := h.pipeline.Run(ctx)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":    result.Success,
		"message":    result.Message,
		"daily_bets": result.DailyBets,
	})
}

// GetPicks returns schedule-filtered normalized picks with filtering.
// Query params: sport, capper, limit, offset
func (h *Handler) GetPicks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	sportParam := r.URL.Query().Get("sport")
	capperParam := strings.TrimSpace(r.URL.Query().Get("capper"))
	limit := parseIntParam(r, "limit", h.cfg.DefaultLimit)
	offset := parseIntParam(r, "offset", 0)

	if err := validatePaging(limit, offset); err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if limit > h.cfg.MaxLimit {
		limit = h.cfg.MaxLimit
	}

	result := h.pipeline.Run(ctx)

	sport, matchAll := resolveSportFilter(sportParam)

	picks := make([]models.NormalizedPick, 0, len(result.TodaysPicks))
	for _, p := range result.TodaysPicks {
		if !matchAll && p.Sport != sport {
			continue
		}
		if capperParam != "" && !strings.EqualFold(p.Capper, capperParam) {
			continue
		}
		picks = append(picks, p)
	}

	total := len(picks)
	page := paginate(picks, limit, offset)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":     result.Success,
		"message":     result.Message,
		"total":       total,
		"picks":       page,
		"limit":       limit,
		"offset":      offset,
		"rejected":    len(result.Rejected),
		"diagnostics": result.Diagnostics,
	})
}

// GetRejected returns picks that failed the schedule filter with reasons,
// for canonicalization-gap triage
func (h *Handler) GetRejected(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result := h.pipeline.Run(ctx)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  result.Success,
		"message":  result.Message,
		"rejected": result.Rejected,
		"count":    len(result.Rejected),
	})
}

// LiveConsensus upgrades to a WebSocket subscription for consensus updates
func (h *Handler) LiveConsensus(w http.ResponseWriter, r *http.Request) {
	if h.hub == nil {
		respondError(w, http.StatusServiceUnavailable, "live updates disabled", nil)
		return
	}
	ws.Serve(h.hub, w, r)
}

// Helper functions

// resolveSportFilter maps the sport query param to a filter. Empty or "ALL"
// matches everything; an unrecognized label matches nothing (graceful
// degradation: empty result, not an error).
func resolveSportFilter(param string) (models.Sport, bool) {
	param = strings.TrimSpace(param)
	if param == "" || strings.EqualFold(param, "ALL") {
		return "", true
	}
	return canon.Sport(param), false
}

// validatePaging rejects programming-contract violations at the boundary
func validatePaging(limit, offset int) error {
	if limit < 0 {
		return fmt.Errorf("limit must be >= 0")
	}
	if offset < 0 {
		return fmt.Errorf("offset must be >= 0")
	}
	return nil
}

// paginate returns the contiguous [offset, offset+limit) slice of items
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) || limit == 0 {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func distinctSports(groups []models.ConsensusGroup) []models.Sport {
	seen := map[models.Sport]bool{}
	for _, g := range groups {
		seen[g.Sport] = true
	}
	sports := make([]models.Sport, 0, len(seen))
	for sport := range seen {
		sports = append(sports, sport)
	}
	sort.Slice(sports, func(i, j int) bool { return sports[i] < sports[j] })
	return sports
}

func distinctCappers(groups []models.ConsensusGroup) []string {
	seen := map[string]string{}
	for _, g := range groups {
		for _, capper := range g.Cappers {
			seen[strings.ToLower(capper)] = capper
		}
	}
	cappers := make([]string, 0, len(seen))
	for _, capper := range seen {
		cappers = append(cappers, capper)
	}
	sort.Strings(cappers)
	return cappers
}

func parseIntParam(r *http.Request, param string, defaultValue int) int {
	valueStr := r.URL.Query().Get(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("error encoding response: %v\n", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errResp := models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}

	if err != nil {
		fmt.Printf("error: %s - %v\n", message, err)
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		fmt.Printf("error encoding error response: %v\n", err)
	}
}
