package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spektr-org/nyaya/engine"
	"github.com/spektr-org/nyaya/lookup"
	"github.com/spektr-org/nyaya/predict"
	"github.com/spektr-org/nyaya/schema"
)

// Limits applied by the HTTP shell.
const (
	DistrictLimit    = 10
	WomenStatesLimit = 10
	SearchLimit      = 5
)

// =============================================================================
// Response Types
// =============================================================================

// HealthResponse reports row and entry counts for every loaded input.
type HealthResponse struct {
	Status      string `json:"status"`
	IPCRows     int    `json:"ipc_rows"`
	WomenRows   int    `json:"women_rows"`
	Judgments   int    `json:"judgments"`
	IPCSections int    `json:"ipc_sections"`
	Helplines   int    `json:"helplines"`
}

// FilterOptions lists the values a client can filter by.
type FilterOptions struct {
	AvailableYears  []int    `json:"available_years"`
	AvailableStates []string `json:"available_states"`
}

// IPCDashboardResponse is the IPC state leaderboard plus category totals.
type IPCDashboardResponse struct {
	FilterOptions
	StateWise   []map[string]any `json:"state_wise"`
	CrimeTotals map[string]int64 `json:"crime_totals"`
}

// WomenDashboardResponse is the women's crime state leaderboard.
type WomenDashboardResponse struct {
	FilterOptions
	StateWise []map[string]any `json:"state_wise"`
}

// ExplainRequest is the body of POST /api/ipc/assistant/explain.
type ExplainRequest struct {
	Section string `json:"section"`
}

// PredictRequest is the body of POST /api/case/predict. Absent fields take
// the scorer defaults; present but empty fields are scored as given.
type PredictRequest struct {
	EvidenceStrength *string `json:"evidence_strength"`
	PastRecord       *string `json:"past_record"`
}

// =============================================================================
// Error Mapping
// =============================================================================

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrUnknownColumn), errors.Is(err, engine.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, lookup.ErrNotFound):
		slog.Debug("lookup miss", "error", err, "request_id", GetRequestID(c))
		c.JSON(http.StatusNotFound, gin.H{"error": lookup.NotFoundMessage})
	default:
		slog.Error("request failed", "error", err, "request_id", GetRequestID(c))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseYear reads an optional integer year parameter.
func parseYear(c *gin.Context) (*int, error) {
	raw := strings.TrimSpace(c.Query("year"))
	if raw == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: year must be an integer, got %q", engine.ErrInvalidArgument, raw)
	}
	return &year, nil
}

// filterOptions builds the year and state filters for one dataset contract.
func filterOptions(contract schema.Contract, year *int, state string) []engine.Option {
	var opts []engine.Option
	if year != nil {
		opts = append(opts, engine.WithYear(contract.YearColumn, *year))
	}
	if state != "" {
		opts = append(opts, engine.WithRegion(contract.RegionColumn, state))
	}
	return opts
}

// =============================================================================
// Handlers
// =============================================================================

// HandleRoot confirms the service is up.
func HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AI Lawyer Backend is running",
		"status":  "OK",
	})
}

// HandleHealth handles GET /api/health.
func HandleHealth(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:      "Backend running",
			IPCRows:     store.IPC.Len(),
			WomenRows:   store.Women.Len(),
			Judgments:   store.Resources.Judgments,
			IPCSections: len(store.Resources.Sections),
			Helplines:   store.Resources.HelplineCount,
		})
	}
}

// HandleCrimeSummary handles GET /api/crime/summary: IPC totals per year.
func HandleCrimeSummary(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := engine.AggregateByYear(store.IPC, schema.IPCCrime.ValueColumn, schema.IPCCrime.YearColumn)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result.Records())
	}
}

// HandleIPCDashboard handles GET /api/ipc/dashboard?year=&state=.
func HandleIPCDashboard(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		year, err := parseYear(c)
		if err != nil {
			respondError(c, err)
			return
		}
		opts := filterOptions(schema.IPCCrime, year, c.Query("state"))

		stateWise, err := engine.AggregateByRegion(store.IPC,
			schema.IPCCrime.ValueColumn, schema.IPCCrime.RegionColumn, opts...)
		if err != nil {
			respondError(c, err)
			return
		}
		totals, err := engine.ColumnTotals(store.IPC, schema.IPCCrime.Excluded, opts...)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, IPCDashboardResponse{
			FilterOptions: FilterOptions{AvailableYears: store.ipcYears, AvailableStates: store.ipcStates},
			StateWise:     stateWise.Records(),
			CrimeTotals:   totals.Ints(),
		})
	}
}

// HandleIPCDistricts handles GET /api/ipc/districts?year=&state=. Both
// parameters are required; without them the result is empty.
func HandleIPCDistricts(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := c.Query("state")
		if c.Query("year") == "" || state == "" {
			c.JSON(http.StatusOK, []map[string]any{})
			return
		}
		year, err := parseYear(c)
		if err != nil {
			respondError(c, err)
			return
		}

		result, err := engine.AggregateByRegion(store.IPC,
			schema.IPCCrime.ValueColumn, schema.IPCCrime.DistrictColumn,
			filterOptions(schema.IPCCrime, year, state)...)
		if err != nil {
			respondError(c, err)
			return
		}
		top, err := engine.TopN(result, DistrictLimit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, top.Records())
	}
}

// HandleIPCRecords handles GET /api/ipc/records.
func HandleIPCRecords(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, FilterOptions{AvailableYears: store.ipcYears, AvailableStates: store.ipcStates})
	}
}

// HandleSectionSearch handles GET /api/ipc/assistant/search?q=.
func HandleSectionSearch(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, lookup.Search(store.Resources.Sections, c.Query("q"), SearchLimit))
	}
}

// HandleSectionExplain handles POST /api/ipc/assistant/explain.
func HandleSectionExplain(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExplainRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		sec, err := lookup.FindBySectionID(store.Resources.Sections, strings.TrimSpace(req.Section))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, lookup.Explain(sec))
	}
}

// HandleWomenDashboard handles GET /api/women/dashboard?year=&state=.
func HandleWomenDashboard(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		year, err := parseYear(c)
		if err != nil {
			respondError(c, err)
			return
		}

		result, err := engine.AggregateByRegion(store.Women,
			schema.WomenCrime.ValueColumn, schema.WomenCrime.RegionColumn,
			filterOptions(schema.WomenCrime, year, c.Query("state"))...)
		if err != nil {
			respondError(c, err)
			return
		}
		top, err := engine.TopN(result, WomenStatesLimit)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, WomenDashboardResponse{
			FilterOptions: FilterOptions{AvailableYears: store.womenYears, AvailableStates: store.womenStates},
			StateWise:     top.Records(),
		})
	}
}

// HandleLegalAwareness handles GET /api/legal-awareness.
func HandleLegalAwareness(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		serveRaw(c, store.Resources.Awareness, "{}")
	}
}

// HandleLegalFAQs handles GET /api/legal-faqs.
func HandleLegalFAQs(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		serveRaw(c, store.Resources.FAQs, "[]")
	}
}

// HandleHelplines handles GET /api/helplines.
func HandleHelplines(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		serveRaw(c, store.Resources.Helplines, "[]")
	}
}

// HandleSupremeCourtQuery handles POST /api/sc/query with a fixed answer.
func HandleSupremeCourtQuery(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"answer": "This Supreme Court explorer uses simulated educational data.",
		"note":   "No real judgments are used. This is for learning purposes.",
	})
}

// HandleCasePredict handles POST /api/case/predict.
func HandleCasePredict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	evidence, past := predict.DefaultEvidence, predict.DefaultPastRecord
	if req.EvidenceStrength != nil {
		evidence = *req.EvidenceStrength
	}
	if req.PastRecord != nil {
		past = *req.PastRecord
	}
	c.JSON(http.StatusOK, predict.Predict(evidence, past))
}

// serveRaw writes a resource file's JSON unchanged, or fallback when the
// resource was never loaded.
func serveRaw(c *gin.Context, raw json.RawMessage, fallback string) {
	if len(raw) == 0 {
		raw = json.RawMessage(fallback)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}
