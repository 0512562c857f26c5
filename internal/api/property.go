package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hocs-app/hocs/internal/metrics"
	"github.com/hocs-app/hocs/internal/opportunity"
	"github.com/hocs-app/hocs/internal/property"
	"github.com/hocs-app/hocs/internal/report"
	"github.com/hocs-app/hocs/internal/storage"
)

type lookupRequest struct {
	Address string `json:"address"`
}

type lookupResponse struct {
	SessionID          string                           `json:"sessionId"`
	Property           property.Attributes              `json:"property"`
	Opportunities      []opportunity.SavingsOpportunity `json:"opportunities"`
	TotalAnnualSavings float64                          `json:"totalAnnualSavings"`
	ExpiresAt          time.Time                        `json:"expiresAt"`
}

func registerPropertyRoutes(mux *http.ServeMux, deps Deps) {
	mux.HandleFunc("/api/property/lookup", instrument("/api/property/lookup", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, "/api/property/lookup", "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req lookupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, "/api/property/lookup", "Invalid request body", http.StatusBadRequest)
			return
		}
		req.Address = strings.TrimSpace(req.Address)
		if req.Address == "" {
			writeError(w, "/api/property/lookup", "address is required", http.StatusBadRequest)
			return
		}

		attrs := deps.Generator.Generate(req.Address)
		opps := deps.Engine.Generate(attrs)

		propJSON, err := json.Marshal(attrs)
		if err != nil {
			writeError(w, "/api/property/lookup", "internal error", http.StatusInternalServerError)
			return
		}
		oppsJSON, err := json.Marshal(opps)
		if err != nil {
			writeError(w, "/api/property/lookup", "internal error", http.StatusInternalServerError)
			return
		}

		now := time.Now()
		sess := storage.Session{
			SessionID:         uuid.New().String(),
			Address:           req.Address,
			PropertyJSON:      propJSON,
			OpportunitiesJSON: oppsJSON,
			CreatedAt:         now,
			ExpiresAt:         now.Add(deps.SessionTTL),
		}
		if err := deps.Storage.CreateSession(r.Context(), sess); err != nil {
			log.Printf("create session failed: %v", err)
			writeError(w, "/api/property/lookup", "internal error", http.StatusInternalServerError)
			return
		}

		metrics.LookupsTotal.Inc()
		writeJSON(w, lookupResponse{
			SessionID:          sess.SessionID,
			Property:           attrs,
			Opportunities:      opps,
			TotalAnnualSavings: report.TotalAnnualSavings(opps),
			ExpiresAt:          sess.ExpiresAt,
		})
	}))

	mux.HandleFunc("/api/addresses/autocomplete", instrument("/api/addresses/autocomplete", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, "/api/addresses/autocomplete", "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := r.URL.Query().Get("q")
		limit := 5
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil && v > 0 {
				limit = v
			}
		}
		suggestions := property.Autocomplete(q, limit)
		if suggestions == nil {
			suggestions = []string{}
		}
		writeJSON(w, map[string]interface{}{"suggestions": suggestions})
	}))
}
