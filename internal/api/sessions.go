package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/hocs-app/hocs/internal/metrics"
	"github.com/hocs-app/hocs/internal/notification"
	"github.com/hocs-app/hocs/internal/opportunity"
	"github.com/hocs-app/hocs/internal/property"
	"github.com/hocs-app/hocs/internal/report"
	"github.com/hocs-app/hocs/internal/storage"
)

type sessionResponse struct {
	SessionID     string                           `json:"sessionId"`
	Address       string                           `json:"address"`
	Property      property.Attributes              `json:"property"`
	Opportunities []opportunity.SavingsOpportunity `json:"opportunities"`
	CreatedAt     time.Time                        `json:"createdAt"`
	ExpiresAt     time.Time                        `json:"expiresAt"`
}

func registerSessionRoutes(mux *http.ServeMux, deps Deps) {
	mux.HandleFunc("/api/sessions/", instrument("/api/sessions", func(w http.ResponseWriter, r *http.Request) {
		// Expected paths: /api/sessions/{id}, /api/sessions/{id}/pdf,
		// /api/sessions/{id}/email
		path := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
		parts := strings.Split(path, "/")
		if len(parts) == 0 || parts[0] == "" {
			writeError(w, "/api/sessions", "session id is required", http.StatusBadRequest)
			return
		}
		id := parts[0]

		if len(parts) == 1 {
			handleGetSession(w, r, deps, id)
			return
		}
		if len(parts) == 2 {
			switch parts[1] {
			case "pdf":
				handleSessionPDF(w, r, deps, id)
				return
			case "email":
				handleSessionEmail(w, r, deps, id)
				return
			}
		}
		http.NotFound(w, r)
	}))
}

// loadSession fetches and decodes a session; a nil return means the response
// has already been written.
func loadSession(w http.ResponseWriter, r *http.Request, deps Deps, id string) (*sessionResponse, *storage.Session) {
	sess, err := deps.Storage.GetSession(r.Context(), id)
	if err != nil {
		log.Printf("get session %s failed: %v", id, err)
		writeError(w, "/api/sessions", "internal error", http.StatusInternalServerError)
		return nil, nil
	}
	if sess == nil {
		writeError(w, "/api/sessions", "session not found", http.StatusNotFound)
		return nil, nil
	}

	var attrs property.Attributes
	if err := json.Unmarshal(sess.PropertyJSON, &attrs); err != nil {
		log.Printf("decode session %s property: %v", id, err)
		writeError(w, "/api/sessions", "internal error", http.StatusInternalServerError)
		return nil, nil
	}
	var opps []opportunity.SavingsOpportunity
	if err := json.Unmarshal(sess.OpportunitiesJSON, &opps); err != nil {
		log.Printf("decode session %s opportunities: %v", id, err)
		writeError(w, "/api/sessions", "internal error", http.StatusInternalServerError)
		return nil, nil
	}

	return &sessionResponse{
		SessionID:     sess.SessionID,
		Address:       sess.Address,
		Property:      attrs,
		Opportunities: opps,
		CreatedAt:     sess.CreatedAt,
		ExpiresAt:     sess.ExpiresAt,
	}, sess
}

func handleGetSession(w http.ResponseWriter, r *http.Request, deps Deps, id string) {
	if r.Method != http.MethodGet {
		writeError(w, "/api/sessions", "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	resp, _ := loadSession(w, r, deps, id)
	if resp == nil {
		return
	}
	writeJSON(w, resp)
}

func handleSessionPDF(w http.ResponseWriter, r *http.Request, deps Deps, id string) {
	if r.Method != http.MethodGet {
		writeError(w, "/api/sessions", "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	resp, _ := loadSession(w, r, deps, id)
	if resp == nil {
		return
	}

	pdfBytes, err := report.RenderPDF(report.Input{
		Property:      resp.Property,
		Opportunities: resp.Opportunities,
		GeneratedAt:   time.Now(),
	})
	if err != nil {
		log.Printf("render pdf for session %s failed: %v", id, err)
		writeError(w, "/api/sessions", "internal error", http.StatusInternalServerError)
		return
	}

	metrics.ReportsGeneratedTotal.WithLabelValues("pdf").Inc()
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", report.EmailAttachmentName))
	_, _ = w.Write(pdfBytes)
}

type emailRequest struct {
	Email string `json:"email"`
	OptIn bool   `json:"opt_in"`
}

func handleSessionEmail(w http.ResponseWriter, r *http.Request, deps Deps, id string) {
	if r.Method != http.MethodPost {
		writeError(w, "/api/sessions", "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "/api/sessions", "Invalid request body", http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeError(w, "/api/sessions", "valid email is required", http.StatusBadRequest)
		return
	}

	resp, sess := loadSession(w, r, deps, id)
	if resp == nil {
		return
	}

	now := time.Now()
	pdfBytes, err := report.RenderPDF(report.Input{
		Property:      resp.Property,
		Opportunities: resp.Opportunities,
		GeneratedAt:   now,
	})
	if err != nil {
		log.Printf("render pdf for session %s failed: %v", id, err)
		writeError(w, "/api/sessions", "internal error", http.StatusInternalServerError)
		return
	}

	body, err := report.EmailBody(sess.SessionID, req.OptIn, now)
	if err != nil {
		log.Printf("render email body for session %s failed: %v", id, err)
		writeError(w, "/api/sessions", "internal error", http.StatusInternalServerError)
		return
	}

	err = deps.Notifier.SendEmailWithAttachment(r.Context(), req.Email, report.EmailSubject, body, &notification.Attachment{
		Filename:    report.EmailAttachmentName,
		ContentType: "application/pdf",
		Data:        pdfBytes,
	})
	if err != nil {
		log.Printf("send report email for session %s failed: %v", id, err)
		metrics.ReportEmailsTotal.WithLabelValues("failure").Inc()
		if deps.Alerts != nil {
			deps.Alerts.EmailFailed(r.Context(), req.Email, err)
		}
		writeError(w, "/api/sessions", "failed to send email", http.StatusBadGateway)
		return
	}
	metrics.ReportEmailsTotal.WithLabelValues("success").Inc()

	if req.OptIn {
		sub := storage.EmailSubscription{
			Email:       req.Email,
			Subscribed:  true,
			LastAddress: sess.Address,
			UpdatedAt:   now,
			CreatedAt:   now,
		}
		if existing, err := deps.Storage.GetEmailSubscription(r.Context(), req.Email); err == nil && existing != nil {
			sub.CreatedAt = existing.CreatedAt
			sub.ReportsSent = existing.ReportsSent
		}
		sub.ReportsSent++
		sub.LastReportAt = now
		if err := deps.Storage.UpsertEmailSubscription(r.Context(), sub); err != nil {
			// Delivery already succeeded; log and carry on.
			log.Printf("upsert subscription for %s failed: %v", req.Email, err)
		}
	}

	metrics.ReportsGeneratedTotal.WithLabelValues("email").Inc()
	writeJSON(w, map[string]string{
		"status":  "success",
		"message": fmt.Sprintf("Report sent successfully to %s", req.Email),
	})
}
