package alerting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// AlertConfig holds alerting configuration.
type AlertConfig struct {
	// WebhookURL is a generic webhook endpoint (Slack, Discord, or custom)
	WebhookURL string
	// WebhookType determines the payload format: "slack", "discord", or "generic"
	WebhookType string
	// Enabled controls whether alerts are sent
	Enabled bool
	// Timeout for HTTP requests
	Timeout time.Duration
}

// DefaultAlertConfig returns config from environment variables.
func DefaultAlertConfig() AlertConfig {
	cfg := AlertConfig{
		WebhookURL:  os.Getenv("ALERT_WEBHOOK_URL"),
		WebhookType: os.Getenv("ALERT_WEBHOOK_TYPE"),
		Timeout:     10 * time.Second,
	}

	cfg.Enabled = cfg.WebhookURL != ""

	if cfg.WebhookType == "" {
		// Auto-detect from URL
		if strings.Contains(cfg.WebhookURL, "slack.com") {
			cfg.WebhookType = "slack"
		} else if strings.Contains(cfg.WebhookURL, "discord.com") {
			cfg.WebhookType = "discord"
		} else {
			cfg.WebhookType = "generic"
		}
	}

	return cfg
}

// Service sends alerts to configured webhooks.
type Service struct {
	cfg    AlertConfig
	client *http.Client
}

// NewService creates a new alerting service.
func NewService(cfg AlertConfig) *Service {
	return &Service{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Alert is a single operational event worth paging on.
type Alert struct {
	Kind      string // "job_failure" or "email_failure"
	Subject   string // job name or recipient address
	Error     string
	Timestamp time.Time
}

// JobFailed reports a background job failure.
func (a *Service) JobFailed(ctx context.Context, job string, err error) {
	a.send(ctx, Alert{
		Kind:      "job_failure",
		Subject:   job,
		Error:     err.Error(),
		Timestamp: time.Now(),
	})
}

// EmailFailed reports a failed report email delivery.
func (a *Service) EmailFailed(ctx context.Context, recipient string, err error) {
	a.send(ctx, Alert{
		Kind:      "email_failure",
		Subject:   recipient,
		Error:     err.Error(),
		Timestamp: time.Now(),
	})
}

func (a *Service) send(ctx context.Context, alert Alert) {
	if !a.cfg.Enabled {
		log.Printf("alerting: alerts disabled, skipping")
		return
	}

	var payload []byte
	var err error

	switch a.cfg.WebhookType {
	case "slack":
		payload, err = a.buildSlackPayload(alert)
	case "discord":
		payload, err = a.buildDiscordPayload(alert)
	default:
		payload, err = a.buildGenericPayload(alert)
	}

	if err != nil {
		log.Printf("alerting: build payload: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		log.Printf("alerting: create request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("alerting: send request: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		log.Printf("alerting: webhook returned status %d", resp.StatusCode)
		return
	}

	log.Printf("alerting: sent %s alert for %s", alert.Kind, alert.Subject)
}

func (a *Service) buildSlackPayload(alert Alert) ([]byte, error) {
	payload := map[string]interface{}{
		"blocks": []map[string]interface{}{
			{
				"type": "header",
				"text": map[string]string{
					"type": "plain_text",
					"text": fmt.Sprintf(":warning: HOCS Alert: %s", alert.Kind),
				},
			},
			{
				"type": "section",
				"fields": []map[string]string{
					{"type": "mrkdwn", "text": fmt.Sprintf("*Subject:*\n%s", alert.Subject)},
					{"type": "mrkdwn", "text": fmt.Sprintf("*Error:*\n%s", alert.Error)},
					{"type": "mrkdwn", "text": fmt.Sprintf("*Timestamp:*\n%s", alert.Timestamp.Format(time.RFC3339))},
				},
			},
		},
	}

	return json.Marshal(payload)
}

func (a *Service) buildDiscordPayload(alert Alert) ([]byte, error) {
	payload := map[string]interface{}{
		"embeds": []map[string]interface{}{
			{
				"title":       fmt.Sprintf("HOCS Alert: %s", alert.Kind),
				"description": alert.Error,
				"color":       16711680, // Red
				"fields": []map[string]interface{}{
					{"name": "Subject", "value": alert.Subject, "inline": true},
				},
				"timestamp": alert.Timestamp.Format(time.RFC3339),
			},
		},
	}

	return json.Marshal(payload)
}

func (a *Service) buildGenericPayload(alert Alert) ([]byte, error) {
	payload := map[string]interface{}{
		"alert_type": alert.Kind,
		"subject":    alert.Subject,
		"error":      alert.Error,
		"timestamp":  alert.Timestamp.Format(time.RFC3339),
	}

	return json.Marshal(payload)
}
