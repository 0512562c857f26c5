package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// EmailSubject is the subject line used for every report email.
const EmailSubject = "Your HOCS Visibility-First Action Plan"

// EmailAttachmentName is the filename of the attached plan.
const EmailAttachmentName = "HOCS_Action_Plan.pdf"

var emailTmpl = template.Must(template.New("report-email").Parse(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #1e40af;">Your HOCS Action Plan is Ready!</h2>

        <p>Thank you for using HOCS (Home Ownership Cost Savings).</p>

        <p>Your personalized 5-tier action plan is attached to this email. This plan will help you:</p>

        <ul>
            <li>Establish visibility into your home's energy and water usage</li>
            <li>Access free programs and professional assessments</li>
            <li>Make data-driven decisions about home improvements</li>
            <li>Maximize your savings with the best ROI upgrades</li>
        </ul>

        <h3 style="color: #1e40af;">Getting Started</h3>
        <p>We recommend starting with <strong>Tier 1</strong> to establish your baseline before making any changes. This visibility will help you measure the impact of every improvement you make.</p>

        <h3 style="color: #1e40af;">Key Principles</h3>
        <ul>
            <li><strong>Complete Tier 1 first:</strong> Establish your baseline before making changes</li>
            <li><strong>Track everything:</strong> Document dates and compare monthly bills</li>
            <li><strong>Start with free programs:</strong> Maximize no-cost opportunities first</li>
            <li><strong>Use your data:</strong> Let actual usage inform your decisions</li>
        </ul>

        {{if .OptIn}}<p><strong>You're subscribed!</strong> We'll notify you when new programs and opportunities become available in your area.</p>{{end}}

        <p>Questions? Reply to this email and we'll be happy to help.</p>

        <p style="margin-top: 30px;">
            Best regards,<br>
            <strong>The HOCS Team</strong>
        </p>

        <hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;">

        <p style="font-size: 12px; color: #666;">
            Session ID: {{.SessionID}}<br>
            Generated: {{.Generated}}
        </p>
    </div>
</body>
</html>`))

// EmailBody renders the HTML body accompanying a report email.
func EmailBody(sessionID string, optIn bool, now time.Time) (string, error) {
	var buf bytes.Buffer
	err := emailTmpl.Execute(&buf, struct {
		SessionID string
		OptIn     bool
		Generated string
	}{
		SessionID: sessionID,
		OptIn:     optIn,
		Generated: now.Format("January 2, 2006 at 3:04 PM"),
	})
	if err != nil {
		return "", fmt.Errorf("render email body: %w", err)
	}
	return buf.String(), nil
}
