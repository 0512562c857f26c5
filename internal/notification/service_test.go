package notification

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/hocs-app/hocs/internal/storage"
)

func TestBuildSMTPMessagePlain(t *testing.T) {
	msg := string(buildSMTPMessage("user@example.com", "Hello", "<p>hi</p>", nil))

	for _, want := range []string{
		"To: user@example.com\r\n",
		"Subject: Hello\r\n",
		"Content-Type: text/html; charset=\"UTF-8\"\r\n",
		"<p>hi</p>",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
	if strings.Contains(msg, "multipart/mixed") {
		t.Error("plain message should not be multipart")
	}
}

func TestBuildSMTPMessageWithAttachment(t *testing.T) {
	data := bytes.Repeat([]byte("pdf-bytes "), 20)
	msg := string(buildSMTPMessage("user@example.com", "Hello", "<p>hi</p>", &Attachment{
		Filename:    "plan.pdf",
		ContentType: "application/pdf",
		Data:        data,
	}))

	for _, want := range []string{
		"Content-Type: multipart/mixed; boundary=\"hocs-mail-boundary\"",
		"Content-Type: application/pdf\r\n",
		"Content-Transfer-Encoding: base64\r\n",
		"Content-Disposition: attachment; filename=\"plan.pdf\"",
		"--hocs-mail-boundary--\r\n",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}

	// Base64 payload is wrapped and round-trips to the original bytes.
	start := strings.Index(msg, "filename=\"plan.pdf\"\r\n\r\n")
	if start < 0 {
		t.Fatal("attachment section not found")
	}
	section := msg[start+len("filename=\"plan.pdf\"\r\n\r\n"):]
	end := strings.Index(section, "--hocs-mail-boundary--")
	if end < 0 {
		t.Fatal("closing boundary not found")
	}
	encoded := strings.TrimSpace(section[:end])
	for _, line := range strings.Split(encoded, "\r\n") {
		if len(line) > 76 {
			t.Fatalf("base64 line longer than 76 chars: %d", len(line))
		}
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(encoded, "\r\n", ""))
	if err != nil {
		t.Fatalf("decode attachment: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatal("attachment did not round-trip")
	}
}

func TestBuildSMTPMessageDefaultsContentType(t *testing.T) {
	msg := string(buildSMTPMessage("a@b.c", "s", "b", &Attachment{Filename: "x.bin", Data: []byte{1}}))
	if !strings.Contains(msg, "Content-Type: application/octet-stream\r\n") {
		t.Error("missing default attachment content type")
	}
}

func TestSendEmailUnconfigured(t *testing.T) {
	svc := NewService(storage.NewMemory())

	err := svc.SendEmail(context.Background(), "user@example.com", "s", "b")
	if err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Fatalf("err = %v, want not-configured", err)
	}
}

func TestSendEmailDisabled(t *testing.T) {
	st := storage.NewMemory()
	if err := st.SaveEmailConfig(context.Background(), storage.EmailConfig{Provider: "smtp", Enabled: false}); err != nil {
		t.Fatalf("save config: %v", err)
	}
	svc := NewService(st)

	if err := svc.SendEmail(context.Background(), "user@example.com", "s", "b"); err == nil {
		t.Fatal("disabled config should fail")
	}
}

func TestSendEmailUnknownProvider(t *testing.T) {
	st := storage.NewMemory()
	if err := st.SaveEmailConfig(context.Background(), storage.EmailConfig{Provider: "pigeon", Enabled: true}); err != nil {
		t.Fatalf("save config: %v", err)
	}
	svc := NewService(st)

	err := svc.SendEmail(context.Background(), "user@example.com", "s", "b")
	if err == nil || !strings.Contains(err.Error(), "unknown provider") {
		t.Fatalf("err = %v, want unknown provider", err)
	}
}
