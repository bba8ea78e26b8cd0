package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spars/internal/config"
)

func TestSanitizeAttachmentName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "SPARS_Brochure.pdf", "SPARS_Brochure.pdf"},
		{"doubled extension", "SPARS_Brochure.pdf.pdf", "SPARS_Brochure.pdf"},
		{"doubled mixed case", "report.PDF.pdf", "report.PDF"},
		{"no extension", "README", "README"},
		{"different extensions", "archive.tar.gz", "archive.tar.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeAttachmentName(tt.in); got != tt.want {
				t.Errorf("sanitizeAttachmentName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSendNotConfigured(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{})
	if svc.Send("jane@example.com", "Test", "body", "", nil, nil) {
		t.Error("expected Send to report failure when not configured")
	}
}

func TestSendNoRecipient(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "user",
		Password: "pass",
	})
	if svc.Send("", "Test", "body", "", nil, nil) {
		t.Error("expected Send to report failure without a recipient")
	}
}

func TestSendUnreachableHost(t *testing.T) {
	// Port 1 on loopback refuses immediately
	svc := NewEmailService(&config.EmailConfig{
		Host:     "127.0.0.1",
		Port:     1,
		Username: "user",
		Password: "pass",
	})
	if svc.Send("jane@example.com", "Test", "body", "", nil, nil) {
		t.Error("expected Send to report failure for unreachable host")
	}
}

func TestBuildMessage(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "SPARS_Brochure.pdf.pdf")
	if err := os.WriteFile(pdf, []byte("%PDF-1.4 stub"), 0o644); err != nil {
		t.Fatal(err)
	}
	logo := filepath.Join(dir, "spars-logo.png")
	if err := os.WriteFile(logo, []byte("png stub"), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := NewEmailService(&config.EmailConfig{
		Host:      "smtp.example.com",
		Port:      465,
		Username:  "user",
		Password:  "pass",
		FromEmail: "noreply@sparsus.com",
	})

	raw, err := svc.buildMessage(
		"jane@example.com",
		"Your SPARS Brochure",
		"plain body",
		"<html><body>html body</body></html>",
		[]string{pdf},
		map[string]string{"spars_logo": logo},
	)
	if err != nil {
		t.Fatalf("buildMessage failed: %v", err)
	}
	msg := string(raw)

	for _, want := range []string{
		"From: noreply@sparsus.com",
		"To: jane@example.com",
		"Subject: Your SPARS Brochure",
		"multipart/related",
		"multipart/alternative",
		"plain body",
		"html body",
		"Content-ID: <spars_logo>",
		`filename="SPARS_Brochure.pdf"`,
		"application/pdf",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
	if strings.Contains(msg, "SPARS_Brochure.pdf.pdf") {
		t.Error("doubled extension not sanitized in message")
	}
}

func TestBuildMessageMissingAttachment(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{
		Host: "smtp.example.com", Port: 587, Username: "u", Password: "p",
	})
	raw, err := svc.buildMessage("jane@example.com", "s", "plain body", "", []string{"/nonexistent.pdf"}, nil)
	if err != nil {
		t.Fatalf("missing attachment should be skipped, got error: %v", err)
	}
	msg := string(raw)
	if strings.Contains(msg, "Content-Disposition: attachment") {
		t.Error("missing attachment still referenced in message")
	}
	if !strings.Contains(msg, "plain body") {
		t.Error("body missing after skipped attachment")
	}
}

func TestWriteBase64LineLength(t *testing.T) {
	var b strings.Builder
	writeBase64(&b, make([]byte, 500))
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\r\n"), "\r\n") {
		if len(line) > mimeLineLength {
			t.Errorf("line exceeds %d chars: %d", mimeLineLength, len(line))
		}
	}
}
