package services

import (
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"net"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spars/internal/config"
	"spars/internal/metrics"
)

const (
	smtpDialTimeout = 30 * time.Second
	mimeLineLength  = 76
)

// EmailService sends transactional mail over SMTP. Every send is best
// effort: failures are logged and reported as false, never as an error,
// so a broken mail server can not fail a form submission.
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Send delivers one message. attachments are file paths attached by name;
// embeds maps Content-ID to file path for inline images. Returns true only
// when the SMTP transaction completed.
func (s *EmailService) Send(to, subject, textBody, htmlBody string, attachments []string, embeds map[string]string) bool {
	if !s.cfg.IsConfigured() {
		log.Printf("[EMAIL] Not configured, skipping send to %s (%s)", to, subject)
		metrics.RecordEmail("skipped")
		return false
	}
	if to == "" {
		log.Printf("[EMAIL] No recipient for %q, skipping", subject)
		metrics.RecordEmail("skipped")
		return false
	}

	msg, err := s.buildMessage(to, subject, textBody, htmlBody, attachments, embeds)
	if err != nil {
		log.Printf("[EMAIL] Failed to build message for %s: %v", to, err)
		metrics.RecordEmail("failed")
		return false
	}

	if err := s.deliver(to, msg); err != nil {
		log.Printf("[EMAIL] Failed to send to %s: %v", to, err)
		metrics.RecordEmail("failed")
		return false
	}

	log.Printf("[EMAIL] Sent %q to %s", subject, to)
	metrics.RecordEmail("sent")
	return true
}

// buildMessage assembles a multipart/related message wrapping a
// multipart/alternative text+HTML pair, plus any attachments.
func (s *EmailService) buildMessage(to, subject, textBody, htmlBody string, attachments []string, embeds map[string]string) ([]byte, error) {
	var b strings.Builder

	relBoundary := "spars-rel-boundary"
	altBoundary := "spars-alt-boundary"

	b.WriteString(fmt.Sprintf("From: %s\r\n", s.cfg.From()))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString(fmt.Sprintf("Content-Type: multipart/related; boundary=%q\r\n", relBoundary))
	b.WriteString("\r\n")

	// Alternative part: plain text then HTML
	b.WriteString(fmt.Sprintf("--%s\r\n", relBoundary))
	b.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", altBoundary))
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", altBoundary))
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(textBody)
	b.WriteString("\r\n")

	if htmlBody != "" {
		b.WriteString(fmt.Sprintf("--%s\r\n", altBoundary))
		b.WriteString("Content-Type: text/html; charset=utf-8\r\n")
		b.WriteString("\r\n")
		b.WriteString(htmlBody)
		b.WriteString("\r\n")
	}
	b.WriteString(fmt.Sprintf("--%s--\r\n", altBoundary))

	// Inline embeds referenced by cid: URLs in the HTML body
	for cid, path := range embeds {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[EMAIL] Skipping embed %s: %v", path, err)
			continue
		}
		b.WriteString(fmt.Sprintf("--%s\r\n", relBoundary))
		b.WriteString(fmt.Sprintf("Content-Type: %s\r\n", contentTypeFor(path)))
		b.WriteString("Content-Transfer-Encoding: base64\r\n")
		b.WriteString(fmt.Sprintf("Content-ID: <%s>\r\n", cid))
		b.WriteString("Content-Disposition: inline\r\n")
		b.WriteString("\r\n")
		writeBase64(&b, data)
	}

	for _, path := range attachments {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[EMAIL] Skipping attachment %s: %v", path, err)
			continue
		}
		name := sanitizeAttachmentName(filepath.Base(path))
		b.WriteString(fmt.Sprintf("--%s\r\n", relBoundary))
		b.WriteString(fmt.Sprintf("Content-Type: %s; name=%q\r\n", contentTypeFor(path), name))
		b.WriteString("Content-Transfer-Encoding: base64\r\n")
		b.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n", name))
		b.WriteString("\r\n")
		writeBase64(&b, data)
	}

	b.WriteString(fmt.Sprintf("--%s--\r\n", relBoundary))
	return []byte(b.String()), nil
}

// deliver runs the SMTP transaction. Port 465 uses implicit TLS; other
// ports connect plain and upgrade via STARTTLS when configured.
func (s *EmailService) deliver(to string, msg []byte) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", s.cfg.Port))

	var client *smtp.Client
	if s.cfg.Port == 465 {
		conn, err := tls.DialWithDialer(&net.Dialer{Timeout: smtpDialTimeout}, "tcp", addr, &tls.Config{ServerName: s.cfg.Host})
		if err != nil {
			return fmt.Errorf("tls dial failed: %w", err)
		}
		client, err = smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			conn.Close()
			return fmt.Errorf("smtp handshake failed: %w", err)
		}
	} else {
		conn, err := net.DialTimeout("tcp", addr, smtpDialTimeout)
		if err != nil {
			return fmt.Errorf("dial failed: %w", err)
		}
		client, err = smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			conn.Close()
			return fmt.Errorf("smtp handshake failed: %w", err)
		}
		if s.cfg.UseTLS {
			if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
				client.Close()
				return fmt.Errorf("starttls failed: %w", err)
			}
		}
	}
	defer client.Close()

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("auth failed: %w", err)
	}
	if err := client.Mail(s.cfg.From()); err != nil {
		return fmt.Errorf("mail from failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to failed: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close failed: %w", err)
	}
	return client.Quit()
}

// sanitizeAttachmentName collapses a doubled extension like report.pdf.pdf
// that upstream tooling sometimes produces.
func sanitizeAttachmentName(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return name
	}
	doubled := ext + ext
	if strings.HasSuffix(strings.ToLower(name), strings.ToLower(doubled)) {
		return name[:len(name)-len(ext)]
	}
	return name
}

func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// writeBase64 base64-encodes data and writes it in 76-column lines
func writeBase64(b *strings.Builder, data []byte) {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > mimeLineLength {
		b.WriteString(encoded[:mimeLineLength])
		b.WriteString("\r\n")
		encoded = encoded[mimeLineLength:]
	}
	if len(encoded) > 0 {
		b.WriteString(encoded)
		b.WriteString("\r\n")
	}
}
