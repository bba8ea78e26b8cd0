package services

import (
	"fmt"
	"html"
	"strings"
)

// NotificationKind identifies which form produced a notification. Routing
// and template selection key off this value, never off the label text.
type NotificationKind int

const (
	KindNewsletter NotificationKind = iota
	KindContact
	KindDemo
	KindSales
	KindBrochure
	KindProductProfile
)

// Label returns the human-readable form name used in admin subjects
func (k NotificationKind) Label() string {
	switch k {
	case KindNewsletter:
		return "Newsletter Subscription"
	case KindContact:
		return "Contact"
	case KindDemo:
		return "Demo Request"
	case KindSales:
		return "Talk to Sales"
	case KindBrochure:
		return "Brochure Request"
	case KindProductProfile:
		return "Product Profile Request"
	default:
		return "Unknown"
	}
}

// MetricName returns the kind label used for the submission counter
func (k NotificationKind) MetricName() string {
	switch k {
	case KindNewsletter:
		return "newsletter"
	case KindContact:
		return "contact"
	case KindDemo:
		return "demo"
	case KindSales:
		return "talk_to_sales"
	case KindBrochure:
		return "brochure"
	case KindProductProfile:
		return "product_profile"
	default:
		return "unknown"
	}
}

// Field is one labelled value in an admin notification. Order is
// preserved; empty values are skipped.
type Field struct {
	Name  string
	Value string
}

// Notifier composes and sends the admin and confirmation emails for form
// submissions. All sends are best effort.
type Notifier struct {
	email    *EmailService
	admin    string
	logoPath string
}

// NewNotifier creates a new notifier
func NewNotifier(email *EmailService, adminEmail, logoPath string) *Notifier {
	return &Notifier{email: email, admin: adminEmail, logoPath: logoPath}
}

const (
	logoCID = "spars_logo"

	signatureText = `
Best regards,
The SPARS Team

Magnum Opus System Corp. - USA
Phone: +1 (646) 775-2716
Website: www.sparsus.com
Address: 112 West 34 St. 18th Floor New York NY 10120
Email: info@sparsus.com`
)

// NotifyAdmin sends the internal notification for one submission. label
// overrides the kind's default label; pass "" to use it. Contact
// submissions use this to carry the inquiry type in the subject.
func (n *Notifier) NotifyAdmin(kind NotificationKind, label string, fields []Field) bool {
	if label == "" {
		label = kind.Label()
	}
	subject := fmt.Sprintf("New %s Form Submission - SPARS", label)

	var text strings.Builder
	var rows strings.Builder
	text.WriteString(fmt.Sprintf("A new %s form was submitted on the SPARS website.\n\n", label))
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		text.WriteString(fmt.Sprintf("%s: %s\n", f.Name, f.Value))
		rows.WriteString(fmt.Sprintf(
			"<tr><td style=\"padding:6px 12px;font-weight:bold;\">%s</td><td style=\"padding:6px 12px;\">%s</td></tr>",
			html.EscapeString(f.Name), html.EscapeString(f.Value)))
	}

	htmlBody := fmt.Sprintf(`<html><body style="font-family:Arial,sans-serif;color:#333;">
<h2 style="color:#366092;">New %s Form Submission</h2>
<p>A new %s form was submitted on the SPARS website.</p>
<table style="border-collapse:collapse;border:1px solid #ddd;">%s</table>
</body></html>`,
		html.EscapeString(label), html.EscapeString(label), rows.String())

	return n.email.Send(n.admin, subject, text.String(), htmlBody, nil, nil)
}

// SendConfirmation sends the user-facing confirmation for one submission.
// name personalizes the greeting; attachments ride along for document
// requests.
func (n *Notifier) SendConfirmation(kind NotificationKind, to, name string, attachments []string) bool {
	subject, text := confirmationContent(kind, name)
	text += signatureText

	embeds := map[string]string{}
	if n.logoPath != "" {
		embeds[logoCID] = n.logoPath
	}
	htmlBody := confirmationHTML(text, n.logoPath != "")

	return n.email.Send(to, subject, text, htmlBody, attachments, embeds)
}

func confirmationContent(kind NotificationKind, name string) (subject, body string) {
	greeting := "Hello"
	if name != "" {
		greeting = "Dear " + name
	}

	switch kind {
	case KindNewsletter:
		subject = "Welcome to the SPARS Newsletter!"
		body = fmt.Sprintf(`%s,

Thank you for subscribing to the SPARS newsletter!

You will now receive updates about our ERP solutions for the home furnishing industry, product news, and exclusive insights.

If you have any questions, feel free to reach out to us at info@sparsus.com.`, greeting)

	case KindContact:
		subject = "Thank You for Contacting SPARS"
		body = fmt.Sprintf(`%s,

Thank you for reaching out to SPARS!

We have received your message and our team will get back to you within 1-2 business days.

In the meantime, feel free to explore our website at www.sparsus.com to learn more about our ERP solutions for the home furnishing industry.`, greeting)

	case KindDemo:
		subject = "Your SPARS Demo Request Has Been Received"
		body = fmt.Sprintf(`%s,

Thank you for requesting a demo of SPARS!

We have received your request and our team will contact you shortly to confirm your preferred date and time.

If you have any questions before your demo, feel free to reach out to us at info@sparsus.com or +1 (212) 685-2127.`, greeting)

	case KindSales:
		subject = "Thank You for Your Interest in SPARS"
		body = fmt.Sprintf(`%s,

Thank you for your interest in SPARS!

Our sales team has received your inquiry and will reach out to you within 1-2 business days to discuss how SPARS can support your business.

If you would like to speak with us sooner, call us at +1 (212) 685-2127.`, greeting)

	case KindBrochure:
		subject = "Your SPARS Brochure"
		body = documentConfirmationBody(greeting, "brochure")

	case KindProductProfile:
		subject = "Your SPARS Product Profile"
		body = documentConfirmationBody(greeting, "product profile")
	}

	return subject, body
}

// documentConfirmationBody is shared by the brochure and product profile
// confirmations; only the document noun differs.
func documentConfirmationBody(greeting, noun string) string {
	return fmt.Sprintf(`%s,

Thank you for your interest in SPARS!

Please find our %s attached to this email. It covers how SPARS helps home furnishing businesses streamline their operations, from inventory and warehousing to sales and delivery.

If you have any questions or would like to see SPARS in action, reply to this email or reach us at info@sparsus.com.`, greeting, noun)
}

// confirmationHTML wraps the plain-text body in minimal markup, with the
// logo at the top when available.
func confirmationHTML(text string, withLogo bool) string {
	var b strings.Builder
	b.WriteString(`<html><body style="font-family:Arial,sans-serif;color:#333;max-width:600px;">`)
	if withLogo {
		b.WriteString(fmt.Sprintf(`<img src="cid:%s" alt="SPARS" style="max-width:200px;margin-bottom:16px;"/>`, logoCID))
	}
	for _, para := range strings.Split(text, "\n\n") {
		escaped := html.EscapeString(para)
		escaped = strings.ReplaceAll(escaped, "\n", "<br/>")
		b.WriteString("<p>" + escaped + "</p>")
	}
	b.WriteString("</body></html>")
	return b.String()
}
