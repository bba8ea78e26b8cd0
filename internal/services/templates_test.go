package services

import (
	"strings"
	"testing"
)

func TestNotificationKindLabel(t *testing.T) {
	tests := []struct {
		kind   NotificationKind
		label  string
		metric string
	}{
		{KindNewsletter, "Newsletter Subscription", "newsletter"},
		{KindContact, "Contact", "contact"},
		{KindDemo, "Demo Request", "demo"},
		{KindSales, "Talk to Sales", "talk_to_sales"},
		{KindBrochure, "Brochure Request", "brochure"},
		{KindProductProfile, "Product Profile Request", "product_profile"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := tt.kind.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
			if got := tt.kind.MetricName(); got != tt.metric {
				t.Errorf("MetricName() = %q, want %q", got, tt.metric)
			}
		})
	}
}

func TestConfirmationContent(t *testing.T) {
	t.Run("greeting uses name", func(t *testing.T) {
		_, body := confirmationContent(KindContact, "Jane Doe")
		if !strings.HasPrefix(body, "Dear Jane Doe,") {
			t.Errorf("body does not greet by name: %q", body[:40])
		}
	})

	t.Run("greeting without name", func(t *testing.T) {
		_, body := confirmationContent(KindContact, "")
		if !strings.HasPrefix(body, "Hello,") {
			t.Errorf("body does not use neutral greeting: %q", body[:40])
		}
	})

	t.Run("every kind has a subject", func(t *testing.T) {
		kinds := []NotificationKind{
			KindNewsletter, KindContact, KindDemo,
			KindSales, KindBrochure, KindProductProfile,
		}
		for _, k := range kinds {
			subject, body := confirmationContent(k, "Jane")
			if subject == "" {
				t.Errorf("kind %v has empty subject", k)
			}
			if body == "" {
				t.Errorf("kind %v has empty body", k)
			}
		}
	})

	t.Run("document kinds differ only in noun", func(t *testing.T) {
		_, brochure := confirmationContent(KindBrochure, "Jane")
		_, profile := confirmationContent(KindProductProfile, "Jane")
		if !strings.Contains(brochure, "brochure") {
			t.Error("brochure body missing document noun")
		}
		if !strings.Contains(profile, "product profile") {
			t.Error("profile body missing document noun")
		}
		if strings.ReplaceAll(brochure, "brochure", "product profile") != profile {
			t.Error("document bodies diverge beyond the noun")
		}
	})
}

func TestConfirmationHTML(t *testing.T) {
	t.Run("with logo", func(t *testing.T) {
		out := confirmationHTML("Hello,\n\nLine one\nLine two", true)
		if !strings.Contains(out, "cid:"+logoCID) {
			t.Error("logo cid reference missing")
		}
		if !strings.Contains(out, "Line one<br/>Line two") {
			t.Error("newlines not converted to breaks")
		}
	})

	t.Run("without logo", func(t *testing.T) {
		out := confirmationHTML("Hello", false)
		if strings.Contains(out, "cid:") {
			t.Error("unexpected cid reference without logo")
		}
	})

	t.Run("escapes markup", func(t *testing.T) {
		out := confirmationHTML("a <script> tag", false)
		if strings.Contains(out, "<script>") {
			t.Error("markup not escaped")
		}
	})
}
