package engagement

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mentorhub/mentorhub-api/internal/models"
)

// Default link targets
const (
	DefaultMailComposeBaseURL = "https://mail.google.com/mail/"
	DefaultWhatsAppWebBaseURL = "https://wa.me/"
	DefaultWhatsAppAppBaseURL = "whatsapp://send"
)

// LinkBuilder turns contact data and message templates into hrefs
type LinkBuilder struct {
	mailComposeBase string
	waWebBase       string
	waAppBase       string
	validate        *validator.Validate
}

// LinkOption customises a LinkBuilder
type LinkOption func(*LinkBuilder)

// WithMailComposeBase overrides the webmail compose endpoint
func WithMailComposeBase(base string) LinkOption {
	return func(b *LinkBuilder) {
		if base != "" {
			b.mailComposeBase = base
		}
	}
}

// WithWhatsAppBases overrides the web and native WhatsApp endpoints
func WithWhatsAppBases(web, app string) LinkOption {
	return func(b *LinkBuilder) {
		if web != "" {
			b.waWebBase = web
		}
		if app != "" {
			b.waAppBase = app
		}
	}
}

// NewLinkBuilder creates a builder with the public endpoints unless overridden
func NewLinkBuilder(opts ...LinkOption) *LinkBuilder {
	b := &LinkBuilder{
		mailComposeBase: DefaultMailComposeBaseURL,
		waWebBase:       DefaultWhatsAppWebBaseURL,
		waAppBase:       DefaultWhatsAppAppBaseURL,
		validate:        validator.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if !strings.HasSuffix(b.waWebBase, "/") {
		b.waWebBase += "/"
	}
	return b
}

// LinkInput is everything the builder needs for one mentor
type LinkInput struct {
	Email           string
	NormalizedPhone string
	EmailTemplate   models.ContactTemplate
	WhatsAppText    models.ContactTemplate
	LinkedinURL     string
}

// Build returns every link whose prerequisite is present. Missing or invalid
// contact data leaves the corresponding fields empty.
func (b *LinkBuilder) Build(in LinkInput) models.EngagementLinks {
	var links models.EngagementLinks

	if email := strings.TrimSpace(in.Email); b.ValidEmail(email) {
		links.EmailHref = b.GmailCompose(email, in.EmailTemplate)
		links.MailtoHref = Mailto(email, in.EmailTemplate)
	}

	if in.NormalizedPhone != "" {
		links.WhatsAppWebHref = b.WhatsAppWeb(in.NormalizedPhone, in.WhatsAppText.Body)
		links.WhatsAppAppHref = b.WhatsAppApp(in.NormalizedPhone, in.WhatsAppText.Body)
		links.TelHref = Tel(in.NormalizedPhone)
	}

	if linkedin := strings.TrimSpace(in.LinkedinURL); b.validHTTPURL(linkedin) {
		links.LinkedinHref = linkedin
	}

	return links
}

// ValidEmail reports whether email is a syntactically valid address
func (b *LinkBuilder) ValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return b.validate.Var(email, "required,email") == nil
}

func (b *LinkBuilder) validHTTPURL(raw string) bool {
	if raw == "" || b.validate.Var(raw, "http_url") != nil {
		return false
	}
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

// GmailCompose builds the webmail compose link
func (b *LinkBuilder) GmailCompose(email string, tpl models.ContactTemplate) string {
	return b.mailComposeBase + "?view=cm&fs=1" +
		"&to=" + encodeAddress(email) +
		"&su=" + Encode(tpl.Subject) +
		"&body=" + Encode(tpl.Body)
}

// WhatsAppWeb builds the wa.me style link
func (b *LinkBuilder) WhatsAppWeb(digits, text string) string {
	return b.waWebBase + digits + "?text=" + Encode(text)
}

// WhatsAppApp builds the native application link
func (b *LinkBuilder) WhatsAppApp(digits, text string) string {
	return b.waAppBase + "?phone=" + digits + "&text=" + Encode(text)
}

// Mailto builds the plain mail client link
func Mailto(email string, tpl models.ContactTemplate) string {
	return "mailto:" + encodeAddress(email) +
		"?subject=" + Encode(tpl.Subject) +
		"&body=" + Encode(tpl.Body)
}

// Tel builds a dialable link for an international digits-only number
func Tel(digits string) string {
	return "tel:+" + digits
}

// Encode percent-encodes s for use as a single query component.
// Spaces become %20 rather than '+' so mail and chat clients render them literally.
func Encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// encodeAddress escapes an email address but keeps the '@' readable
func encodeAddress(email string) string {
	return strings.ReplaceAll(Encode(email), "%40", "@")
}
