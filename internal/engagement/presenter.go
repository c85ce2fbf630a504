package engagement

import (
	"strings"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"github.com/mentorhub/mentorhub-api/pkg/phone"
)

// Presenter renders mentor records into card and panel views
type Presenter struct {
	classifier  Classifier
	normalizer  *phone.Normalizer
	catalog     *Catalog
	links       *LinkBuilder
	placeholder string
}

// PresenterOption customises a Presenter
type PresenterOption func(*Presenter)

// WithClassifier replaces the script classifier
func WithClassifier(c Classifier) PresenterOption {
	return func(p *Presenter) { p.classifier = c }
}

// WithMenteePlaceholder sets the name used for anonymous visitors
func WithMenteePlaceholder(name string) PresenterOption {
	return func(p *Presenter) { p.placeholder = name }
}

// NewPresenter wires the engagement building blocks together
func NewPresenter(normalizer *phone.Normalizer, links *LinkBuilder, opts ...PresenterOption) (*Presenter, error) {
	cat, err := NewCatalog()
	if err != nil {
		return nil, err
	}
	p := &Presenter{
		classifier:  ScriptClassifier{},
		normalizer:  normalizer,
		catalog:     cat,
		links:       links,
		placeholder: DefaultMenteeName,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Card renders the compact grid card. Direction follows the name alone.
func (p *Presenter) Card(m *models.MentorRecord) models.CardView {
	rtl := cardDirection(p.classifier, m)
	return p.card(m, rtl)
}

func (p *Presenter) card(m *models.MentorRecord, rtl bool) models.CardView {
	labels := p.catalog.Labels(localeFor(rtl))
	return models.CardView{
		ID:             m.ID,
		FullName:       m.FullName(),
		HeadlineTech:   strings.TrimSpace(m.HeadlineTech),
		AvatarURL:      m.Avatar(),
		ExperienceLine: labels.Experience(m.YearsOfExperience),
		Direction:      newDirectionContext(rtl),
	}
}

// Panel renders the detail panel for a visitor called menteeName, which may be empty.
// Labels follow the panel direction; message templates follow the mentor's name.
func (p *Presenter) Panel(m *models.MentorRecord, menteeName string) models.PanelView {
	rtl := panelDirection(p.classifier, m)
	labels := p.catalog.Labels(localeFor(rtl))
	firstName := strings.TrimSpace(m.FirstName)

	templates := p.catalog.Templates(localeFor(cardDirection(p.classifier, m)), p.placeholder)
	emailTpl := templates.BuildEmail(firstName, menteeName)
	whatsappTpl := templates.BuildWhatsApp(firstName, menteeName)

	digits := p.contactDigits(m)

	links := p.links.Build(LinkInput{
		Email:           m.Email,
		NormalizedPhone: digits,
		EmailTemplate:   emailTpl,
		WhatsAppText:    whatsappTpl,
		LinkedinURL:     m.LinkedinURL,
	})

	view := models.PanelView{
		CardView:     p.card(m, rtl),
		AboutLines:   m.AboutLines(),
		Skills:       skills(labels, m),
		ContactTitle: labels.ContactTitle(firstName),
		Email:        emailTpl,
		WhatsApp:     whatsappTpl,
		Links:        links,
		Affordances:  affordances(labels, links),
	}
	if len(view.AboutLines) > 0 {
		view.AboutTitle = labels.AboutTitle(firstName)
	}
	return view
}

// contactDigits normalizes the first phone field that yields a dialable number
func (p *Presenter) contactDigits(m *models.MentorRecord) string {
	candidates := m.ContactPhones()
	if len(candidates) == 0 {
		return ""
	}
	for _, raw := range candidates {
		if digits := p.normalizer.Normalize(raw); digits != "" {
			metrics.PhoneNormalizations.WithLabelValues("normalized").Inc()
			return digits
		}
	}
	metrics.PhoneNormalizations.WithLabelValues("rejected").Inc()
	return ""
}

// NormalizePhone exposes the configured normalizer
func (p *Presenter) NormalizePhone(raw string) string {
	return p.normalizer.Normalize(raw)
}

func skills(labels Labels, m *models.MentorRecord) []models.LabeledLine {
	var lines []models.LabeledLine
	for _, s := range []struct {
		label string
		value string
	}{
		{labels.LanguagesCaption(), m.Languages.Line()},
		{labels.TechCaption(), m.Technologies.Line()},
		{labels.DomainsCaption(), m.Domains.Line()},
	} {
		if s.value != "" {
			lines = append(lines, models.LabeledLine{Label: s.label, Value: s.value})
		}
	}
	return lines
}

// affordances lists every contact button in display order. Buttons whose
// link is missing are disabled and explain why.
func affordances(labels Labels, links models.EngagementLinks) []models.Affordance {
	candidates := []struct {
		kind string
		href string
		ok   bool
	}{
		{models.AffordanceEmail, links.EmailHref, links.HasEmail()},
		{models.AffordancePhone, links.TelHref, links.TelHref != ""},
		{models.AffordanceWhatsApp, links.WhatsAppWebHref, links.HasWhatsApp()},
		{models.AffordanceLinkedin, links.LinkedinHref, links.LinkedinHref != ""},
	}

	out := make([]models.Affordance, 0, len(candidates))
	for _, c := range candidates {
		a := models.Affordance{
			Kind:    c.kind,
			Label:   labels.AffordanceLabel(c.kind),
			Enabled: c.ok,
		}
		if c.ok {
			a.Href = c.href
		} else {
			a.Disabled = labels.DisabledReason(c.kind)
		}
		out = append(out, a)
	}
	return out
}
