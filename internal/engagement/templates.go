package engagement

import (
	"strings"
	"unicode"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"golang.org/x/text/language"
)

// DefaultMenteeName stands in for a visitor who is not signed in
const DefaultMenteeName = "Mentee"

// TemplateBuilder composes outbound message text in one locale.
// Output depends only on the two names passed in.
type TemplateBuilder struct {
	catalog     *Catalog
	tag         language.Tag
	placeholder string
}

// Templates returns a builder for tag. An empty placeholder selects DefaultMenteeName.
func (c *Catalog) Templates(tag language.Tag, placeholder string) TemplateBuilder {
	placeholder = cleanName(placeholder)
	if placeholder == "" {
		placeholder = DefaultMenteeName
	}
	return TemplateBuilder{catalog: c, tag: tag, placeholder: placeholder}
}

// BuildEmail returns the email subject and body addressed to mentorFirstName
func (b TemplateBuilder) BuildEmail(mentorFirstName, menteeName string) models.ContactTemplate {
	p := b.catalog.printer(b.tag)
	mentor, mentee := cleanName(mentorFirstName), b.mentee(menteeName)
	return models.ContactTemplate{
		Subject: p.Sprintf(keyEmailSubject, mentor, mentee),
		Body:    p.Sprintf(keyEmailBody, mentor, mentee),
	}
}

// BuildWhatsApp returns the single-paragraph chat greeting
func (b TemplateBuilder) BuildWhatsApp(mentorFirstName, menteeName string) models.ContactTemplate {
	p := b.catalog.printer(b.tag)
	return models.ContactTemplate{
		Body: p.Sprintf(keyWhatsAppBody, cleanName(mentorFirstName), b.mentee(menteeName)),
	}
}

func (b TemplateBuilder) mentee(name string) string {
	if name = cleanName(name); name != "" {
		return name
	}
	return b.placeholder
}

// cleanName trims the name and drops control characters so a stored name
// cannot inject extra lines into the message.
func cleanName(name string) string {
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(name)
}
