package engagement

import (
	"github.com/mentorhub/mentorhub-api/internal/models"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Every key is registered for both supported locales.
const (
	keyExperience       = "experience.years"
	keyAboutTitle       = "panel.about"
	keyContactTitle     = "panel.contact"
	keyLanguagesCaption = "skills.languages"
	keyTechCaption      = "skills.technologies"
	keyDomainsCaption   = "skills.domains"

	keyEmailLabel    = "affordance.email"
	keyPhoneLabel    = "affordance.phone"
	keyWhatsAppLabel = "affordance.whatsapp"
	keyLinkedinLabel = "affordance.linkedin"

	keyNoEmail    = "disabled.email"
	keyNoPhone    = "disabled.phone"
	keyNoWhatsApp = "disabled.whatsapp"
	keyNoLinkedin = "disabled.linkedin"

	keyEmailSubject = "template.email.subject"
	keyEmailBody    = "template.email.body"
	keyWhatsAppBody = "template.whatsapp.body"
)

type entry struct {
	key string
	msg catalog.Message
}

var englishEntries = []entry{
	{keyExperience, plural.Selectf(1, "%d",
		"=1", "one year of experience",
		"other", "%[1]d years of experience",
	)},
	{keyAboutTitle, catalog.String("About %[1]s")},
	{keyContactTitle, catalog.String("Contact %[1]s")},
	{keyLanguagesCaption, catalog.String("Programming languages:")},
	{keyTechCaption, catalog.String("Technologies:")},
	{keyDomainsCaption, catalog.String("Domains:")},

	{keyEmailLabel, catalog.String("Email")},
	{keyPhoneLabel, catalog.String("Phone")},
	{keyWhatsAppLabel, catalog.String("WhatsApp")},
	{keyLinkedinLabel, catalog.String("LinkedIn")},

	{keyNoEmail, catalog.String("No email available")},
	{keyNoPhone, catalog.String("No phone available")},
	{keyNoWhatsApp, catalog.String("No WhatsApp available")},
	{keyNoLinkedin, catalog.String("No LinkedIn profile")},

	{keyEmailSubject, catalog.String("Mentorship request from %[2]s")},
	{keyEmailBody, catalog.String("Hi %[1]s,\n\n" +
		"My name is %[2]s and I came across your mentor profile. " +
		"I would be glad to talk with you about mentorship.\n\n" +
		"Thank you,\n%[2]s")},
	{keyWhatsAppBody, catalog.String("Hi %[1]s, my name is %[2]s and I came across your mentor profile. " +
		"I would be glad to talk with you about mentorship.")},
}

var hebrewEntries = []entry{
	{keyExperience, plural.Selectf(1, "%d",
		"=1", "שנת ניסיון אחת",
		"other", "%[1]d שנות ניסיון",
	)},
	{keyAboutTitle, catalog.String("על %[1]s")},
	{keyContactTitle, catalog.String("יצירת קשר עם %[1]s")},
	{keyLanguagesCaption, catalog.String("שפות תכנות:")},
	{keyTechCaption, catalog.String("טכנולוגיות:")},
	{keyDomainsCaption, catalog.String("תחומים:")},

	{keyEmailLabel, catalog.String("אימייל")},
	{keyPhoneLabel, catalog.String("טלפון")},
	{keyWhatsAppLabel, catalog.String("וואטסאפ")},
	{keyLinkedinLabel, catalog.String("לינקדאין")},

	{keyNoEmail, catalog.String("אין אימייל זמין")},
	{keyNoPhone, catalog.String("אין טלפון זמין")},
	{keyNoWhatsApp, catalog.String("אין מספר וואטסאפ")},
	{keyNoLinkedin, catalog.String("אין פרופיל לינקדאין")},

	{keyEmailSubject, catalog.String("בקשת מנטורינג - %[2]s")},
	{keyEmailBody, catalog.String("היי %[1]s,\n\n" +
		"שמי %[2]s ונתקלתי בפרופיל המנטור שלך. " +
		"אשמח לשוחח איתך על מנטורינג.\n\n" +
		"תודה,\n%[2]s")},
	{keyWhatsAppBody, catalog.String("היי %[1]s, שמי %[2]s ונתקלתי בפרופיל המנטור שלך. " +
		"אשמח לשוחח איתך על מנטורינג.")},
}

// Catalog holds the display strings for the supported locales
type Catalog struct {
	cat catalog.Catalog
}

// NewCatalog registers English and Hebrew messages
func NewCatalog() (*Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(ltrLocale))
	for _, set := range []struct {
		tag     language.Tag
		entries []entry
	}{
		{ltrLocale, englishEntries},
		{rtlLocale, hebrewEntries},
	} {
		for _, e := range set.entries {
			if err := b.Set(set.tag, e.key, e.msg); err != nil {
				return nil, err
			}
		}
	}
	return &Catalog{cat: b}, nil
}

// printer returns a fresh printer; printers are not safe for concurrent use
func (c *Catalog) printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(c.cat))
}

// Labels renders the fixed strings of one view in one locale
type Labels struct {
	p *message.Printer
}

// Labels returns the label set for tag
func (c *Catalog) Labels(tag language.Tag) Labels {
	return Labels{p: c.printer(tag)}
}

// Experience renders the years-of-experience line. Absent or zero experience renders nothing.
func (l Labels) Experience(years *int) string {
	if years == nil || *years <= 0 {
		return ""
	}
	return l.p.Sprintf(keyExperience, *years)
}

func (l Labels) AboutTitle(firstName string) string {
	return l.p.Sprintf(keyAboutTitle, firstName)
}

func (l Labels) ContactTitle(firstName string) string {
	return l.p.Sprintf(keyContactTitle, firstName)
}

func (l Labels) LanguagesCaption() string { return l.p.Sprintf(keyLanguagesCaption) }
func (l Labels) TechCaption() string      { return l.p.Sprintf(keyTechCaption) }
func (l Labels) DomainsCaption() string   { return l.p.Sprintf(keyDomainsCaption) }

// AffordanceLabel is the button caption for kind
func (l Labels) AffordanceLabel(kind string) string {
	switch kind {
	case models.AffordanceEmail:
		return l.p.Sprintf(keyEmailLabel)
	case models.AffordancePhone:
		return l.p.Sprintf(keyPhoneLabel)
	case models.AffordanceWhatsApp:
		return l.p.Sprintf(keyWhatsAppLabel)
	case models.AffordanceLinkedin:
		return l.p.Sprintf(keyLinkedinLabel)
	}
	return kind
}

// DisabledReason is the tooltip of a disabled button for kind
func (l Labels) DisabledReason(kind string) string {
	switch kind {
	case models.AffordanceEmail:
		return l.p.Sprintf(keyNoEmail)
	case models.AffordancePhone:
		return l.p.Sprintf(keyNoPhone)
	case models.AffordanceWhatsApp:
		return l.p.Sprintf(keyNoWhatsApp)
	case models.AffordanceLinkedin:
		return l.p.Sprintf(keyNoLinkedin)
	}
	return ""
}
