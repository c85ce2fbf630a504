package models

// Text directions
const (
	DirectionRTL = "rtl"
	DirectionLTR = "ltr"
)

// DirectionContext is the presentation locale chosen for one rendered mentor
type DirectionContext struct {
	IsRTL         bool   `json:"isRtl"`
	TextDirection string `json:"textDirection"`
	Locale        string `json:"locale"`
}

// ContactTemplate is the outbound message text before any URL encoding
type ContactTemplate struct {
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}

// EngagementLinks holds the contact targets that could be built for a mentor.
// A field is empty when its prerequisite contact data is missing or invalid.
type EngagementLinks struct {
	EmailHref       string `json:"emailHref,omitempty"`
	WhatsAppWebHref string `json:"whatsappWebHref,omitempty"`
	WhatsAppAppHref string `json:"whatsappAppHref,omitempty"`
	MailtoHref      string `json:"mailtoHref,omitempty"`
	TelHref         string `json:"telHref,omitempty"`
	LinkedinHref    string `json:"linkedinHref,omitempty"`
}

// HasEmail reports whether any email link exists
func (l EngagementLinks) HasEmail() bool {
	return l.EmailHref != ""
}

// HasWhatsApp reports whether both WhatsApp surfaces are reachable
func (l EngagementLinks) HasWhatsApp() bool {
	return l.WhatsAppWebHref != "" && l.WhatsAppAppHref != ""
}

// Affordance kinds
const (
	AffordanceEmail    = "email"
	AffordancePhone    = "phone"
	AffordanceWhatsApp = "whatsapp"
	AffordanceLinkedin = "linkedin"
)

// Affordance is one contact button. Disabled buttons carry the reason shown in their tooltip.
type Affordance struct {
	Kind     string `json:"kind"`
	Label    string `json:"label"`
	Href     string `json:"href,omitempty"`
	Enabled  bool   `json:"enabled"`
	Disabled string `json:"disabledReason,omitempty"`
}

// LabeledLine is a caption/value pair such as "Technologies: Go, Kafka"
type LabeledLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CardView is the compact grid card for one mentor
type CardView struct {
	ID             int              `json:"id"`
	FullName       string           `json:"fullName"`
	HeadlineTech   string           `json:"headlineTech"`
	AvatarURL      string           `json:"avatarUrl"`
	ExperienceLine string           `json:"experienceLine,omitempty"`
	Direction      DirectionContext `json:"direction"`
}

// PanelView is the detail panel, including the contact section
type PanelView struct {
	CardView
	AboutTitle   string          `json:"aboutTitle,omitempty"`
	AboutLines   []string        `json:"aboutLines,omitempty"`
	Skills       []LabeledLine   `json:"skills,omitempty"`
	ContactTitle string          `json:"contactTitle"`
	Email        ContactTemplate `json:"emailTemplate"`
	WhatsApp     ContactTemplate `json:"whatsappTemplate"`
	Links        EngagementLinks `json:"links"`
	Affordances  []Affordance    `json:"affordances"`
}
