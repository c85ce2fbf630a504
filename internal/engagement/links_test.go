package engagement_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/mentorhub/mentorhub-api/internal/engagement"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleTemplate = models.ContactTemplate{
	Subject: "Hello & welcome",
	Body:    "Hi Noa,\nline two?",
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "Hi%20Noa%2C%0Aline%20two%3F", engagement.Encode("Hi Noa,\nline two?"))
	assert.Equal(t, "a%2Bb%26c%3Dd", engagement.Encode("a+b&c=d"))
	assert.Equal(t, "%D7%A9%D7%A8%D7%94", engagement.Encode("שרה"))
}

func TestLinkBuilder_GmailCompose(t *testing.T) {
	b := engagement.NewLinkBuilder()
	href := b.GmailCompose("noa@example.com", sampleTemplate)

	assert.Equal(t, "https://mail.google.com/mail/?view=cm&fs=1&to=noa@example.com"+
		"&su=Hello%20%26%20welcome&body=Hi%20Noa%2C%0Aline%20two%3F", href)

	u, err := url.Parse(href)
	require.NoError(t, err)
	assert.Equal(t, "noa@example.com", u.Query().Get("to"))
	assert.Equal(t, sampleTemplate.Subject, u.Query().Get("su"))
	assert.Equal(t, sampleTemplate.Body, u.Query().Get("body"))
}

func TestLinkBuilder_WhatsApp(t *testing.T) {
	b := engagement.NewLinkBuilder()

	assert.Equal(t, "https://wa.me/972521112222?text=Hi%20Noa", b.WhatsAppWeb("972521112222", "Hi Noa"))
	assert.Equal(t, "whatsapp://send?phone=972521112222&text=Hi%20Noa", b.WhatsAppApp("972521112222", "Hi Noa"))
}

func TestLinkBuilder_CustomBases(t *testing.T) {
	b := engagement.NewLinkBuilder(
		engagement.WithMailComposeBase("https://mail.example.com/compose"),
		engagement.WithWhatsAppBases("https://chat.example.com", "chat://send"),
	)

	links := b.Build(engagement.LinkInput{
		Email:           "noa@example.com",
		NormalizedPhone: "972521112222",
		WhatsAppText:    models.ContactTemplate{Body: "hi"},
	})
	assert.True(t, strings.HasPrefix(links.EmailHref, "https://mail.example.com/compose?view=cm"))
	assert.Equal(t, "https://chat.example.com/972521112222?text=hi", links.WhatsAppWebHref)
	assert.Equal(t, "chat://send?phone=972521112222&text=hi", links.WhatsAppAppHref)
}

func TestLinkBuilder_Fallbacks(t *testing.T) {
	assert.Equal(t, "mailto:noa@example.com?subject=Hello%20%26%20welcome&body=Hi%20Noa%2C%0Aline%20two%3F",
		engagement.Mailto("noa@example.com", sampleTemplate))
	assert.Equal(t, "mailto:noa%2Bmentor@example.com?subject=&body=",
		engagement.Mailto("noa+mentor@example.com", models.ContactTemplate{}))
	assert.Equal(t, "tel:+972521112222", engagement.Tel("972521112222"))
}

func TestLinkBuilder_Build(t *testing.T) {
	b := engagement.NewLinkBuilder()
	whatsapp := models.ContactTemplate{Body: "Hi Noa"}

	tests := []struct {
		name         string
		input        engagement.LinkInput
		wantEmail    bool
		wantWhatsApp bool
		wantLinkedin bool
	}{
		{
			name: "complete contact data",
			input: engagement.LinkInput{
				Email:           "noa@example.com",
				NormalizedPhone: "972521112222",
				EmailTemplate:   sampleTemplate,
				WhatsAppText:    whatsapp,
				LinkedinURL:     "https://www.linkedin.com/in/noa",
			},
			wantEmail: true, wantWhatsApp: true, wantLinkedin: true,
		},
		{
			name:         "nothing",
			input:        engagement.LinkInput{},
			wantEmail:    false,
			wantWhatsApp: false,
		},
		{
			name:         "invalid email",
			input:        engagement.LinkInput{Email: "not-an-email", NormalizedPhone: "972521112222"},
			wantEmail:    false,
			wantWhatsApp: true,
		},
		{
			name:      "blank email",
			input:     engagement.LinkInput{Email: "   "},
			wantEmail: false,
		},
		{
			name:         "no phone",
			input:        engagement.LinkInput{Email: "noa@example.com"},
			wantEmail:    true,
			wantWhatsApp: false,
		},
		{
			name:         "non http linkedin",
			input:        engagement.LinkInput{LinkedinURL: "javascript:alert(1)"},
			wantLinkedin: false,
		},
		{
			name:         "linkedin without scheme",
			input:        engagement.LinkInput{LinkedinURL: "linkedin.com/in/noa"},
			wantLinkedin: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := b.Build(tt.input)

			assert.Equal(t, tt.wantEmail, links.HasEmail())
			assert.Equal(t, tt.wantEmail, links.MailtoHref != "")
			assert.Equal(t, tt.wantWhatsApp, links.HasWhatsApp())
			assert.Equal(t, tt.wantWhatsApp, links.WhatsAppWebHref != "")
			assert.Equal(t, tt.wantWhatsApp, links.TelHref != "")
			assert.Equal(t, tt.wantLinkedin, links.LinkedinHref != "")
		})
	}
}

func TestLinkBuilder_SameTextOnBothWhatsAppSurfaces(t *testing.T) {
	links := engagement.NewLinkBuilder().Build(engagement.LinkInput{
		NormalizedPhone: "972521112222",
		WhatsAppText:    models.ContactTemplate{Body: "Hi Noa, my name is Mentee"},
	})

	web, err := url.Parse(links.WhatsAppWebHref)
	require.NoError(t, err)
	app, err := url.Parse(links.WhatsAppAppHref)
	require.NoError(t, err)

	assert.Equal(t, "/972521112222", web.Path)
	assert.Equal(t, "972521112222", app.Query().Get("phone"))
	assert.Equal(t, web.Query().Get("text"), app.Query().Get("text"))
}
