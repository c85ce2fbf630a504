package engagement

import (
	"github.com/mentorhub/mentorhub-api/config"
	"github.com/mentorhub/mentorhub-api/pkg/phone"
)

// NewPresenterFromConfig builds a Presenter with the configured region, link targets and placeholder
func NewPresenterFromConfig(cfg config.EngagementConfig) (*Presenter, error) {
	normalizer, err := phone.NewNormalizer(cfg.PhoneRegion)
	if err != nil {
		return nil, err
	}

	links := NewLinkBuilder(
		WithMailComposeBase(cfg.MailComposeBaseURL),
		WithWhatsAppBases(cfg.WhatsAppWebBaseURL, cfg.WhatsAppAppBaseURL),
	)

	return NewPresenter(normalizer, links, WithMenteePlaceholder(cfg.MenteePlaceholder))
}
