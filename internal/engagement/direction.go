package engagement

import (
	"github.com/mentorhub/mentorhub-api/internal/models"
	"golang.org/x/text/language"
)

// Classifier decides whether text should be laid out right-to-left.
// Callers depend on this interface so an explicit locale field can replace
// the script heuristic later.
type Classifier interface {
	IsRTL(text string) bool
}

// ScriptClassifier flags text containing Hebrew or Arabic script
type ScriptClassifier struct{}

// IsRTL reports whether text contains a code point of the Hebrew
// (U+0590..U+05FF) or Arabic (U+0600..U+06FF) block.
func (ScriptClassifier) IsRTL(text string) bool {
	for _, r := range text {
		if isHebrew(r) || isArabic(r) {
			return true
		}
	}
	return false
}

func isHebrew(r rune) bool {
	return r >= 0x0590 && r <= 0x05FF
}

func isArabic(r rune) bool {
	return r >= 0x0600 && r <= 0x06FF
}

// IsRTL classifies text with the default script classifier
func IsRTL(text string) bool {
	return ScriptClassifier{}.IsRTL(text)
}

// Right-to-left content is presented with Hebrew labels, everything else in English.
var (
	rtlLocale = language.Hebrew
	ltrLocale = language.English
)

// localeFor maps the direction decision to the label language
func localeFor(rtl bool) language.Tag {
	if rtl {
		return rtlLocale
	}
	return ltrLocale
}

// newDirectionContext builds the public direction description
func newDirectionContext(rtl bool) models.DirectionContext {
	dir := models.DirectionLTR
	if rtl {
		dir = models.DirectionRTL
	}
	return models.DirectionContext{
		IsRTL:         rtl,
		TextDirection: dir,
		Locale:        localeFor(rtl).String(),
	}
}

// cardDirection uses the display name alone
func cardDirection(c Classifier, m *models.MentorRecord) bool {
	return c.IsRTL(m.FullName())
}

// panelDirection is RTL when either the name or the biography is
func panelDirection(c Classifier, m *models.MentorRecord) bool {
	return c.IsRTL(m.About) || c.IsRTL(m.FullName())
}
