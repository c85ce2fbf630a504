package main

import (
	"fmt"
	"io"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// rtlMark forces right-to-left paragraph direction in terminals that honour bidi controls
const rtlMark = "\u200f"

func line(w io.Writer, dir models.DirectionContext, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if dir.IsRTL {
		text = rtlMark + text
	}
	fmt.Fprintln(w, text)
}

func renderCard(w io.Writer, card models.CardView) {
	dir := card.Direction
	line(w, dir, "%s", card.FullName)
	if card.HeadlineTech != "" {
		line(w, dir, "%s", card.HeadlineTech)
	}
	if card.ExperienceLine != "" {
		line(w, dir, "%s", card.ExperienceLine)
	}
	line(w, dir, "avatar: %s", card.AvatarURL)
}

func renderPanel(w io.Writer, panel models.PanelView) {
	renderCard(w, panel.CardView)
	dir := panel.Direction

	if panel.AboutTitle != "" {
		fmt.Fprintln(w)
		line(w, dir, "%s", panel.AboutTitle)
		for _, l := range panel.AboutLines {
			line(w, dir, "  • %s", l)
		}
	}

	if len(panel.Skills) > 0 {
		fmt.Fprintln(w)
		for _, s := range panel.Skills {
			line(w, dir, "%s %s", s.Label, s.Value)
		}
	}

	fmt.Fprintln(w)
	line(w, dir, "%s", panel.ContactTitle)
	for _, a := range panel.Affordances {
		if a.Enabled {
			line(w, dir, "  [%s] %s", a.Label, a.Href)
			continue
		}
		line(w, dir, "  [%s] %s", a.Label, a.Disabled)
	}

	if panel.Links.HasWhatsApp() {
		line(w, dir, "  WhatsApp app: %s", panel.Links.WhatsAppAppHref)
	}
}

// reportOpened prints the WhatsApp surface that actually opened. Nothing
// opening is an error.
func reportOpened(w io.Writer, opened, requested, name string) error {
	switch {
	case opened == "":
		return fmt.Errorf("could not open WhatsApp for %s", name)
	case opened != requested:
		fmt.Fprintf(w, "WhatsApp %s did not open, opened WhatsApp %s for %s\n", requested, opened, name)
	default:
		fmt.Fprintf(w, "Opened WhatsApp %s for %s\n", opened, name)
	}
	return nil
}
