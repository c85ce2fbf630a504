package models

import (
	"encoding/json"
	"strings"
)

// DefaultAvatarURL is shown when a mentor has no picture of their own
const DefaultAvatarURL = "/programmer.png"

// AboutBulletSeparator splits the free-text about field into bullet lines
const AboutBulletSeparator = "•"

// MentorRecord is a mentor as stored and served by the API.
// The engagement layer treats it as read-only.
type MentorRecord struct {
	ID                int        `json:"id"`
	FirstName         string     `json:"firstName"`
	LastName          string     `json:"lastName"`
	HeadlineTech      string     `json:"headlineTech"`
	YearsOfExperience *int       `json:"yearsOfExperience,omitempty"`
	About             string     `json:"about"`
	Email             string     `json:"email,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	PhoneNumber       string     `json:"phoneNumber,omitempty"`
	LinkedinURL       string     `json:"linkedinUrl,omitempty"`
	AvatarURL         string     `json:"avatarUrl,omitempty"`
	ImageURL          string     `json:"imageUrl,omitempty"`
	Image             string     `json:"image,omitempty"`
	PhotoURL          string     `json:"photoURL,omitempty"`
	Languages         StringList `json:"programmingLanguages,omitempty"`
	Technologies      StringList `json:"technologies,omitempty"`
	Domains           StringList `json:"domains,omitempty"`
}

// FullName joins first and last name
func (m *MentorRecord) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// ContactPhone returns whichever phone field is filled, preferring phone
func (m *MentorRecord) ContactPhone() string {
	if p := strings.TrimSpace(m.Phone); p != "" {
		return p
	}
	return strings.TrimSpace(m.PhoneNumber)
}

// ContactPhones lists the filled phone fields, phone first
func (m *MentorRecord) ContactPhones() []string {
	var out []string
	for _, candidate := range []string{m.Phone, m.PhoneNumber} {
		if c := strings.TrimSpace(candidate); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// Avatar picks the first available picture field, falling back to the default
func (m *MentorRecord) Avatar() string {
	for _, candidate := range []string{m.AvatarURL, m.ImageURL, m.Image, m.PhotoURL} {
		if c := strings.TrimSpace(candidate); c != "" {
			return c
		}
	}
	return DefaultAvatarURL
}

// AboutLines splits the about text on the bullet separator, dropping blanks
func (m *MentorRecord) AboutLines() []string {
	lines := []string{}
	for _, line := range strings.Split(m.About, AboutBulletSeparator) {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// StringList accepts either a JSON array of strings or a single string
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (s *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			*s = nil
			return nil
		}
		*s = StringList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = list
	return nil
}

// Line renders the list as a comma-separated line, skipping blank entries
func (s StringList) Line() string {
	items := make([]string, 0, len(s))
	for _, item := range s {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return strings.Join(items, ", ")
}
