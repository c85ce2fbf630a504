package models_test

import (
	"encoding/json"
	"testing"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMentorRecord_UnmarshalFlexibleLists(t *testing.T) {
	payload := `{
		"firstName": "Noa",
		"lastName": "Levi",
		"yearsOfExperience": 1,
		"programmingLanguages": ["Go", " ", "Python"],
		"technologies": "Kubernetes",
		"domains": null
	}`

	var m models.MentorRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &m))

	require.NotNil(t, m.YearsOfExperience)
	assert.Equal(t, 1, *m.YearsOfExperience)
	assert.Equal(t, "Go, Python", m.Languages.Line())
	assert.Equal(t, "Kubernetes", m.Technologies.Line())
	assert.Equal(t, "", m.Domains.Line())
}

func TestStringList_RejectsOtherShapes(t *testing.T) {
	var s models.StringList
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &s))
}

func TestMentorRecord_FullName(t *testing.T) {
	tests := []struct {
		name     string
		mentor   models.MentorRecord
		expected string
	}{
		{name: "both names", mentor: models.MentorRecord{FirstName: "Sarah", LastName: "Cohen"}, expected: "Sarah Cohen"},
		{name: "first name only", mentor: models.MentorRecord{FirstName: "Sarah"}, expected: "Sarah"},
		{name: "no names", mentor: models.MentorRecord{}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mentor.FullName())
		})
	}
}

func TestMentorRecord_Avatar(t *testing.T) {
	assert.Equal(t, models.DefaultAvatarURL, (&models.MentorRecord{}).Avatar())
	assert.Equal(t, "/b.png", (&models.MentorRecord{ImageURL: " ", Image: "/b.png", PhotoURL: "/c.png"}).Avatar())
	assert.Equal(t, "/a.png", (&models.MentorRecord{AvatarURL: "/a.png", PhotoURL: "/c.png"}).Avatar())
}

func TestMentorRecord_ContactPhone(t *testing.T) {
	assert.Equal(t, "050", (&models.MentorRecord{Phone: " 050 ", PhoneNumber: "052"}).ContactPhone())
	assert.Equal(t, "052", (&models.MentorRecord{PhoneNumber: "052"}).ContactPhone())
	assert.Equal(t, "", (&models.MentorRecord{}).ContactPhone())
}

func TestMentorRecord_ContactPhones(t *testing.T) {
	assert.Equal(t, []string{"abc", "052"}, (&models.MentorRecord{Phone: " abc ", PhoneNumber: "052"}).ContactPhones())
	assert.Equal(t, []string{"052"}, (&models.MentorRecord{Phone: " ", PhoneNumber: "052"}).ContactPhones())
	assert.Empty(t, (&models.MentorRecord{}).ContactPhones())
}

func TestMentorRecord_AboutLines(t *testing.T) {
	m := models.MentorRecord{About: "• 10 years backend • • Led teams of 5•Loves Go "}
	assert.Equal(t, []string{"10 years backend", "Led teams of 5", "Loves Go"}, m.AboutLines())

	assert.Empty(t, (&models.MentorRecord{}).AboutLines())
}
