package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJourneyEntryDecodesExperience(t *testing.T) {
	var j JourneyEntry
	err := json.Unmarshal([]byte(`{
		"id": 4,
		"role": "Frontend Intern",
		"company": "Acme",
		"description": "built things",
		"startDate": "2023-06-01T00:00:00.000Z",
		"endDate": null
	}`), &j)
	require.NoError(t, err)

	assert.Equal(t, KindExperience, j.Kind())
	assert.Equal(t, Experience{Role: "Frontend Intern", Company: "Acme"}, j.Detail)
	assert.True(t, j.Ongoing())
	assert.Equal(t, "2023-06-01", FormatDate(j.StartDate))
}

func TestJourneyEntryDecodesEducation(t *testing.T) {
	var j JourneyEntry
	err := json.Unmarshal([]byte(`{
		"id": "e9",
		"degree": "B.Tech IT",
		"institution": "Anna University",
		"startDate": "2019-07-15",
		"endDate": "2023-05-30"
	}`), &j)
	require.NoError(t, err)

	assert.Equal(t, KindEducation, j.Kind())
	title, org := j.Detail.Headline()
	assert.Equal(t, "B.Tech IT", title)
	assert.Equal(t, "Anna University", org)
	require.NotNil(t, j.EndDate)
	assert.Equal(t, "2023-05-30", FormatDate(*j.EndDate))
	assert.False(t, j.Ongoing())
}

func TestJourneyEntryExplicitTypeWins(t *testing.T) {
	var j JourneyEntry
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"type":"education","degree":"MSc","startDate":"2020-01-01"}`), &j))
	assert.Equal(t, KindEducation, j.Kind())
}

func TestJourneyEntryRejectsBadDate(t *testing.T) {
	var j JourneyEntry
	err := json.Unmarshal([]byte(`{"id":1,"role":"x","startDate":"June 2020"}`), &j)
	assert.Error(t, err)
}

func TestNewJourneyDetail(t *testing.T) {
	d, err := NewJourneyDetail(KindEducation, "BSc", "MIT")
	require.NoError(t, err)
	assert.Equal(t, Education{Degree: "BSc", Institution: "MIT"}, d)

	_, err = NewJourneyDetail("internship", "a", "b")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("2024-13-01")
	assert.Error(t, err)
	assert.Equal(t, "", FormatDate(time.Time{}))
}
