package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidCategory(t *testing.T) {
	tests := []struct {
		name  string
		cat   Category
		valid bool
	}{
		{"frontend", CategoryFrontend, true},
		{"backend", CategoryBackend, true},
		{"database", CategoryDatabase, true},
		{"tools", CategoryTools, true},
		{"empty", "", false},
		{"lowercase", "frontend", false},
		{"all is a filter, not a category", "ALL", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidCategory(tt.cat))
		})
	}
}

func TestSkillLevelNullDecodesToNil(t *testing.T) {
	var s Skill
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"Go","category":"BACKEND","level":null}`), &s))
	assert.Equal(t, ID("3"), s.ID)
	assert.Nil(t, s.Level)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"a1","name":"SQL","category":"DATABASE","level":85}`), &s))
	require.NotNil(t, s.Level)
	assert.Equal(t, 85, *s.Level)
	assert.Equal(t, ID("a1"), s.ID)
}
