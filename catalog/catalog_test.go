package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesOrderedAndComplete(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 20)
	assert.Equal(t, "plumbing", cats[0].Key)
	assert.Equal(t, "technology", cats[len(cats)-1].Key)

	seen := map[string]bool{}
	for _, cat := range cats {
		assert.NotEmpty(t, cat.Name, "category %s has no name", cat.Key)
		assert.NotEmpty(t, cat.Icon, "category %s has no icon", cat.Key)
		assert.False(t, seen[cat.Key], "duplicate category %s", cat.Key)
		seen[cat.Key] = true
	}
}

func TestGet(t *testing.T) {
	cat, ok := Get("plumbing")
	require.True(t, ok)
	assert.Equal(t, "Plumbing", cat.Name)

	_, ok = Get("astrology")
	assert.False(t, ok)
}

func TestEveryCategoryHasServices(t *testing.T) {
	for _, cat := range Categories() {
		services := ServicesFor(cat.Key)
		require.NotEmpty(t, services, "category %s has no services", cat.Key)
		for _, svc := range services {
			assert.Equal(t, cat.Key, svc.Category)
			assert.Greater(t, svc.TypicalRate, 0.0, "service %s has no rate", svc.ID)
		}
	}
}

func TestFindService(t *testing.T) {
	svc, ok := FindService("plumbing_002")
	require.True(t, ok)
	assert.Equal(t, "Leak Repair", svc.Name)

	_, ok = FindService("plumbing_999")
	assert.False(t, ok)
}

func TestSearchServices(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantAny string
		empty   bool
	}{
		{name: "by service name", query: "leak", wantAny: "plumbing_002"},
		{name: "by urgency keyword", query: "no power", wantAny: "electrical_001"},
		{name: "case insensitive", query: "LEAK", wantAny: "plumbing_002"},
		{name: "blank query", query: "   ", empty: true},
		{name: "no match", query: "zeppelin", empty: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := SearchServices(tt.query)
			if tt.empty {
				assert.Empty(t, results)
				return
			}
			require.NotEmpty(t, results)
			found := false
			for _, svc := range results {
				if svc.ID == tt.wantAny {
					found = true
				}
			}
			assert.True(t, found, "expected %s in results", tt.wantAny)
		})
	}
}

func TestServiceNamesFor(t *testing.T) {
	names := ServiceNamesFor("plumbing")
	require.Len(t, names, len(ServicesFor("plumbing")))
	assert.Contains(t, names, "Drain Cleaning")
}
