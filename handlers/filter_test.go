package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilterDropsEmptyValues(t *testing.T) {
	query := url.Values{
		"first_name": {"Liam"},
		"last_name":  {""},
		"group_id":   {"cs_01"},
	}

	filter := BuildFilter(query, []string{"first_name", "last_name", "group_id"})
	assert.Equal(t, map[string]any{
		"first_name": "Liam",
		"group_id":   "cs_01",
	}, filter)
}

func TestBuildFilterIgnoresUnknownFields(t *testing.T) {
	query := url.Values{
		"first_name": {"Liam"},
		"page":       {"3"},
		"drop":       {"tables"},
	}

	filter := BuildFilter(query, []string{"first_name", "last_name"})
	assert.Equal(t, map[string]any{"first_name": "Liam"}, filter)
}

func TestBuildFilterEmptyMeansFullScan(t *testing.T) {
	filter := BuildFilter(url.Values{}, []string{"group_name"})
	assert.Empty(t, filter)
}
