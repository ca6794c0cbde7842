package prospecting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFiltersByIndustryAndRole(t *testing.T) {
	dir := NewSimulatedDirectory(nil)

	contacts, err := dir.Search(context.Background(), SearchRequest{
		IndustryKeywords: "manufacturing, construction",
		Region:           "Australia",
		TargetRoles:      []string{"CFO", "Head of Digital Transformation", "Digital Transformation Lead"},
	})
	require.NoError(t, err)
	assert.Len(t, contacts, 8)

	for _, c := range contacts {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Email)
		assert.True(t, c.MatchesRole([]string{"CFO", "Digital Transformation"}),
			"unexpected role %q", c.Role)
	}
}

func TestSearchManufacturingOnly(t *testing.T) {
	dir := NewSimulatedDirectory(nil)

	contacts, err := dir.Search(context.Background(), SearchRequest{
		IndustryKeywords: "manufacturing",
		Region:           "Australia",
		TargetRoles:      []string{"CFO"},
	})
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	for _, c := range contacts {
		assert.Equal(t, "Manufacturing", c.Company.Industry)
		assert.Equal(t, "CFO", c.Role)
	}
}

func TestSearchValidation(t *testing.T) {
	dir := NewSimulatedDirectory(nil)

	_, err := dir.Search(context.Background(), SearchRequest{Region: "Australia"})
	assert.ErrorIs(t, err, ErrMissingIndustry)

	_, err = dir.Search(context.Background(), SearchRequest{IndustryKeywords: "construction"})
	assert.ErrorIs(t, err, ErrMissingRegion)
}

func TestSearchEmptyRolesMatchesAll(t *testing.T) {
	dir := NewSimulatedDirectory(nil)

	contacts, err := dir.Search(context.Background(), SearchRequest{
		IndustryKeywords: "construction",
		Region:           "Australia",
	})
	require.NoError(t, err)
	assert.Len(t, contacts, 4)
}
