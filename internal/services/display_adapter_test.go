package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawtrip/internal/models/response_models"
)

func TestFormatForDisplay_RoundTripPreservesOrderAndCount(t *testing.T) {
	parsed := ParseTripPlan([]byte(wellFormedPlan))
	require.True(t, parsed.Success, parsed.Error)

	model := FormatForDisplay(parsed)
	require.NotNil(t, model)

	assert.Equal(t, "Hangzhou", model.City)
	assert.Equal(t, "relaxed", model.Style)
	assert.Equal(t, len(parsed.Schedule), model.ActivityCount)
	require.Len(t, model.Activities, len(parsed.Schedule))
	for i, a := range model.Activities {
		assert.Equal(t, parsed.Schedule[i], a.Activity)
	}
}

func TestFormatForDisplay_ThemeLookup(t *testing.T) {
	parsed := response_models.ParsedTripPlan{
		Success:  true,
		PlanInfo: &response_models.PlanInfo{City: "x", Themes: []string{"Food"}},
		Schedule: []response_models.Activity{
			{ID: "1", Theme: "food"},
			{ID: "2", Theme: "street_art"},
			{ID: "3"},
		},
	}

	model := FormatForDisplay(parsed)
	require.NotNil(t, model)

	assert.Equal(t, "Food", model.Activities[0].ThemeLabel)
	assert.Equal(t, themePalette["food"].color, model.Activities[0].Color)
	assert.Equal(t, "Street Art", model.Activities[1].ThemeLabel)
	assert.Equal(t, neutralThemeColor, model.Activities[1].Color)
	assert.Equal(t, neutralThemeColor, model.Activities[2].Color)

	assert.Equal(t, themePalette["food"].color, model.ThemeColors["Food"])
	assert.Equal(t, neutralThemeColor, model.ThemeColors["street_art"])
	assert.NotContains(t, model.ThemeColors, "")
}

func TestFormatForDisplay_NilForFailureOrEmpty(t *testing.T) {
	assert.Nil(t, FormatForDisplay(response_models.ParsedTripPlan{Success: false, Error: "bad"}))
	assert.Nil(t, FormatForDisplay(response_models.ParsedTripPlan{Success: true}))
}
