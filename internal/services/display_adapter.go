package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pawtrip/internal/models/response_models"
)

const neutralThemeColor = "#9E9E9E"

type themeStyle struct {
	label string
	color string
}

var themePalette = map[string]themeStyle{
	"food":      {label: "Food", color: "#FF8A65"},
	"nature":    {label: "Nature", color: "#66BB6A"},
	"culture":   {label: "Culture", color: "#7E57C2"},
	"shopping":  {label: "Shopping", color: "#EC407A"},
	"relax":     {label: "Relax", color: "#4FC3F7"},
	"adventure": {label: "Adventure", color: "#FFA726"},
	"photo":     {label: "Photo Spot", color: "#26A69A"},
	"play":      {label: "Play", color: "#FFCA28"},
}

func themeFor(theme string) themeStyle {
	key := strings.ToLower(strings.TrimSpace(theme))
	if style, ok := themePalette[key]; ok {
		return style
	}
	label := strings.Join(strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	}), " ")
	return themeStyle{label: cases.Title(language.Und).String(label), color: neutralThemeColor}
}

// FormatForDisplay turns a parsed plan into render-ready records. It returns
// nil for a failed or empty plan.
func FormatForDisplay(parsed response_models.ParsedTripPlan) *response_models.DisplayModel {
	if !parsed.Success || len(parsed.Schedule) == 0 {
		return nil
	}

	model := &response_models.DisplayModel{
		Themes:        []string{},
		ActivityCount: len(parsed.Schedule),
		Activities:    make([]response_models.DisplayActivity, 0, len(parsed.Schedule)),
		ThemeColors:   make(map[string]string),
	}
	if parsed.PlanInfo != nil {
		model.City = parsed.PlanInfo.City
		model.Style = parsed.PlanInfo.Style
		model.Themes = append(model.Themes, parsed.PlanInfo.Themes...)
	}

	for _, theme := range model.Themes {
		model.ThemeColors[theme] = themeFor(theme).color
	}
	for _, activity := range parsed.Schedule {
		style := themeFor(activity.Theme)
		if activity.Theme != "" {
			model.ThemeColors[activity.Theme] = style.color
		}
		model.Activities = append(model.Activities, response_models.DisplayActivity{
			Activity:   activity,
			ThemeLabel: style.label,
			Color:      style.color,
		})
	}

	return model
}
