package response_models

type DisplayActivity struct {
	Activity
	ThemeLabel string `json:"themeLabel"`
	Color      string `json:"color"`
}

// DisplayModel is the render-ready form of a trip plan.
type DisplayModel struct {
	City          string            `json:"city"`
	Style         string            `json:"style"`
	Themes        []string          `json:"themes"`
	ActivityCount int               `json:"activityCount"`
	Activities    []DisplayActivity `json:"activities"`
	ThemeColors   map[string]string `json:"themeColors"`
}
