package response_models

type ImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

type StoryResponse struct {
	Story string `json:"story"`
}

// TripContentResponse reports both halves of a trip-content request. A half
// that failed has an empty value and a message in its error field.
type TripContentResponse struct {
	DiaryID    string `json:"diaryId,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
	Story      string `json:"story,omitempty"`
	ImageError string `json:"imageError,omitempty"`
	StoryError string `json:"storyError,omitempty"`
}

type PlanResponse struct {
	Plan    ParsedTripPlan `json:"plan"`
	Display *DisplayModel  `json:"display"`
}

type DiaryEntryResponse struct {
	ID         string `json:"id"`
	ActivityID string `json:"activityId"`
	City       string `json:"city"`
	Location   string `json:"location"`
	Locale     string `json:"locale"`
	ImageURL   string `json:"imageUrl,omitempty"`
	Story      string `json:"story,omitempty"`
	CreatedAt  string `json:"createdAt"`
}
