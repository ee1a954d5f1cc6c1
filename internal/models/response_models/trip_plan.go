package response_models

// Activity is one scheduled stop of a trip day. Once parsed it is not
// modified; Tags holds each tag once, in first-seen order.
type Activity struct {
	ID          string   `json:"id"`
	Time        string   `json:"time"`
	Title       string   `json:"title"`
	Theme       string   `json:"theme"`
	Location    string   `json:"location"`
	LocationEn  string   `json:"locationEn,omitempty"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type PlanInfo struct {
	City            string   `json:"city"`
	Style           string   `json:"style"`
	Themes          []string `json:"themes"`
	TotalActivities int      `json:"totalActivities"`
}

// ParsedTripPlan is the validated form of an AI trip-plan payload. When
// Success is false only Error is set.
type ParsedTripPlan struct {
	Success  bool       `json:"success"`
	Error    string     `json:"error,omitempty"`
	PlanInfo *PlanInfo  `json:"planInfo,omitempty"`
	Schedule []Activity `json:"schedule,omitempty"`
}
