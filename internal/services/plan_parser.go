package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"pawtrip/internal/models/response_models"
)

// A plan may arrive as a JSON string holding the plan; unwrap at most this
// many levels.
const maxStringUnwrap = 2

type planError struct {
	path   string
	reason string
}

func (e *planError) Error() string {
	if e.path == "" {
		return e.reason
	}
	return e.path + ": " + e.reason
}

func failedPlan(err error) response_models.ParsedTripPlan {
	return response_models.ParsedTripPlan{Success: false, Error: err.Error()}
}

// ParseTripPlan validates an untrusted AI trip-plan payload. It never
// panics; every failure is reported through Success and Error.
func ParseTripPlan(raw []byte) response_models.ParsedTripPlan {
	root, err := decodePlanRoot(string(raw))
	if err != nil {
		return failedPlan(err)
	}

	info, err := parsePlanInfo(root.Get("planInfo"))
	if err != nil {
		return failedPlan(err)
	}

	schedule, err := parseSchedule(root.Get("schedule"))
	if err != nil {
		return failedPlan(err)
	}

	if len(info.Themes) == 0 {
		info.Themes = scheduleThemes(schedule)
	}
	info.TotalActivities = len(schedule)

	return response_models.ParsedTripPlan{
		Success:  true,
		PlanInfo: info,
		Schedule: schedule,
	}
}

func decodePlanRoot(text string) (gjson.Result, error) {
	for depth := 0; ; depth++ {
		text = strings.TrimSpace(text)
		if text == "" {
			return gjson.Result{}, &planError{reason: "payload is empty"}
		}
		if !gjson.Valid(text) {
			text = stripCodeFence(text)
			if !gjson.Valid(text) {
				return gjson.Result{}, &planError{reason: "payload is not valid JSON"}
			}
		}

		r := gjson.Parse(text)
		switch {
		case r.IsObject():
			return r, nil
		case r.Type == gjson.String && depth < maxStringUnwrap:
			text = r.Str
		default:
			return gjson.Result{}, &planError{reason: "payload must be a JSON object"}
		}
	}
}

// stripCodeFence extracts the body of a markdown code block such as
// "```json\n{...}\n```", ignoring prose around it.
func stripCodeFence(text string) string {
	start := strings.Index(text, "```")
	if start < 0 {
		return text
	}
	body := text[start+3:]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	}
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

func parsePlanInfo(v gjson.Result) (*response_models.PlanInfo, error) {
	if !v.IsObject() {
		return nil, &planError{path: "planInfo", reason: "missing or not an object"}
	}

	city, err := requiredString(v, "city", "planInfo")
	if err != nil {
		return nil, err
	}
	style, err := optionalString(v, "style", "planInfo")
	if err != nil {
		return nil, err
	}
	themes, err := stringSet(v, "themes", "planInfo")
	if err != nil {
		return nil, err
	}

	return &response_models.PlanInfo{
		City:   city,
		Style:  style,
		Themes: themes,
	}, nil
}

func parseSchedule(v gjson.Result) ([]response_models.Activity, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return nil, &planError{path: "schedule", reason: "missing"}
	}
	if !v.IsArray() {
		return nil, &planError{path: "schedule", reason: "must be an array"}
	}

	items := v.Array()
	if len(items) == 0 {
		return nil, &planError{path: "schedule", reason: "must contain at least one activity"}
	}

	schedule := make([]response_models.Activity, 0, len(items))
	seen := make(map[string]int, len(items))
	for i, item := range items {
		activity, err := parseActivity(item, i)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[activity.ID]; dup {
			return nil, &planError{
				path:   fmt.Sprintf("schedule[%d].id", i),
				reason: fmt.Sprintf("duplicate id %q (first used by schedule[%d])", activity.ID, first),
			}
		}
		seen[activity.ID] = i
		schedule = append(schedule, activity)
	}

	return schedule, nil
}

func parseActivity(v gjson.Result, index int) (response_models.Activity, error) {
	path := fmt.Sprintf("schedule[%d]", index)
	if !v.IsObject() {
		return response_models.Activity{}, &planError{path: path, reason: "must be an object"}
	}

	id, err := activityID(v.Get("id"), index, path)
	if err != nil {
		return response_models.Activity{}, err
	}

	var a response_models.Activity
	a.ID = id
	if a.Time, err = requiredString(v, "time", path); err != nil {
		return a, err
	}
	if a.Title, err = requiredString(v, "title", path); err != nil {
		return a, err
	}
	if a.Location, err = requiredString(v, "location", path); err != nil {
		return a, err
	}
	if a.Theme, err = optionalString(v, "theme", path); err != nil {
		return a, err
	}
	if a.LocationEn, err = optionalString(v, "locationEn", path); err != nil {
		return a, err
	}
	if a.Duration, err = optionalString(v, "duration", path); err != nil {
		return a, err
	}
	if a.Description, err = optionalString(v, "description", path); err != nil {
		return a, err
	}
	if a.Tags, err = stringSet(v, "tags", path); err != nil {
		return a, err
	}

	return a, nil
}

// activityID accepts a string or a number. A missing or blank id becomes
// "activity-<n>" where n is the 1-based position in the schedule.
func activityID(v gjson.Result, index int, path string) (string, error) {
	switch v.Type {
	case gjson.Null:
		return "activity-" + strconv.Itoa(index+1), nil
	case gjson.String:
		if id := strings.TrimSpace(v.Str); id != "" {
			return id, nil
		}
		return "activity-" + strconv.Itoa(index+1), nil
	case gjson.Number:
		return v.Raw, nil
	default:
		return "", &planError{path: path + ".id", reason: "must be a string or number"}
	}
}

func requiredString(obj gjson.Result, key, path string) (string, error) {
	v := obj.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return "", &planError{path: path + "." + key, reason: "required"}
	}
	if v.Type != gjson.String {
		return "", &planError{path: path + "." + key, reason: "must be a string"}
	}
	s := strings.TrimSpace(v.Str)
	if s == "" {
		return "", &planError{path: path + "." + key, reason: "must not be empty"}
	}
	return s, nil
}

func optionalString(obj gjson.Result, key, path string) (string, error) {
	v := obj.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return "", nil
	}
	if v.Type != gjson.String {
		return "", &planError{path: path + "." + key, reason: "must be a string"}
	}
	return strings.TrimSpace(v.Str), nil
}

// stringSet reads an optional array of strings, dropping blanks and
// repeats while keeping first-seen order. Absent means empty, never nil.
func stringSet(obj gjson.Result, key, path string) ([]string, error) {
	out := []string{}
	v := obj.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return out, nil
	}
	if !v.IsArray() {
		return nil, &planError{path: path + "." + key, reason: "must be an array of strings"}
	}

	seen := make(map[string]struct{})
	for i, item := range v.Array() {
		if item.Type != gjson.String {
			return nil, &planError{path: fmt.Sprintf("%s.%s[%d]", path, key, i), reason: "must be a string"}
		}
		s := strings.TrimSpace(item.Str)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}

func scheduleThemes(schedule []response_models.Activity) []string {
	themes := []string{}
	seen := make(map[string]struct{})
	for _, a := range schedule {
		if a.Theme == "" {
			continue
		}
		if _, ok := seen[a.Theme]; ok {
			continue
		}
		seen[a.Theme] = struct{}{}
		themes = append(themes, a.Theme)
	}
	return themes
}
