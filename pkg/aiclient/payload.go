package aiclient

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// PayloadKind tags the shape a generation payload was recognised as.
type PayloadKind int

const (
	PayloadUnknown PayloadKind = iota
	PayloadDirectURL
	PayloadEmbeddedURLString
	PayloadBase64String
	PayloadStructuredContent
	PayloadPlainText
	PayloadNestedMessage
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadDirectURL:
		return "direct_url"
	case PayloadEmbeddedURLString:
		return "embedded_url_string"
	case PayloadBase64String:
		return "base64_string"
	case PayloadStructuredContent:
		return "structured_content"
	case PayloadPlainText:
		return "plain_text"
	case PayloadNestedMessage:
		return "nested_message"
	default:
		return "unknown"
	}
}

// Payload is a classified generation result. Value is already normalised:
// base64 image data is wrapped into a data: URI.
type Payload struct {
	Kind  PayloadKind
	Value string
}

const pngDataURIPrefix = "data:image/png;base64,"

var (
	embeddedImageURL = regexp.MustCompile(`(?i)https?://[^\s"'<>]+\.(?:jpg|jpeg|png|gif|webp)`)
	// Any string made only of base64 characters is taken as image data. This
	// cannot tell a short plain-text answer apart from real image bytes.
	base64Body = regexp.MustCompile(`^[A-Za-z0-9+/=\s]+$`)
)

// ClassifyImagePayload matches raw against the image shapes in a fixed order:
// an object with image_url, a string embedding an image URL, then a string
// holding a data: URI or bare base64 data.
func ClassifyImagePayload(raw []byte) (Payload, error) {
	r := gjson.ParseBytes(raw)

	if r.IsObject() {
		if u := r.Get("image_url"); u.Type == gjson.String && strings.TrimSpace(u.Str) != "" {
			return Payload{Kind: PayloadDirectURL, Value: strings.TrimSpace(u.Str)}, nil
		}
		return Payload{}, &ExtractionError{Modality: ModalityImage, Reason: "object payload has no image_url"}
	}

	if r.Type != gjson.String {
		return Payload{}, &ExtractionError{Modality: ModalityImage, Reason: "unsupported payload type"}
	}

	s := r.Str
	if m := embeddedImageURL.FindString(s); m != "" {
		return Payload{Kind: PayloadEmbeddedURLString, Value: m}, nil
	}

	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		return Payload{Kind: PayloadBase64String, Value: s}, nil
	}
	if s != "" && base64Body.MatchString(s) {
		return Payload{Kind: PayloadBase64String, Value: pngDataURIPrefix + s}, nil
	}

	return Payload{}, &ExtractionError{Modality: ModalityImage, Reason: "string payload is neither an image URL nor base64 data"}
}

// ClassifyStoryPayload matches raw against the story shapes in a fixed order:
// an object with content, a plain string, then an object with message.content.
func ClassifyStoryPayload(raw []byte) (Payload, error) {
	r := gjson.ParseBytes(raw)

	if r.IsObject() {
		if c := r.Get("content"); c.Type == gjson.String && strings.TrimSpace(c.Str) != "" {
			return Payload{Kind: PayloadStructuredContent, Value: strings.TrimSpace(c.Str)}, nil
		}
	}

	if r.Type == gjson.String && strings.TrimSpace(r.Str) != "" {
		return Payload{Kind: PayloadPlainText, Value: strings.TrimSpace(r.Str)}, nil
	}

	if r.IsObject() {
		if c := r.Get("message.content"); c.Type == gjson.String && strings.TrimSpace(c.Str) != "" {
			return Payload{Kind: PayloadNestedMessage, Value: strings.TrimSpace(c.Str)}, nil
		}
	}

	return Payload{}, &ExtractionError{Modality: ModalityStory, Reason: "no content, text or message.content in payload"}
}
