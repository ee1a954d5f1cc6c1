package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pawtrip/internal/models/request_models"
	"pawtrip/internal/models/response_models"
)

var sampleActivity = response_models.Activity{
	ID:          "a1",
	Time:        "09:30",
	Title:       "Morning walk",
	Theme:       "nature",
	Location:    "西湖",
	LocationEn:  "West Lake",
	Description: "strolling along the Su Causeway",
}

func TestBuildImagePrompt_Deterministic(t *testing.T) {
	pet := request_models.PetInfo{Type: request_models.PetTypeDog, Name: "豆豆"}
	for _, locale := range []request_models.Locale{request_models.LocaleZh, request_models.LocaleEn} {
		first := BuildImagePrompt(sampleActivity, pet, locale)
		assert.Equal(t, first, BuildImagePrompt(sampleActivity, pet, locale))
		assert.NotEmpty(t, first)
	}
}

func TestBuildImagePrompt_English(t *testing.T) {
	p := BuildImagePrompt(sampleActivity, request_models.PetInfo{Type: request_models.PetTypeCat}, request_models.LocaleEn)

	assert.Contains(t, p, "a cat at West Lake")
	assert.Contains(t, p, "09:30")
	assert.Contains(t, p, "strolling along the Su Causeway")
	assert.Contains(t, p, "1:1")
	assert.NotContains(t, p, "西湖")
}

func TestBuildImagePrompt_Chinese(t *testing.T) {
	p := BuildImagePrompt(sampleActivity, request_models.PetInfo{Type: request_models.PetTypeDog}, request_models.LocaleZh)

	assert.Contains(t, p, "狗狗在西湖")
	assert.NotContains(t, p, "West Lake")
}

func TestBuildImagePrompt_UnknownSpeciesUsesGenericNoun(t *testing.T) {
	en := BuildImagePrompt(sampleActivity, request_models.PetInfo{Type: "hamster"}, request_models.LocaleEn)
	zh := BuildImagePrompt(sampleActivity, request_models.PetInfo{}, request_models.LocaleZh)

	assert.Contains(t, en, "a pet at")
	assert.Contains(t, zh, "宠物在")
}

func TestBuildImagePrompt_EnglishFallsBackToLocation(t *testing.T) {
	a := sampleActivity
	a.LocationEn = ""
	assert.Contains(t, BuildImagePrompt(a, request_models.PetInfo{}, request_models.LocaleEn), "at 西湖")
}

func TestBuildStoryPrompt(t *testing.T) {
	tests := []struct {
		name   string
		pet    request_models.PetInfo
		locale request_models.Locale
		want   []string
	}{
		{
			name:   "english prefers english name",
			pet:    request_models.PetInfo{Type: request_models.PetTypeDog, Name: "豆豆", NameEn: "Bean"},
			locale: request_models.LocaleEn,
			want:   []string{"You are Bean, a dog", "in Hangzhou", "visiting West Lake", "50 and 80"},
		},
		{
			name:   "chinese uses chinese name",
			pet:    request_models.PetInfo{Type: request_models.PetTypeCat, Name: "咪咪", NameEn: "Mimi"},
			locale: request_models.LocaleZh,
			want:   []string{"名叫咪咪的猫咪", "在Hangzhou旅行", "在西湖的经历", "50到80字"},
		},
		{
			name:   "default name",
			pet:    request_models.PetInfo{Type: request_models.PetTypeOther},
			locale: request_models.LocaleEn,
			want:   []string{"You are Pip, a pet"},
		},
		{
			name:   "english falls back to chinese name",
			pet:    request_models.PetInfo{Type: request_models.PetTypeCat, Name: "咪咪"},
			locale: request_models.LocaleEn,
			want:   []string{"You are 咪咪, a cat"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildStoryPrompt(sampleActivity, tt.pet, "Hangzhou", tt.locale)
			assert.Equal(t, p, BuildStoryPrompt(sampleActivity, tt.pet, "Hangzhou", tt.locale))
			for _, w := range tt.want {
				assert.Contains(t, p, w)
			}
		})
	}
}
