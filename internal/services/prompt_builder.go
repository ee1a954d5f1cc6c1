package services

import (
	"fmt"
	"strings"

	"pawtrip/internal/models/request_models"
	"pawtrip/internal/models/response_models"
)

const DefaultPetName = "Pip"

var speciesNouns = map[request_models.Locale]map[request_models.PetType]string{
	request_models.LocaleZh: {
		request_models.PetTypeCat:   "猫咪",
		request_models.PetTypeDog:   "狗狗",
		request_models.PetTypeOther: "宠物",
	},
	request_models.LocaleEn: {
		request_models.PetTypeCat:   "cat",
		request_models.PetTypeDog:   "dog",
		request_models.PetTypeOther: "pet",
	},
}

func speciesNoun(petType request_models.PetType, locale request_models.Locale) string {
	nouns := speciesNouns[locale]
	if nouns == nil {
		nouns = speciesNouns[request_models.LocaleZh]
	}
	if noun, ok := nouns[petType]; ok {
		return noun
	}
	return nouns[request_models.PetTypeOther]
}

func localizedLocation(activity response_models.Activity, locale request_models.Locale) string {
	if locale == request_models.LocaleEn && strings.TrimSpace(activity.LocationEn) != "" {
		return strings.TrimSpace(activity.LocationEn)
	}
	return strings.TrimSpace(activity.Location)
}

func petName(pet request_models.PetInfo, locale request_models.Locale) string {
	candidates := []string{pet.Name, pet.NameEn}
	if locale == request_models.LocaleEn {
		candidates = []string{pet.NameEn, pet.Name}
	}
	for _, name := range candidates {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	return DefaultPetName
}

// BuildImagePrompt describes a candid square photo of the pet at the
// activity's location. Same input, same output.
func BuildImagePrompt(activity response_models.Activity, pet request_models.PetInfo, locale request_models.Locale) string {
	species := speciesNoun(pet.Type, locale)
	location := localizedLocation(activity, locale)
	description := strings.TrimSpace(activity.Description)
	at := strings.TrimSpace(activity.Time)

	if locale == request_models.LocaleEn {
		return fmt.Sprintf(
			"A candid travel snapshot of a %s at %s around %s. Scene: %s. "+
				"Photographic style, natural light, shot like a phone photo by the owner, "+
				"square 1:1 aspect ratio, warm and cheerful mood.",
			species, location, at, description)
	}

	return fmt.Sprintf(
		"一张%s在%s的旅行抓拍照片，时间大约是%s。画面内容：%s。"+
			"写实摄影风格，自然光线，像主人用手机随手拍下的瞬间，"+
			"1:1正方形构图，温暖愉快的氛围。",
		species, location, at, description)
}

// BuildStoryPrompt asks for a short first-person diary line written as the
// pet. The length target is an instruction only.
func BuildStoryPrompt(activity response_models.Activity, pet request_models.PetInfo, cityName string, locale request_models.Locale) string {
	name := petName(pet, locale)
	species := speciesNoun(pet.Type, locale)
	location := localizedLocation(activity, locale)
	description := strings.TrimSpace(activity.Description)
	city := strings.TrimSpace(cityName)

	if locale == request_models.LocaleEn {
		return fmt.Sprintf(
			"You are %s, a %s travelling in %s with your owner. "+
				"Write a first-person pet diary entry about visiting %s: %s. "+
				"Keep it between 50 and 80 characters, playful and warm, no hashtags.",
			name, species, city, location, description)
	}

	return fmt.Sprintf(
		"你是一只名叫%s的%s，正在和主人一起在%s旅行。"+
			"请用第一人称写一段宠物日记，讲述你在%s的经历：%s。"+
			"字数控制在50到80字之间，语气俏皮温暖，不要使用话题标签。",
		name, species, city, location, description)
}
