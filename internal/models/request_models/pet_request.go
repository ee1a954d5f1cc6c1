package request_models

import "strings"

type PetType string

const (
	PetTypeCat   PetType = "cat"
	PetTypeDog   PetType = "dog"
	PetTypeOther PetType = "other"
)

// ParsePetType reports whether s names a known pet type.
func ParsePetType(s string) (PetType, bool) {
	switch PetType(strings.ToLower(strings.TrimSpace(s))) {
	case PetTypeCat:
		return PetTypeCat, true
	case PetTypeDog:
		return PetTypeDog, true
	case PetTypeOther:
		return PetTypeOther, true
	}
	return PetTypeOther, false
}

// PetInfo is the pet profile as seen by prompt construction.
type PetInfo struct {
	Type   PetType `json:"type"`
	Name   string  `json:"name,omitempty"`
	NameEn string  `json:"nameEn,omitempty"`
}

type SavePetRequest struct {
	Type   string `json:"type" binding:"required"`
	Name   string `json:"name" binding:"max=64"`
	NameEn string `json:"nameEn" binding:"max=64"`
}
