package types

import (
	"github.com/go-playground/validator/v10"
)

// PersonalityOverride is an externally supplied personality record.
// Nil fields are left untouched when merged.
type PersonalityOverride struct {
	Formality *int    `json:"formality,omitempty" validate:"omitempty,min=1,max=5"`
	Energy    *int    `json:"energy,omitempty" validate:"omitempty,min=1,max=5"`
	Warmth    *int    `json:"warmth,omitempty" validate:"omitempty,min=1,max=5"`
	Tone      *string `json:"tone,omitempty" validate:"omitempty,max=280"`
	Industry  *string `json:"industry,omitempty" validate:"omitempty,max=80"`
	Tagline   *string `json:"tagline,omitempty" validate:"omitempty,max=200"`
}

// Validate validates the PersonalityOverride using the validator.
func (p *PersonalityOverride) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
