package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Step discriminators.
const (
	StepGenerateCharacters = "generate-characters"
	StepGeneratePortrait   = "generate-portrait"
	StepGenerateFrameImage = "generate-frame-image"
	StepGenerateShots      = "generate-shots"
)

// StepError reports a missing or unknown step discriminator.
type StepError struct {
	Step    string
	Allowed []string
}

func (e *StepError) Error() string {
	if e.Step == "" {
		return fmt.Sprintf("step is required, one of %q", e.Allowed)
	}
	return fmt.Sprintf("unknown step %q, expected one of %q", e.Step, e.Allowed)
}

func readStep(data []byte) (string, error) {
	var head struct {
		Step string `json:"step"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "", err
	}
	return head.Step, nil
}

// CharactersRequest is the body of POST /characters. Exactly one variant is set.
type CharactersRequest struct {
	Step     string                     `json:"step"`
	Generate *GenerateCharactersRequest `json:"-" variant:"generate"`
	Portrait *GeneratePortraitRequest   `json:"-" variant:"portrait"`
}

func (r *CharactersRequest) UnmarshalJSON(data []byte) error {
	step, err := readStep(data)
	if err != nil {
		return err
	}
	*r = CharactersRequest{Step: step}
	switch step {
	case StepGenerateCharacters:
		r.Generate = &GenerateCharactersRequest{}
		return json.Unmarshal(data, r.Generate)
	case StepGeneratePortrait:
		r.Portrait = &GeneratePortraitRequest{}
		return json.Unmarshal(data, r.Portrait)
	default:
		return &StepError{Step: step, Allowed: []string{StepGenerateCharacters, StepGeneratePortrait}}
	}
}

// StoryboardRequest is the body of POST /storyboard. Exactly one variant is set.
type StoryboardRequest struct {
	Step  string                `json:"step"`
	Frame *GenerateFrameRequest `json:"-" variant:"frame"`
	Shots *GenerateShotsRequest `json:"-" variant:"shots"`
}

func (r *StoryboardRequest) UnmarshalJSON(data []byte) error {
	step, err := readStep(data)
	if err != nil {
		return err
	}
	*r = StoryboardRequest{Step: step}
	switch step {
	case StepGenerateFrameImage:
		r.Frame = &GenerateFrameRequest{}
		return json.Unmarshal(data, r.Frame)
	case StepGenerateShots:
		r.Shots = &GenerateShotsRequest{}
		return json.Unmarshal(data, r.Shots)
	default:
		return &StepError{Step: step, Allowed: []string{StepGenerateFrameImage, StepGenerateShots}}
	}
}

// SoundRequest is the body of POST /sound. A body carrying "script" selects the asset
// variant; anything else is the plan variant.
type SoundRequest struct {
	Plan   *SoundPlanRequest   `json:"-" variant:"plan"`
	Assets *SoundAssetsRequest `json:"-" variant:"assets"`
}

func (r *SoundRequest) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	*r = SoundRequest{}
	if raw, ok := keys["script"]; ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		r.Assets = &SoundAssetsRequest{}
		return json.Unmarshal(data, r.Assets)
	}
	r.Plan = &SoundPlanRequest{}
	return json.Unmarshal(data, r.Plan)
}
