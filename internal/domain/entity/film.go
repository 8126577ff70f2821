// Package entity defines the film-preproduction domain types.
package entity

import "encoding/json"

// Character is one member of the generated cast.
type Character struct {
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Description   string   `json:"description"`
	Traits        []string `json:"traits"`
	SkinColor     string   `json:"skinColor"`
	HairColor     string   `json:"hairColor"`
	ClothingColor string   `json:"clothingColor"`
	Mood          string   `json:"mood"`
	ImageURL      string   `json:"imageUrl,omitempty"`
}

// SoundType classifies a sound asset.
type SoundType string

const (
	SoundTypeMusic    SoundType = "music"
	SoundTypeSFX      SoundType = "sfx"
	SoundTypeDialogue SoundType = "dialogue"
	SoundTypeAmbient  SoundType = "ambient"
)

// Valid reports whether t is one of the known sound types.
func (t SoundType) Valid() bool {
	switch t {
	case SoundTypeMusic, SoundTypeSFX, SoundTypeDialogue, SoundTypeAmbient:
		return true
	}
	return false
}

// SoundAsset is one generated sound cue.
type SoundAsset struct {
	Name        string    `json:"name"`
	Type        SoundType `json:"type"`
	Duration    string    `json:"duration"`
	Description string    `json:"description"`
	Scenes      []string  `json:"scenes"`
	AudioURL    string    `json:"audioUrl,omitempty"`
	JobID       string    `json:"jobId,omitempty"`
}

// Location is one scouted filming location.
type Location struct {
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	Mood            string   `json:"mood"`
	ColorPalette    []string `json:"colorPalette"`
	Features        []string `json:"features"`
	Scenes          []string `json:"scenes"`
	Rating          float64  `json:"rating"`
	LowBudgetNotes  string   `json:"lowBudgetNotes"`
	HighBudgetNotes string   `json:"highBudgetNotes"`
}

// BudgetCategory is one line of the budget breakdown.
type BudgetCategory struct {
	Name         string   `json:"name"`
	Amount       float64  `json:"amount"`
	Percentage   float64  `json:"percentage"`
	Items        []string `json:"items"`
	Tips         []string `json:"tips"`
	Alternatives []string `json:"alternatives"`
}

// ScheduleEntry is an opaque shooting-schedule item, kept exactly as the provider produced it.
type ScheduleEntry = json.RawMessage

// NotableMoment pairs a scene with its sound treatment.
type NotableMoment struct {
	Scene       string `json:"scene"`
	SoundDesign string `json:"soundDesign"`
}

// SoundPlan is the high-level sound design of the film.
type SoundPlan struct {
	OverallStyle   string          `json:"overallStyle"`
	MusicGenres    []string        `json:"musicGenres"`
	KeyEffects     []string        `json:"keyEffects"`
	NotableMoments []NotableMoment `json:"notableMoments"`
}

// StoryboardShot is one planned shot of a scene.
type StoryboardShot struct {
	ShotNumber  int    `json:"shotNumber"`
	ShotType    string `json:"shotType"`
	CameraAngle string `json:"cameraAngle"`
	Description string `json:"description"`
	ImagePrompt string `json:"imagePrompt"`
	Duration    string `json:"duration"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Script is a generated screenplay.
type Script struct {
	Title   string `json:"title"`
	Logline string `json:"logline"`
	Content string `json:"content"`
	Genre   string `json:"genre"`
	Length  string `json:"length"`
	Scenes  int    `json:"scenes"`
}
