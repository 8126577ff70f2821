package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"film-forge-api/internal/domain/entity"
	apperrors "film-forge-api/pkg/errors"
)

// placeholderNames are the generic location names a provider emits when it ignored the script.
var placeholderNames = []string{"primary location", "secondary location", "climax location"}

// collection parses raw and returns the value under key. A bare top-level array is accepted.
func collection(what, raw, key string) (any, error) {
	doc, err := ExtractJSON(raw)
	if err != nil {
		return nil, apperrors.Malformed(what, err, raw)
	}
	v, err := decode(doc)
	if err != nil {
		return nil, apperrors.Malformed(what, err, raw)
	}
	switch top := v.(type) {
	case []any:
		return top, nil
	case object:
		field, ok := top[key]
		if !ok {
			return nil, apperrors.Malformed(what, fmt.Errorf("missing field %q", key), raw)
		}
		return field, nil
	default:
		return nil, apperrors.Malformed(what, fmt.Errorf("unexpected top-level %T", v), raw)
	}
}

// Budget normalizes a {"categories": [...]} response.
func Budget(raw string) ([]entity.BudgetCategory, error) {
	v, err := collection("budget", raw, "categories")
	if err != nil {
		return nil, err
	}
	items := objects(v)
	out := make([]entity.BudgetCategory, 0, len(items))
	for _, o := range items {
		out = append(out, BudgetCategory(o))
	}
	if len(out) == 0 {
		return nil, apperrors.EmptyResult("no budget categories were generated, try a more detailed genre or script length")
	}
	return out, nil
}

// BudgetCategory coerces one category object.
func BudgetCategory(o map[string]any) entity.BudgetCategory {
	return entity.BudgetCategory{
		Name:         str(o["name"]),
		Amount:       number(o["amount"]),
		Percentage:   number(o["percentage"]),
		Items:        strs(o["items"]),
		Tips:         strs(o["tips"]),
		Alternatives: strs(o["alternatives"]),
	}
}

// Characters normalizes a {"characters": [...]} response.
func Characters(raw string) ([]entity.Character, error) {
	v, err := collection("characters", raw, "characters")
	if err != nil {
		return nil, err
	}
	items := objects(v)
	out := make([]entity.Character, 0, len(items))
	for _, o := range items {
		out = append(out, Character(o))
	}
	if len(out) == 0 {
		return nil, apperrors.EmptyResult("no characters were found, the script may be too short to describe a cast")
	}
	return out, nil
}

// Character coerces one character object.
func Character(o map[string]any) entity.Character {
	return entity.Character{
		Name:          str(o["name"]),
		Role:          str(o["role"]),
		Description:   str(o["description"]),
		Traits:        strs(o["traits"]),
		SkinColor:     str(o["skinColor"]),
		HairColor:     str(o["hairColor"]),
		ClothingColor: str(o["clothingColor"]),
		Mood:          str(o["mood"]),
		ImageURL:      str(o["imageUrl"]),
	}
}

// Locations normalizes a {"locations": [...]} response and rejects placeholder-only output.
func Locations(raw string) ([]entity.Location, error) {
	v, err := collection("locations", raw, "locations")
	if err != nil {
		return nil, err
	}
	items := objects(v)
	out := make([]entity.Location, 0, len(items))
	for _, o := range items {
		out = append(out, Location(o))
	}
	if len(out) == 0 {
		return nil, apperrors.EmptyResult("no locations were generated, try a longer or more descriptive script")
	}
	if AllPlaceholders(out) {
		return nil, apperrors.EmptyResult("only generic placeholder locations were generated, the script needs more concrete settings")
	}
	return out, nil
}

// Location coerces one location object.
func Location(o map[string]any) entity.Location {
	return entity.Location{
		Name:            str(o["name"]),
		Type:            str(o["type"]),
		Description:     str(o["description"]),
		Mood:            str(o["mood"]),
		ColorPalette:    strs(o["colorPalette"]),
		Features:        strs(o["features"]),
		Scenes:          strs(o["scenes"]),
		Rating:          number(o["rating"]),
		LowBudgetNotes:  str(o["lowBudgetNotes"]),
		HighBudgetNotes: str(o["highBudgetNotes"]),
	}
}

// IsPlaceholderName reports whether name contains a known placeholder pattern.
func IsPlaceholderName(name string) bool {
	lower := strings.ToLower(name)
	for _, p := range placeholderNames {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// AllPlaceholders reports whether every location carries a placeholder name.
func AllPlaceholders(locations []entity.Location) bool {
	if len(locations) == 0 {
		return false
	}
	for _, l := range locations {
		if !IsPlaceholderName(l.Name) {
			return false
		}
	}
	return true
}

// Schedule normalizes a {"schedule": [...]} response. Entries are kept verbatim.
func Schedule(raw string) ([]entity.ScheduleEntry, error) {
	doc, err := ExtractJSON(raw)
	if err != nil {
		return nil, apperrors.Malformed("schedule", err, raw)
	}

	var items []json.RawMessage
	body := []byte(doc)
	switch body[0] {
	case '[':
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, apperrors.Malformed("schedule", err, raw)
		}
	case '{':
		var top map[string]json.RawMessage
		if err := json.Unmarshal(body, &top); err != nil {
			return nil, apperrors.Malformed("schedule", err, raw)
		}
		field, ok := top["schedule"]
		if !ok {
			return nil, apperrors.Malformed("schedule", fmt.Errorf("missing field %q", "schedule"), raw)
		}
		if err := json.Unmarshal(field, &items); err != nil {
			items = nil
		}
	default:
		return nil, apperrors.Malformed("schedule", fmt.Errorf("unexpected top-level value"), raw)
	}

	out := make([]entity.ScheduleEntry, 0, len(items))
	for _, item := range items {
		if len(item) == 0 || bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			continue
		}
		out = append(out, entity.ScheduleEntry(item))
	}
	if len(out) == 0 {
		return nil, apperrors.EmptyResult("no schedule entries were generated, try a longer script")
	}
	return out, nil
}

// SoundPlan normalizes a sound plan, either bare or under "soundPlan".
func SoundPlan(raw string) (*entity.SoundPlan, error) {
	doc, err := ExtractJSON(raw)
	if err != nil {
		return nil, apperrors.Malformed("sound plan", err, raw)
	}
	v, err := decode(doc)
	if err != nil {
		return nil, apperrors.Malformed("sound plan", err, raw)
	}
	o, ok := v.(object)
	if !ok {
		return nil, apperrors.Malformed("sound plan", fmt.Errorf("unexpected top-level %T", v), raw)
	}
	if nested, ok := o["soundPlan"].(object); ok {
		o = nested
	}
	if _, ok := o["overallStyle"]; !ok {
		if _, ok := o["musicGenres"]; !ok {
			return nil, apperrors.Malformed("sound plan", fmt.Errorf("missing field %q", "overallStyle"), raw)
		}
	}

	moments := objects(o["notableMoments"])
	plan := &entity.SoundPlan{
		OverallStyle:   str(o["overallStyle"]),
		MusicGenres:    dedupe(strs(o["musicGenres"])),
		KeyEffects:     strs(o["keyEffects"]),
		NotableMoments: make([]entity.NotableMoment, 0, len(moments)),
	}
	for _, m := range moments {
		plan.NotableMoments = append(plan.NotableMoments, entity.NotableMoment{
			Scene:       text(m["scene"]),
			SoundDesign: str(m["soundDesign"]),
		})
	}
	return plan, nil
}

// SoundAssets normalizes a {"soundAssets": [...]} response.
func SoundAssets(raw string) ([]entity.SoundAsset, error) {
	v, err := collection("sound assets", raw, "soundAssets")
	if err != nil {
		return nil, err
	}
	items := objects(v)
	out := make([]entity.SoundAsset, 0, len(items))
	for _, o := range items {
		out = append(out, SoundAsset(o))
	}
	if len(out) == 0 {
		return nil, apperrors.EmptyResult("no sound assets were generated, try a script with more scenes")
	}
	return out, nil
}

// SoundAsset coerces one sound asset object. Unknown types become sfx.
func SoundAsset(o map[string]any) entity.SoundAsset {
	t := entity.SoundType(strings.ToLower(strings.TrimSpace(str(o["type"]))))
	if !t.Valid() {
		t = entity.SoundTypeSFX
	}
	return entity.SoundAsset{
		Name:        str(o["name"]),
		Type:        t,
		Duration:    text(o["duration"]),
		Description: str(o["description"]),
		Scenes:      strs(o["scenes"]),
		AudioURL:    str(o["audioUrl"]),
		JobID:       str(o["jobId"]),
	}
}

// StoryboardShots normalizes a {"shots": [...]} response.
func StoryboardShots(raw string) ([]entity.StoryboardShot, error) {
	v, err := collection("storyboard", raw, "shots")
	if err != nil {
		return nil, err
	}
	items := objects(v)
	out := make([]entity.StoryboardShot, 0, len(items))
	for _, o := range items {
		out = append(out, entity.StoryboardShot{
			ShotNumber:  int(number(o["shotNumber"])),
			ShotType:    str(o["shotType"]),
			CameraAngle: str(o["cameraAngle"]),
			Description: str(o["description"]),
			ImagePrompt: str(o["imagePrompt"]),
			Duration:    text(o["duration"]),
			ImageURL:    str(o["imageUrl"]),
		})
	}
	if len(out) == 0 {
		return nil, apperrors.EmptyResult("no shots were generated, try a more detailed scene description")
	}
	return out, nil
}

// Script normalizes a screenplay. JSON output is unpacked; plain text is taken as the content.
func Script(raw string) (*entity.Script, error) {
	body := StripCodeFences(raw)
	script := &entity.Script{}

	if doc, err := ExtractJSON(raw); err == nil && strings.HasPrefix(doc, "{") {
		if v, err := decode(doc); err == nil {
			if o, ok := v.(object); ok {
				script.Title = str(o["title"])
				script.Logline = str(o["logline"])
				script.Content = str(o["script"])
				if script.Content == "" {
					script.Content = str(o["content"])
				}
				script.Scenes = int(number(o["scenes"]))
			}
		}
	} else {
		script.Content = body
	}

	if strings.TrimSpace(script.Content) == "" {
		return nil, apperrors.EmptyResult("the script came back empty, try a more detailed movie idea")
	}
	return script, nil
}
