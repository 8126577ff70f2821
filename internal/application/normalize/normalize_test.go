package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"film-forge-api/internal/domain/entity"
	apperrors "film-forge-api/pkg/errors"
)

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("Here you go:\n```\n{\"a\":1}\n```\nEnjoy"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("  {\"a\":1}  "))
}

func TestExtractJSON(t *testing.T) {
	doc, err := ExtractJSON(`Sure! {"categories": []} Let me know.`)
	require.NoError(t, err)
	assert.Equal(t, `{"categories": []}`, doc)

	doc, err = ExtractJSON("[1, 2]")
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]", doc)

	doc, err = ExtractJSON(`Here is the budget: {"categories": [{"name": "Cast"}]} Let me know if you want {more detail}.`)
	require.NoError(t, err)
	assert.Equal(t, `{"categories": [{"name": "Cast"}]}`, doc)

	doc, err = ExtractJSON(`Notes [draft] follow: {"locations": []} and {another}`)
	require.NoError(t, err)
	assert.Equal(t, `{"locations": []}`, doc)

	_, err = ExtractJSON("I cannot help with that.")
	assert.Error(t, err)

	_, err = ExtractJSON("Broken {\"categories\": [")
	assert.Error(t, err)

	_, err = ExtractJSON("   ")
	assert.Error(t, err)
}

func TestBudget_JSONFollowedByProseWithBraces(t *testing.T) {
	got, err := Budget(`Here is the budget: {"categories": [{"name": "Cast", "amount": 1000}]} Let me know if you want {more detail}.`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cast", got[0].Name)
	assert.Equal(t, float64(1000), got[0].Amount)
}

func TestBudget_DefaultsForMalformedFields(t *testing.T) {
	raw := "```json\n" + `{"categories": [
		{"name": "Cast", "amount": "12,000", "percentage": "30%", "items": "actors", "tips": null},
		{"amount": true, "alternatives": ["Crowdfund", 7, {"x": 1}]},
		"not an object"
	]}` + "\n```"

	got, err := Budget(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, entity.BudgetCategory{
		Name:         "Cast",
		Amount:       12000,
		Percentage:   30,
		Items:        []string{},
		Tips:         []string{},
		Alternatives: []string{},
	}, got[0])

	assert.Equal(t, "", got[1].Name)
	assert.Equal(t, float64(0), got[1].Amount)
	assert.Equal(t, float64(0), got[1].Percentage)
	assert.NotNil(t, got[1].Items)
	assert.NotNil(t, got[1].Tips)
	assert.Equal(t, []string{"Crowdfund", "7"}, got[1].Alternatives)

	b, err := json.Marshal(got[1])
	require.NoError(t, err)
	assert.NotContains(t, string(b), "null")
}

func TestBudget_EmptyAndMalformed(t *testing.T) {
	_, err := Budget(`{"categories": []}`)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeEmptyResult))

	_, err = Budget(`{"categories": "none"}`)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeEmptyResult))

	_, err = Budget(`{"budget": [{"name": "Cast"}]}`)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeMalformedResponse))

	_, err = Budget("the model refused")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeMalformedResponse))
}

func TestBudget_BareArrayAccepted(t *testing.T) {
	got, err := Budget(`[{"name": "Crew", "amount": 500}]`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, float64(500), got[0].Amount)
}

func TestLocations_Defaults(t *testing.T) {
	got, err := Locations(`{"locations": [{"name": "Harbor", "rating": "n/a", "scenes": [1, 4], "colorPalette": "blue"}]}`)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, entity.Location{
		Name:         "Harbor",
		ColorPalette: []string{},
		Features:     []string{},
		Scenes:       []string{"1", "4"},
	}, got[0])
}

func TestLocations_AllPlaceholdersRejected(t *testing.T) {
	raw := `{"locations": [
		{"name": "Primary Location"},
		{"name": "the SECONDARY LOCATION (interior)"},
		{"name": "Climax location"}
	]}`
	_, err := Locations(raw)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeEmptyResult))
}

func TestLocations_MixedPlaceholdersAccepted(t *testing.T) {
	got, err := Locations(`{"locations": [{"name": "Primary Location"}, {"name": "Abandoned Mill"}]}`)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSchedule(t *testing.T) {
	got, err := Schedule(`{"schedule": [{"day": 1, "scenes": ["1A"]}, null, "free-form"]}`)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.JSONEq(t, `{"day": 1, "scenes": ["1A"]}`, string(got[0]))
	assert.JSONEq(t, `"free-form"`, string(got[1]))

	_, err = Schedule(`{"schedule": []}`)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeEmptyResult))

	_, err = Schedule(`{"days": []}`)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeMalformedResponse))
}

func TestSoundPlan(t *testing.T) {
	got, err := SoundPlan(`{"soundPlan": {"overallStyle": "Noir", "musicGenres": ["Jazz", "jazz", "Blues"], "notableMoments": [{"scene": 3, "soundDesign": "rain"}, "x"]}}`)
	require.NoError(t, err)

	assert.Equal(t, "Noir", got.OverallStyle)
	assert.Equal(t, []string{"Jazz", "Blues"}, got.MusicGenres)
	assert.Equal(t, []string{}, got.KeyEffects)
	assert.Equal(t, []entity.NotableMoment{{Scene: "3", SoundDesign: "rain"}}, got.NotableMoments)

	got, err = SoundPlan(`{"overallStyle": "Ambient"}`)
	require.NoError(t, err)
	assert.NotNil(t, got.NotableMoments)
	assert.Empty(t, got.NotableMoments)

	_, err = SoundPlan(`{"style": "x"}`)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeMalformedResponse))
}

func TestSoundAssets_UnknownTypeBecomesSFX(t *testing.T) {
	got, err := SoundAssets(`{"soundAssets": [
		{"name": "Theme", "type": "Music", "duration": 90},
		{"name": "Creak", "type": "foley", "duration": "0:03"}
	]}`)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, entity.SoundTypeMusic, got[0].Type)
	assert.Equal(t, "90", got[0].Duration)
	assert.Equal(t, entity.SoundTypeSFX, got[1].Type)
	assert.Equal(t, []string{}, got[1].Scenes)
}

func TestScript(t *testing.T) {
	got, err := Script(`{"title": "Tide", "script": "FADE IN:"}`)
	require.NoError(t, err)
	assert.Equal(t, "Tide", got.Title)
	assert.Equal(t, "FADE IN:", got.Content)

	got, err = Script("FADE IN:\n\nINT. LIGHTHOUSE - NIGHT [storm]")
	require.NoError(t, err)
	assert.Contains(t, got.Content, "LIGHTHOUSE")

	_, err = Script("   ")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeEmptyResult))
}

func TestNormalize_WellFormedIsNoOp(t *testing.T) {
	t.Run("budget", func(t *testing.T) {
		in := []entity.BudgetCategory{{
			Name: "Cast", Amount: 12000.5, Percentage: 30,
			Items: []string{"Lead"}, Tips: []string{"Use locals"}, Alternatives: []string{},
		}}
		assertRoundTrip(t, map[string]any{"categories": in}, Budget, in)
	})
	t.Run("characters", func(t *testing.T) {
		in := []entity.Character{{
			Name: "Mara", Role: "Lead", Description: "A keeper", Traits: []string{"stoic", "kind"},
			SkinColor: "olive", HairColor: "black", ClothingColor: "grey", Mood: "calm",
			ImageURL: "https://img.example.com/m.png",
		}}
		assertRoundTrip(t, map[string]any{"characters": in}, Characters, in)
	})
	t.Run("locations", func(t *testing.T) {
		in := []entity.Location{{
			Name: "Lighthouse", Type: "exterior", Description: "Cliff", Mood: "lonely",
			ColorPalette: []string{"grey"}, Features: []string{"lamp"}, Scenes: []string{"1"},
			Rating: 4.5, LowBudgetNotes: "local", HighBudgetNotes: "crane",
		}}
		assertRoundTrip(t, map[string]any{"locations": in}, Locations, in)
	})
	t.Run("sound assets", func(t *testing.T) {
		in := []entity.SoundAsset{{
			Name: "Theme", Type: entity.SoundTypeAmbient, Duration: "0:30",
			Description: "wind", Scenes: []string{"2"},
		}}
		assertRoundTrip(t, map[string]any{"soundAssets": in}, SoundAssets, in)
	})
	t.Run("sound plan", func(t *testing.T) {
		in := &entity.SoundPlan{
			OverallStyle: "Noir", MusicGenres: []string{"Jazz"}, KeyEffects: []string{"rain"},
			NotableMoments: []entity.NotableMoment{{Scene: "1", SoundDesign: "silence"}},
		}
		assertRoundTrip(t, in, SoundPlan, in)
	})
}

func assertRoundTrip[T any](t *testing.T, payload any, fn func(string) (T, error), want T) {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	got, err := fn(string(b))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
