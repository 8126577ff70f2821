package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"film-forge-api/internal/domain/entity"
)

func TestUpdatesDoNotMutateReceiver(t *testing.T) {
	s0 := New("a lighthouse keeper", "drama", "short")
	s1 := s0.WithCharacters([]entity.Character{{Name: "Mara", Traits: []string{"stoic"}}})
	s2 := s1.WithPortrait(0, "https://img/mara.png")

	assert.Empty(t, s0.Package().Characters)
	assert.Empty(t, s1.Package().Characters[0].ImageURL)
	assert.Equal(t, "https://img/mara.png", s2.Package().Characters[0].ImageURL)

	// copies handed out are detached
	pkg := s2.Package()
	pkg.Characters[0].Traits[0] = "changed"
	assert.Equal(t, "stoic", s2.Package().Characters[0].Traits[0])
}

func TestInputSlicesAreCopied(t *testing.T) {
	chars := []entity.Character{{Name: "Mara"}}
	s := New("x", "y", "z").WithCharacters(chars)
	chars[0].Name = "Other"
	assert.Equal(t, "Mara", s.Package().Characters[0].Name)
}

func TestPortraitOutOfRangeIsNoop(t *testing.T) {
	s := New("x", "y", "z")
	assert.Equal(t, s.Package(), s.WithPortrait(3, "u").Package())
}

func TestStoryboards(t *testing.T) {
	s0 := New("x", "y", "z")
	s1 := s0.WithStoryboard(2, []entity.StoryboardShot{{ShotNumber: 1}, {ShotNumber: 2}})
	s2 := s1.WithFrameImage(2, 2, "https://frame/2.png")

	assert.Empty(t, s0.Scenes())
	assert.Equal(t, []int{2}, s1.Scenes())
	assert.Empty(t, s1.Storyboard(2)[1].ImageURL)
	assert.Equal(t, "https://frame/2.png", s2.Storyboard(2)[1].ImageURL)
	assert.Nil(t, s2.Storyboard(7))

	s3 := s2.WithStoryboard(1, nil)
	assert.Equal(t, []int{1, 2}, s3.Scenes())
}

func TestSoundAndSchedule(t *testing.T) {
	s := New("x", "y", "z").
		WithSoundPlan(&entity.SoundPlan{OverallStyle: "sparse", MusicGenres: []string{"ambient"}}).
		WithSoundAssets([]entity.SoundAsset{{Name: "Theme", Type: entity.SoundTypeMusic}}).
		WithSchedule([]entity.ScheduleEntry{json.RawMessage(`{"day":1}`)}).
		WithLowBudgetMode(true)

	withAudio := s.WithSoundAudio("Theme", "https://a/theme.mp3")
	assert.Empty(t, s.Package().SoundAssets[0].AudioURL)
	assert.Equal(t, "https://a/theme.mp3", withAudio.Package().SoundAssets[0].AudioURL)

	pkg := withAudio.Package()
	require.NotNil(t, pkg.SoundPlan)
	assert.Equal(t, "sparse", pkg.SoundPlan.OverallStyle)
	assert.JSONEq(t, `{"day":1}`, string(pkg.Schedule[0]))
	assert.True(t, pkg.LowBudgetMode)

	restored := FromPackage(pkg)
	assert.Equal(t, pkg, restored.Package())
}
