// Package session holds the caller-owned state of one film package.
// Every update returns a new Session; the receiver is never modified.
package session

import (
	"encoding/json"
	"slices"
	"sort"

	"film-forge-api/internal/domain/entity"
)

// Session is the current film package plus the storyboard of each scene.
type Session struct {
	pkg         entity.FilmPackage
	storyboards map[int][]entity.StoryboardShot
}

// New starts a session for a film idea.
func New(movieIdea, genre, scriptLength string) Session {
	return Session{pkg: entity.FilmPackage{
		MovieIdea:    movieIdea,
		Genre:        genre,
		ScriptLength: scriptLength,
	}}
}

// FromPackage starts a session from a previously exported package.
func FromPackage(p entity.FilmPackage) Session {
	return Session{pkg: clonePackage(p)}
}

// Package returns a copy of the film package.
func (s Session) Package() entity.FilmPackage {
	return clonePackage(s.pkg)
}

// Storyboard returns a copy of the shots of scene, or nil.
func (s Session) Storyboard(scene int) []entity.StoryboardShot {
	return slices.Clone(s.storyboards[scene])
}

// Scenes lists the scenes that have a storyboard, ascending.
func (s Session) Scenes() []int {
	out := make([]int, 0, len(s.storyboards))
	for k := range s.storyboards {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func (s Session) WithScript(script string) Session {
	n := s.clone()
	n.pkg.Script = script
	return n
}

func (s Session) WithLowBudgetMode(on bool) Session {
	n := s.clone()
	n.pkg.LowBudgetMode = on
	return n
}

func (s Session) WithCharacters(characters []entity.Character) Session {
	n := s.clone()
	n.pkg.Characters = cloneCharacters(characters)
	return n
}

// WithPortrait attaches a portrait URL to the character at index. Out of range is a no-op.
func (s Session) WithPortrait(index int, imageURL string) Session {
	if index < 0 || index >= len(s.pkg.Characters) {
		return s
	}
	n := s.clone()
	n.pkg.Characters[index].ImageURL = imageURL
	return n
}

func (s Session) WithLocations(locations []entity.Location) Session {
	n := s.clone()
	n.pkg.Locations = cloneLocations(locations)
	return n
}

func (s Session) WithBudget(categories []entity.BudgetCategory) Session {
	n := s.clone()
	n.pkg.Budget = cloneBudget(categories)
	return n
}

func (s Session) WithSchedule(entries []entity.ScheduleEntry) Session {
	n := s.clone()
	n.pkg.Schedule = cloneSchedule(entries)
	return n
}

func (s Session) WithSoundPlan(plan *entity.SoundPlan) Session {
	n := s.clone()
	n.pkg.SoundPlan = cloneSoundPlan(plan)
	return n
}

func (s Session) WithSoundAssets(assets []entity.SoundAsset) Session {
	n := s.clone()
	n.pkg.SoundAssets = cloneSoundAssets(assets)
	return n
}

// WithSoundAudio attaches an audio URL to the named sound asset. Unknown names are a no-op.
func (s Session) WithSoundAudio(name, audioURL string) Session {
	i := slices.IndexFunc(s.pkg.SoundAssets, func(a entity.SoundAsset) bool { return a.Name == name })
	if i < 0 {
		return s
	}
	n := s.clone()
	n.pkg.SoundAssets[i].AudioURL = audioURL
	return n
}

// WithStoryboard replaces the shots of scene.
func (s Session) WithStoryboard(scene int, shots []entity.StoryboardShot) Session {
	n := s.clone()
	n.storyboards[scene] = slices.Clone(shots)
	return n
}

// WithFrameImage attaches an image URL to one shot of scene. Unknown shots are a no-op.
func (s Session) WithFrameImage(scene, shotNumber int, imageURL string) Session {
	shots := s.storyboards[scene]
	i := slices.IndexFunc(shots, func(sh entity.StoryboardShot) bool { return sh.ShotNumber == shotNumber })
	if i < 0 {
		return s
	}
	n := s.clone()
	n.storyboards[scene][i].ImageURL = imageURL
	return n
}

func (s Session) clone() Session {
	n := Session{
		pkg:         clonePackage(s.pkg),
		storyboards: make(map[int][]entity.StoryboardShot, len(s.storyboards)),
	}
	for k, v := range s.storyboards {
		n.storyboards[k] = slices.Clone(v)
	}
	return n
}

func clonePackage(p entity.FilmPackage) entity.FilmPackage {
	p.Characters = cloneCharacters(p.Characters)
	p.Locations = cloneLocations(p.Locations)
	p.Budget = cloneBudget(p.Budget)
	p.Schedule = cloneSchedule(p.Schedule)
	p.SoundPlan = cloneSoundPlan(p.SoundPlan)
	p.SoundAssets = cloneSoundAssets(p.SoundAssets)
	return p
}

func cloneCharacters(in []entity.Character) []entity.Character {
	if in == nil {
		return nil
	}
	out := make([]entity.Character, len(in))
	for i, c := range in {
		c.Traits = slices.Clone(c.Traits)
		out[i] = c
	}
	return out
}

func cloneLocations(in []entity.Location) []entity.Location {
	if in == nil {
		return nil
	}
	out := make([]entity.Location, len(in))
	for i, l := range in {
		l.ColorPalette = slices.Clone(l.ColorPalette)
		l.Features = slices.Clone(l.Features)
		l.Scenes = slices.Clone(l.Scenes)
		out[i] = l
	}
	return out
}

func cloneBudget(in []entity.BudgetCategory) []entity.BudgetCategory {
	if in == nil {
		return nil
	}
	out := make([]entity.BudgetCategory, len(in))
	for i, c := range in {
		c.Items = slices.Clone(c.Items)
		c.Tips = slices.Clone(c.Tips)
		c.Alternatives = slices.Clone(c.Alternatives)
		out[i] = c
	}
	return out
}

func cloneSchedule(in []entity.ScheduleEntry) []entity.ScheduleEntry {
	if in == nil {
		return nil
	}
	out := make([]entity.ScheduleEntry, len(in))
	for i, e := range in {
		out[i] = json.RawMessage(slices.Clone([]byte(e)))
	}
	return out
}

func cloneSoundPlan(in *entity.SoundPlan) *entity.SoundPlan {
	if in == nil {
		return nil
	}
	p := *in
	p.MusicGenres = slices.Clone(in.MusicGenres)
	p.KeyEffects = slices.Clone(in.KeyEffects)
	p.NotableMoments = slices.Clone(in.NotableMoments)
	return &p
}

func cloneSoundAssets(in []entity.SoundAsset) []entity.SoundAsset {
	if in == nil {
		return nil
	}
	out := make([]entity.SoundAsset, len(in))
	for i, a := range in {
		a.Scenes = slices.Clone(a.Scenes)
		out[i] = a
	}
	return out
}
