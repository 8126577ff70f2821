package prompt

import (
	"strings"

	"film-forge-api/internal/domain/entity"
)

// TruncationMarker ends a prompt that was cut to fit the provider limit.
const TruncationMarker = "..."

const (
	storyboardPrefix = "Pencil sketch storyboard frame, rough graphite lines on white paper, black and white, cinematic composition. "
	storyboardSuffix = " Hand-drawn storyboard style, no color, no text, no captions."

	portraitPrefix = "Cinematic character portrait, upper body, soft studio lighting, photorealistic film still. "
	portraitSuffix = " Neutral background, no text, no watermark."
)

// Truncate cuts s to at most max runes, ending with TruncationMarker when cut. max <= 0 disables it.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= len(TruncationMarker) {
		return string(runes[:max])
	}
	return string(runes[:max-len(TruncationMarker)]) + TruncationMarker
}

// StoryboardFrame wraps an image prompt in the pencil-sketch house style.
func StoryboardFrame(imagePrompt string, max int) string {
	return Truncate(storyboardPrefix+strings.TrimSpace(imagePrompt)+storyboardSuffix, max)
}

// Portrait returns the image prompt for c and the visual description it was built from.
func Portrait(c entity.Character, max int) (prompt string, visual string) {
	var parts []string

	subject := strings.TrimSpace(strings.Join(nonEmpty(c.Mood, c.Role), " "))
	if name := strings.TrimSpace(c.Name); name != "" {
		if subject != "" {
			subject = subject + " character " + name
		} else {
			subject = name
		}
	}
	if subject != "" {
		parts = append(parts, subject)
	}
	if d := strings.TrimSpace(c.Description); d != "" {
		parts = append(parts, d)
	}
	if s := strings.TrimSpace(c.SkinColor); s != "" {
		parts = append(parts, s+" skin")
	}
	if h := strings.TrimSpace(c.HairColor); h != "" {
		parts = append(parts, h+" hair")
	}
	if cl := strings.TrimSpace(c.ClothingColor); cl != "" {
		parts = append(parts, "wearing "+cl+" clothing")
	}
	if len(c.Traits) > 0 {
		parts = append(parts, "expression suggesting "+strings.Join(nonEmpty(c.Traits...), ", "))
	}

	visual = strings.Join(parts, ", ")
	if visual != "" {
		visual += "."
	}
	return Truncate(portraitPrefix+visual+portraitSuffix, max), visual
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
