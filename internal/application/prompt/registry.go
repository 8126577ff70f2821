// Package prompt renders provider prompts for each generation task.
package prompt

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"

	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed templates/*.txt
var templatesFS embed.FS

// Kind is a text generation task.
type Kind string

const (
	KindScript          Kind = "script"
	KindCharacters      Kind = "characters"
	KindBudget          Kind = "budget"
	KindSchedule        Kind = "schedule"
	KindLocations       Kind = "locations"
	KindSoundPlan       Kind = "sound_plan"
	KindSoundAssets     Kind = "sound_assets"
	KindStoryboardShots Kind = "storyboard_shots"
)

var kinds = map[Kind]struct{}{
	KindScript: {}, KindCharacters: {}, KindBudget: {}, KindSchedule: {},
	KindLocations: {}, KindSoundPlan: {}, KindSoundAssets: {}, KindStoryboardShots: {},
}

// Registry caches one chat template per kind. User text is inserted verbatim.
type Registry struct {
	mu    sync.RWMutex
	cache map[Kind]einoprompt.ChatTemplate
}

func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[Kind]einoprompt.ChatTemplate),
	}
}

// Messages renders the system and user messages for kind.
func (r *Registry) Messages(ctx context.Context, kind Kind, vars map[string]any) ([]*schema.Message, error) {
	tpl, err := r.ChatTemplate(kind)
	if err != nil {
		return nil, err
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return nil, fmt.Errorf("render %s prompt: %w", kind, err)
	}
	return msgs, nil
}

func (r *Registry) ChatTemplate(kind Kind) (einoprompt.ChatTemplate, error) {
	if r == nil {
		return nil, fmt.Errorf("prompt registry is nil")
	}
	if _, ok := kinds[kind]; !ok {
		return nil, fmt.Errorf("unknown prompt kind: %s", kind)
	}

	r.mu.RLock()
	if tpl, ok := r.cache[kind]; ok {
		r.mu.RUnlock()
		return tpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.cache[kind]; ok {
		return tpl, nil
	}

	system, err := readEmbeddedText("templates/" + string(kind) + ".system.txt")
	if err != nil {
		return nil, err
	}
	user, err := readEmbeddedText("templates/" + string(kind) + ".user.txt")
	if err != nil {
		return nil, err
	}

	tpl := einoprompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(system),
		schema.UserMessage(user),
	)
	r.cache[kind] = tpl
	return tpl, nil
}

func readEmbeddedText(path string) (string, error) {
	b, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
