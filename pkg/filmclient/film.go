package filmclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"film-forge-api/internal/application/session"
	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/interfaces/http/dto"
)

// Script generates the screenplay from the session's idea, genre and length.
func (c *Client) Script(ctx context.Context, s session.Session) (session.Session, error) {
	p := s.Package()
	var out dto.ScriptResponse
	err := c.post(ctx, "/script", dto.ScriptRequest{
		MovieIdea:    p.MovieIdea,
		MovieGenre:   p.Genre,
		ScriptLength: p.ScriptLength,
	}, &out)
	if err != nil {
		return s, err
	}
	if out.Script == nil {
		return s, fmt.Errorf("script response without script")
	}
	return s.WithScript(out.Script.Content), nil
}

// Budget generates the budget breakdown.
func (c *Client) Budget(ctx context.Context, s session.Session) (session.Session, error) {
	p := s.Package()
	var out dto.BudgetResponse
	err := c.post(ctx, "/budget", dto.BudgetRequest{
		MovieGenre:    p.Genre,
		ScriptLength:  p.ScriptLength,
		LowBudgetMode: p.LowBudgetMode,
	}, &out)
	if err != nil {
		return s, err
	}
	return s.WithBudget(out.Categories), nil
}

// Characters extracts the cast from the session's script.
func (c *Client) Characters(ctx context.Context, s session.Session) (session.Session, error) {
	p := s.Package()
	var out dto.CharactersResponse
	err := c.post(ctx, "/characters", struct {
		Step string `json:"step"`
		dto.GenerateCharactersRequest
	}{
		Step:                      dto.StepGenerateCharacters,
		GenerateCharactersRequest: dto.GenerateCharactersRequest{ScriptContent: p.Script, Genre: p.Genre},
	}, &out)
	if err != nil {
		return s, err
	}
	return s.WithCharacters(out.Characters), nil
}

// Portrait generates the portrait of the character at index.
func (c *Client) Portrait(ctx context.Context, s session.Session, index int) (session.Session, error) {
	p := s.Package()
	if index < 0 || index >= len(p.Characters) {
		return s, fmt.Errorf("character %d out of range", index)
	}
	var out dto.PortraitResponse
	err := c.post(ctx, "/characters", struct {
		Step string `json:"step"`
		dto.GeneratePortraitRequest
	}{
		Step:                    dto.StepGeneratePortrait,
		GeneratePortraitRequest: dto.GeneratePortraitRequest{Character: p.Characters[index]},
	}, &out)
	if err != nil {
		return s, err
	}
	return s.WithPortrait(index, out.ImageURL), nil
}

// Locations scouts locations from the session's script.
func (c *Client) Locations(ctx context.Context, s session.Session) (session.Session, error) {
	p := s.Package()
	var out dto.LocationsResponse
	if err := c.post(ctx, "/locations", dto.LocationsRequest{Script: p.Script, Genre: p.Genre}, &out); err != nil {
		return s, err
	}
	return s.WithLocations(out.Locations), nil
}

// Schedule generates the shooting schedule.
func (c *Client) Schedule(ctx context.Context, s session.Session) (session.Session, error) {
	p := s.Package()
	var out dto.ScheduleResponse
	if err := c.post(ctx, "/schedule", dto.ScheduleRequest{Script: p.Script, ScriptLength: p.ScriptLength}, &out); err != nil {
		return s, err
	}
	return s.WithSchedule(out.Schedule), nil
}

// SoundPlan generates the high level sound plan from the idea.
func (c *Client) SoundPlan(ctx context.Context, s session.Session) (session.Session, error) {
	p := s.Package()
	var out dto.SoundPlanResponse
	if err := c.post(ctx, "/sound", dto.SoundPlanRequest{MovieIdea: p.MovieIdea, MovieGenre: p.Genre}, &out); err != nil {
		return s, err
	}
	return s.WithSoundPlan(out.SoundPlan), nil
}

// SoundAssets generates the sound cue list from the script.
func (c *Client) SoundAssets(ctx context.Context, s session.Session) (session.Session, error) {
	p := s.Package()
	var out dto.SoundAssetsResponse
	if err := c.post(ctx, "/sound", dto.SoundAssetsRequest{Script: p.Script, Genre: p.Genre}, &out); err != nil {
		return s, err
	}
	return s.WithSoundAssets(out.SoundAssets), nil
}

// StoryboardShots breaks one scene into shots.
func (c *Client) StoryboardShots(ctx context.Context, s session.Session, scene int, description string) (session.Session, error) {
	var out dto.ShotsResponse
	err := c.post(ctx, "/storyboard", struct {
		Step string `json:"step"`
		dto.GenerateShotsRequest
	}{
		Step: dto.StepGenerateShots,
		GenerateShotsRequest: dto.GenerateShotsRequest{
			SceneDescription: description,
			SceneNumber:      scene,
			Genre:            s.Package().Genre,
		},
	}, &out)
	if err != nil {
		return s, err
	}
	return s.WithStoryboard(scene, out.Shots), nil
}

// StoryboardFrame renders the frame of one shot already in the session.
func (c *Client) StoryboardFrame(ctx context.Context, s session.Session, scene, shotNumber int) (session.Session, error) {
	var shot *entity.StoryboardShot
	for _, sh := range s.Storyboard(scene) {
		if sh.ShotNumber == shotNumber {
			shot = &sh
			break
		}
	}
	if shot == nil {
		return s, fmt.Errorf("scene %d has no shot %d", scene, shotNumber)
	}

	var out dto.FrameResponse
	err := c.post(ctx, "/storyboard", struct {
		Step string `json:"step"`
		dto.GenerateFrameRequest
	}{
		Step: dto.StepGenerateFrameImage,
		GenerateFrameRequest: dto.GenerateFrameRequest{
			ImagePrompt: shot.ImagePrompt,
			ShotNumber:  json.RawMessage(strconv.Itoa(shotNumber)),
		},
	}, &out)
	if err != nil {
		return s, err
	}
	return s.WithFrameImage(scene, shotNumber, out.ImageURL), nil
}

// DownloadCharacters returns the character archive of the session.
func (c *Client) DownloadCharacters(ctx context.Context, s session.Session) ([]byte, error) {
	return c.do(ctx, "/download-characters", dto.DownloadCharactersRequest{Characters: s.Package().Characters})
}

// DownloadSound returns the sound design archive of the session.
func (c *Client) DownloadSound(ctx context.Context, s session.Session) ([]byte, error) {
	return c.do(ctx, "/download-sound", dto.DownloadSoundRequest{SoundAssets: s.Package().SoundAssets})
}

// Checkout starts a hosted checkout for priceID.
func (c *Client) Checkout(ctx context.Context, priceID string) (*dto.CheckoutResponse, error) {
	var out dto.CheckoutResponse
	if err := c.post(ctx, "/create-checkout-session", dto.CheckoutRequest{PriceID: priceID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
