package dto

import (
	"encoding/json"

	"film-forge-api/internal/domain/entity"
)

type ScriptRequest struct {
	MovieIdea    string `json:"movieIdea" binding:"notblank"`
	MovieGenre   string `json:"movieGenre" binding:"notblank"`
	ScriptLength string `json:"scriptLength" binding:"notblank"`
}

type ScriptResponse struct {
	Script    *entity.Script `json:"script"`
	RequestID string         `json:"requestId"`
}

type BudgetRequest struct {
	MovieGenre    string `json:"movieGenre" binding:"notblank"`
	ScriptLength  string `json:"scriptLength" binding:"notblank"`
	LowBudgetMode bool   `json:"lowBudgetMode"`
}

type BudgetResponse struct {
	Categories []entity.BudgetCategory `json:"categories"`
	RequestID  string                  `json:"requestId"`
}

type GenerateCharactersRequest struct {
	ScriptContent string `json:"scriptContent" binding:"notblank"`
	Genre         string `json:"genre" binding:"notblank"`
}

type GeneratePortraitRequest struct {
	Character entity.Character `json:"character"`
}

type CharactersResponse struct {
	Characters []entity.Character `json:"characters"`
	RequestID  string             `json:"requestId"`
}

type PortraitResponse struct {
	ImageURL          string `json:"imageUrl"`
	VisualDescription string `json:"visualDescription"`
	RequestID         string `json:"requestId"`
}

type LocationsRequest struct {
	Script string `json:"script" binding:"notblank"`
	Genre  string `json:"genre" binding:"notblank"`
}

type LocationsResponse struct {
	Locations []entity.Location `json:"locations"`
	RequestID string            `json:"requestId"`
}

type ScheduleRequest struct {
	Script       string `json:"script" binding:"notblank"`
	ScriptLength string `json:"scriptLength" binding:"notblank"`
}

type ScheduleResponse struct {
	Schedule  []entity.ScheduleEntry `json:"schedule"`
	RequestID string                 `json:"requestId"`
}

type SoundPlanRequest struct {
	MovieIdea  string `json:"movieIdea" binding:"notblank"`
	MovieGenre string `json:"movieGenre" binding:"notblank"`
}

type SoundAssetsRequest struct {
	Script string `json:"script" binding:"notblank"`
	Genre  string `json:"genre" binding:"notblank"`
}

type SoundPlanResponse struct {
	RequestID string            `json:"requestId"`
	SoundPlan *entity.SoundPlan `json:"soundPlan"`
}

type SoundAssetsResponse struct {
	Success     bool                `json:"success"`
	SoundAssets []entity.SoundAsset `json:"soundAssets"`
	RequestID   string              `json:"requestId"`
}

type SoundJobResponse struct {
	Record    *entity.AudioAssetRecord `json:"record"`
	RequestID string                   `json:"requestId"`
}

type SoundJobListResponse struct {
	Records   []*entity.AudioAssetRecord `json:"records"`
	RequestID string                     `json:"requestId"`
}

type GenerateFrameRequest struct {
	ImagePrompt string `json:"imagePrompt" binding:"notblank"`
	// ShotNumber is echoed back exactly as sent.
	ShotNumber json.RawMessage `json:"shotNumber"`
}

type GenerateShotsRequest struct {
	SceneDescription string `json:"sceneDescription" binding:"notblank"`
	SceneNumber      int    `json:"sceneNumber"`
	Genre            string `json:"genre" binding:"notblank"`
}

type FrameResponse struct {
	ImageURL   string          `json:"imageUrl"`
	ShotNumber json.RawMessage `json:"shotNumber,omitempty"`
	RequestID  string          `json:"requestId"`
}

type ShotsResponse struct {
	Shots       []entity.StoryboardShot `json:"shots"`
	SceneNumber int                     `json:"sceneNumber"`
	RequestID   string                  `json:"requestId"`
}

type DownloadCharactersRequest struct {
	Characters []entity.Character `json:"characters" binding:"required,min=1"`
}

type DownloadSoundRequest struct {
	SoundAssets []entity.SoundAsset `json:"soundAssets" binding:"required,min=1"`
}

type CheckoutRequest struct {
	PriceID string `json:"priceId" binding:"notblank"`
}

type CheckoutResponse struct {
	URL       string              `json:"url"`
	SessionID string              `json:"sessionId"`
	Mode      entity.CheckoutMode `json:"mode"`
	RequestID string              `json:"requestId"`
}

type WebhookResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"requestId"`
}

// CredentialInfo reports a credential without revealing it.
type CredentialInfo struct {
	Present bool   `json:"present"`
	Length  int    `json:"length"`
	Prefix  string `json:"prefix,omitempty"`
}

type DebugResponse struct {
	OpenAI    CredentialInfo `json:"openai"`
	Replicate CredentialInfo `json:"replicate"`
	Stripe    CredentialInfo `json:"stripe"`
	Env       string         `json:"env"`
	RequestID string         `json:"requestId"`
}
