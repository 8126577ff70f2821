package entity

// FilmPackage is everything generated for one film idea.
type FilmPackage struct {
	MovieIdea     string           `json:"movieIdea"`
	Genre         string           `json:"genre"`
	ScriptLength  string           `json:"scriptLength"`
	Script        string           `json:"script,omitempty"`
	Characters    []Character      `json:"characters,omitempty"`
	Locations     []Location       `json:"locations,omitempty"`
	Budget        []BudgetCategory `json:"budget,omitempty"`
	Schedule      []ScheduleEntry  `json:"schedule,omitempty"`
	SoundPlan     *SoundPlan       `json:"soundPlan,omitempty"`
	SoundAssets   []SoundAsset     `json:"soundAssets,omitempty"`
	LowBudgetMode bool             `json:"lowBudgetMode,omitempty"`
}
