package domain

// Activity describes a single extracurricular offering. The registry keys
// activities by name, so the record carries everything except the name.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}
