package onboarding

import "github.com/abhisek/aimarketcap/internal/profile"

// CompletedMsg is emitted when the user finishes the questionnaire.
type CompletedMsg struct {
	Profile profile.UserProfile
}

// SkippedMsg is emitted when the user abandons the questionnaire.
type SkippedMsg struct{}
