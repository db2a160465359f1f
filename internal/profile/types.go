package profile

// Field names a profile attribute that a questionnaire step collects.
type Field string

const (
	FieldIntent     Field = "intent"
	FieldChallenge  Field = "challenge"
	FieldRole       Field = "role"
	FieldExperience Field = "experience"
	FieldBudget     Field = "budget"
)

// RequiredFields lists the fields that must be set for a profile to be complete,
// in questionnaire order.
var RequiredFields = []Field{FieldIntent, FieldChallenge, FieldRole, FieldExperience, FieldBudget}

// Intent is why the user came to the product.
type Intent string

const (
	IntentSolveProblem    Intent = "solve-problem"
	IntentExploreTrending Intent = "explore-trending"
	IntentMarketResearch  Intent = "market-research"
	IntentBrowsing        Intent = "browsing"
)

// Challenge is the user's biggest problem to solve with AI tools.
type Challenge string

const (
	ChallengeContentCreation Challenge = "content-creation"
	ChallengeAutomation      Challenge = "automation"
	ChallengeProductivity    Challenge = "productivity"
	ChallengeBuilding        Challenge = "building"
	ChallengeMarketing       Challenge = "marketing"
	ChallengeLearning        Challenge = "learning"
)

// Role is the user's occupation.
type Role string

const (
	RoleDeveloper    Role = "developer"
	RoleMarketer     Role = "marketer"
	RoleDesigner     Role = "designer"
	RoleStudent      Role = "student"
	RoleEntrepreneur Role = "entrepreneur"
	RoleFreelancer   Role = "freelancer"
	RoleResearcher   Role = "researcher"
	RoleOther        Role = "other"
)

// Experience is the user's familiarity with AI tools.
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceExpert       Experience = "expert"
)

// Budget is the monthly spend the user is comfortable with.
type Budget string

const (
	BudgetFree     Budget = "free"
	BudgetLow      Budget = "low"
	BudgetMedium   Budget = "medium"
	BudgetHigh     Budget = "high"
	BudgetFlexible Budget = "flexible"
)

// UserProfile is the answer set accumulated by the onboarding questionnaire.
type UserProfile struct {
	// ID is stamped when the profile is persisted.
	ID         string     `json:"id,omitempty"`
	Intent     Intent     `json:"intent,omitempty"`
	Challenge  Challenge  `json:"challenge,omitempty"`
	Role       Role       `json:"role,omitempty"`
	Experience Experience `json:"experience,omitempty"`
	Budget     Budget     `json:"budget,omitempty"`

	// Interests is kept for compatibility with stored profiles. No screen sets it.
	Interests []string `json:"interests"`
}

// Get returns the raw value of f, or "" if unset.
func (p UserProfile) Get(f Field) string {
	switch f {
	case FieldIntent:
		return string(p.Intent)
	case FieldChallenge:
		return string(p.Challenge)
	case FieldRole:
		return string(p.Role)
	case FieldExperience:
		return string(p.Experience)
	case FieldBudget:
		return string(p.Budget)
	}
	return ""
}

func (p *UserProfile) set(f Field, v string) {
	switch f {
	case FieldIntent:
		p.Intent = Intent(v)
	case FieldChallenge:
		p.Challenge = Challenge(v)
	case FieldRole:
		p.Role = Role(v)
	case FieldExperience:
		p.Experience = Experience(v)
	case FieldBudget:
		p.Budget = Budget(v)
	}
}

// Missing returns the required fields that are still unset.
func (p UserProfile) Missing() []Field {
	var missing []Field
	for _, f := range RequiredFields {
		if p.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// IsComplete reports whether every required field is set.
func (p UserProfile) IsComplete() bool {
	return len(p.Missing()) == 0
}

// Insight describes the user's intent in a few words.
func (p UserProfile) Insight() string {
	switch p.Intent {
	case IntentSolveProblem:
		return "problem-solving"
	case IntentExploreTrending:
		return "trend exploration"
	case IntentMarketResearch:
		return "market research"
	case IntentBrowsing:
		return "discovery"
	}
	return "AI exploration"
}
