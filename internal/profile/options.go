package profile

// Option is one selectable answer for a field.
type Option struct {
	Value       string
	Label       string
	Description string
}

var intentOptions = []Option{
	{Value: string(IntentSolveProblem), Label: "I'm looking for AI tools to solve a specific problem"},
	{Value: string(IntentExploreTrending), Label: "I want to explore what's trending in AI"},
	{Value: string(IntentMarketResearch), Label: "I'm researching the AI tools market"},
	{Value: string(IntentBrowsing), Label: "Just browsing and discovering"},
}

var challengeOptions = []Option{
	{Value: string(ChallengeContentCreation), Label: "Creating content faster", Description: "Writing, design, video"},
	{Value: string(ChallengeAutomation), Label: "Automating repetitive tasks", Description: "Workflows, processes"},
	{Value: string(ChallengeProductivity), Label: "Improving productivity", Description: "Time management, efficiency"},
	{Value: string(ChallengeBuilding), Label: "Building something new", Description: "Apps, websites, products"},
	{Value: string(ChallengeMarketing), Label: "Growing my business", Description: "Marketing, sales, analytics"},
	{Value: string(ChallengeLearning), Label: "Learning and research", Description: "Education, analysis"},
}

var roleOptions = []Option{
	{Value: string(RoleDeveloper), Label: "Developer"},
	{Value: string(RoleMarketer), Label: "Marketer"},
	{Value: string(RoleDesigner), Label: "Designer"},
	{Value: string(RoleStudent), Label: "Student"},
	{Value: string(RoleEntrepreneur), Label: "Entrepreneur"},
	{Value: string(RoleFreelancer), Label: "Freelancer"},
	{Value: string(RoleResearcher), Label: "Researcher"},
	{Value: string(RoleOther), Label: "Other"},
}

var experienceOptions = []Option{
	{Value: string(ExperienceBeginner), Label: "New to AI", Description: "Just getting started"},
	{Value: string(ExperienceIntermediate), Label: "Some experience", Description: "Used a few AI tools"},
	{Value: string(ExperienceExpert), Label: "AI Expert", Description: "Power user"},
}

var budgetOptions = []Option{
	{Value: string(BudgetFree), Label: "Free tools only", Description: "No monthly costs"},
	{Value: string(BudgetLow), Label: "Up to $25/month", Description: "Basic paid plans"},
	{Value: string(BudgetMedium), Label: "Up to $100/month", Description: "Professional plans"},
	{Value: string(BudgetHigh), Label: "$100+/month", Description: "Enterprise solutions"},
	{Value: string(BudgetFlexible), Label: "I'm flexible", Description: "Show me everything"},
}

// Options returns the closed set of answers for f, in display order.
func Options(f Field) []Option {
	switch f {
	case FieldIntent:
		return intentOptions
	case FieldChallenge:
		return challengeOptions
	case FieldRole:
		return roleOptions
	case FieldExperience:
		return experienceOptions
	case FieldBudget:
		return budgetOptions
	}
	return nil
}

// IsValid reports whether value is one of f's options.
func IsValid(f Field, value string) bool {
	for _, o := range Options(f) {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Label returns the display label for value, or value itself if unknown.
func Label(f Field, value string) string {
	for _, o := range Options(f) {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
