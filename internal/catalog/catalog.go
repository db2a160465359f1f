// Package catalog holds the static tool data shown by the landing carousel
// and the personalized dashboard.
package catalog

// Tool is a recommendable AI tool. Records are read-only; per-user state such
// as bookmarks lives outside the record.
type Tool struct {
	Name        string
	Category    string
	Description string
	MatchScore  int // 0-100
	MatchReason string
	Pricing     string
	Users       string
	Growth      float64 // percent
	Rating      float64 // 0-5
	Tags        []string
}

var tools = []Tool{
	{
		Name:        "ChatGPT",
		Category:    "Conversational AI",
		Description: "Advanced AI assistant for writing, coding, and creative tasks",
		MatchScore:  95,
		MatchReason: "Perfect for content creation and productivity",
		Pricing:     "Free + $20/mo",
		Users:       "100M+",
		Growth:      12.5,
		Rating:      4.8,
		Tags:        []string{"writing", "coding", "creative"},
	},
	{
		Name:        "Notion AI",
		Category:    "Productivity",
		Description: "AI-powered workspace for notes, docs, and project management",
		MatchScore:  92,
		MatchReason: "Great for workflow automation and organization",
		Pricing:     "Free + $10/mo",
		Users:       "30M+",
		Growth:      8.3,
		Rating:      4.6,
		Tags:        []string{"productivity", "organization", "collaboration"},
	},
	{
		Name:        "Midjourney",
		Category:    "Image Generation",
		Description: "AI art generator for stunning visual content",
		MatchScore:  88,
		MatchReason: "Excellent for visual content creation",
		Pricing:     "$10-60/mo",
		Users:       "25M+",
		Growth:      15.7,
		Rating:      4.7,
		Tags:        []string{"design", "art", "visual"},
	},
	{
		Name:        "GitHub Copilot",
		Category:    "Code Assistant",
		Description: "AI pair programmer that helps you write code faster",
		MatchScore:  85,
		MatchReason: "Boosts development productivity significantly",
		Pricing:     "$10/mo",
		Users:       "20M+",
		Growth:      6.8,
		Rating:      4.5,
		Tags:        []string{"coding", "development", "automation"},
	},
	{
		Name:        "Grammarly",
		Category:    "Writing Assistant",
		Description: "AI writing assistant for grammar, style, and tone",
		MatchScore:  82,
		MatchReason: "Essential for professional communication",
		Pricing:     "Free + $12/mo",
		Users:       "30M+",
		Growth:      4.2,
		Rating:      4.4,
		Tags:        []string{"writing", "editing", "communication"},
	},
	{
		Name:        "Canva AI",
		Category:    "Design",
		Description: "AI-powered design platform for graphics and presentations",
		MatchScore:  80,
		MatchReason: "Easy visual content creation for non-designers",
		Pricing:     "Free + $15/mo",
		Users:       "135M+",
		Growth:      9.1,
		Rating:      4.6,
		Tags:        []string{"design", "graphics", "presentations"},
	},
}

// Tools returns a copy of the recommendation catalog in its static order.
func Tools() []Tool {
	out := make([]Tool, len(tools))
	for i, t := range tools {
		t.Tags = append([]string(nil), t.Tags...)
		out[i] = t
	}
	return out
}
