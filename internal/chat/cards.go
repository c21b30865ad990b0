package chat

import (
	"fmt"
	"strings"

	"github.com/spigell/career-compass/internal/compass"
)

const (
	ActionStartOver     = "Start over"
	ActionStartOverNew  = "Start Over with New Perspective"
	ActionHelpAnother   = "Help Another Person Find Their Path"
	ActionQuit          = "Quit"
	connectActionPrefix = "Yes! Connect me with "
)

// Header is printed once when a chat begins.
func Header() string {
	return "🌟 Career Compass\nLet's discover your perfect career path together\n"
}

// Reason is the templated explanation shown on every match card.
func Reason(a *compass.Answers) string {
	return fmt.Sprintf("Based on your passion for %s, your skills in %s, and your desire to %s, I think you'd thrive here!",
		a.Get(compass.KeyInterests),
		a.Get(compass.KeySkills),
		a.Get(compass.KeyProblems),
	)
}

func MatchCard(m compass.Match, reason string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✨ Great Match: %s\n", m.Company.Name)
	fmt.Fprintf(&b, "   %s\n", m.Company.Category)
	fmt.Fprintf(&b, "   %s\n", m.Company.Description)
	fmt.Fprintf(&b, "   Potential roles for you: %s\n", strings.Join(m.Company.Roles, ", "))
	fmt.Fprintf(&b, "   %s\n", reason)
	return b.String()
}

func FallbackCard() string {
	return strings.Join([]string{
		"Let's Keep Exploring",
		"   You have such unique interests and skills! While I don't have a perfect company match in my current database, I'd love to help you explore more options.",
		"   Based on what you've shared, you might want to look into roles in:",
		"   Technology, Creative Industries, or Social Impact sectors",
		"",
	}, "\n")
}

func ConnectCard(userName, company string) string {
	return strings.Join([]string{
		"Your journey begins now",
		"",
		"🎉 Wonderful!",
		fmt.Sprintf("   I'm so excited for you, %s! I'll connect you with %s.", userName, company),
		"   Here's what happens next:",
		fmt.Sprintf("   ✓ Your profile and our conversation will be shared with %s's hiring team", company),
		"   ✓ They'll review your background and reach out within 3-5 business days",
		"   ✓ You'll receive an email with next steps and interview preparation tips",
		"   Remember: This is just the beginning of your journey. Stay curious, stay open, and trust yourself. You've got this! 💪",
		"",
	}, "\n")
}

func connectAction(company string) string {
	return connectActionPrefix + company
}
