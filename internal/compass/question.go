package compass

import "strings"

// Kind is the input modality of a question.
type Kind string

const (
	KindText   Kind = "free-text"
	KindChoice Kind = "single-choice"
)

const namePlaceholder = "{{NAME}}"

// Prompt is either a fixed text or a template parameterised by the user name.
type Prompt struct {
	text     string
	withName bool
}

// StaticPrompt returns a prompt that always renders to text.
func StaticPrompt(text string) Prompt {
	return Prompt{text: text}
}

// NamePrompt returns a prompt whose {{NAME}} placeholders are replaced by the
// accumulated user name at render time.
func NamePrompt(template string) Prompt {
	return Prompt{text: template, withName: true}
}

// Render resolves the prompt to a plain string.
func (p Prompt) Render(name string) string {
	if !p.withName {
		return p.text
	}
	return strings.ReplaceAll(p.text, namePlaceholder, name)
}

// UsesName reports whether the prompt depends on the user name.
func (p Prompt) UsesName() bool { return p.withName }

type Question struct {
	ID      string
	Prompt  Prompt
	Kind    Kind
	Key     string
	Options []string
}

// Answer keys read by the scoring rules and the result cards.
const (
	KeyName             = "name"
	KeyChildhoodPassion = "childhood_passion"
	KeyInterests        = "interests"
	KeySkills           = "skills"
	KeyWorkStyle        = "work_style"
	KeyValues           = "values"
	KeyProblems         = "problems"
	KeyEducation        = "education"
	KeyLearning         = "learning"
)

var questions = []Question{
	{
		ID:     "welcome",
		Prompt: StaticPrompt("Hey there! I'm so glad you're here. Finding your path can feel overwhelming, but we'll figure this out together. What should I call you?"),
		Kind:   KindText,
		Key:    KeyName,
	},
	{
		ID:     "childhood",
		Prompt: NamePrompt("Nice to meet you, {{NAME}}! Let's start with something fun. When you were younger, what activities made you lose track of time? What did you love doing?"),
		Kind:   KindText,
		Key:    KeyChildhoodPassion,
	},
	{
		ID:     "current_interests",
		Prompt: StaticPrompt("That's wonderful! Now, what topics or activities get you excited today? What do you find yourself reading about or watching videos about in your free time?"),
		Kind:   KindText,
		Key:    KeyInterests,
	},
	{
		ID:     "skills",
		Prompt: StaticPrompt("Great! Now let's talk about your strengths. What are you naturally good at? (Think about both technical skills and soft skills like communication, problem-solving, creativity, etc.)"),
		Kind:   KindText,
		Key:    KeySkills,
	},
	{
		ID:     "work_style",
		Prompt: StaticPrompt("Here's an important one: How do you prefer to work?"),
		Kind:   KindChoice,
		Key:    KeyWorkStyle,
		Options: []string{
			"I love working with teams and collaborating",
			"I prefer working independently and autonomously",
			"A mix of both - collaboration and solo time",
			"I thrive in fast-paced, dynamic environments",
		},
	},
	{
		ID:     "values",
		Prompt: StaticPrompt("What matters most to you in a career?"),
		Kind:   KindChoice,
		Key:    KeyValues,
		Options: []string{
			"Making a positive impact on society",
			"Creative expression and innovation",
			"Financial stability and growth",
			"Continuous learning and personal development",
			"Work-life balance and flexibility",
		},
	},
	{
		ID:     "problems",
		Prompt: StaticPrompt("What problems in the world frustrate you? What would you love to help solve?"),
		Kind:   KindText,
		Key:    KeyProblems,
	},
	{
		ID:     "education",
		Prompt: StaticPrompt("Tell me about your educational background and any relevant experience you have."),
		Kind:   KindText,
		Key:    KeyEducation,
	},
	{
		ID:     "learning",
		Prompt: StaticPrompt("Are you open to learning new skills or getting additional training if needed?"),
		Kind:   KindChoice,
		Key:    KeyLearning,
		Options: []string{
			"Absolutely! I love learning new things",
			"Yes, if it's relevant to my goals",
			"Maybe, depends on the time commitment",
			"I prefer to use skills I already have",
		},
	},
}

// Questions returns a copy of the question registry in conversation order.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
