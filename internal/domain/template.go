package domain

// Template is a reusable prompt scaffold. Placeholders are written in
// [BRACKETS] and replaced by the author before analysis.
type Template struct {
	Name     string
	Category string
	Text     string
}

func Templates() []Template {
	return []Template{
		{
			Name:     "Educational Explanation",
			Category: "Educational",
			Text:     "Explain [TOPIC] in simple terms that a [AGE]-year-old could understand, using analogies and examples.",
		},
		{
			Name:     "Creative Writing",
			Category: "Creative",
			Text:     "Write a [TYPE] story about [SUBJECT] that includes [ELEMENTS] and has a [TONE] mood.",
		},
		{
			Name:     "Problem Solving",
			Category: "Analysis",
			Text:     "Help me solve this problem: [PROBLEM]. Please provide step-by-step guidance and alternative approaches.",
		},
		{
			Name:     "Code Explanation",
			Category: "Technical",
			Text:     "Explain this code snippet: [CODE]. Break down what each part does and suggest improvements.",
		},
		{
			Name:     "Business Analysis",
			Category: "Business",
			Text:     "Analyze [BUSINESS_SCENARIO] and provide strategic recommendations with pros and cons.",
		},
	}
}
