package persistence

import (
	"time"

	"feedbackengine/internal/domain"

	"github.com/google/uuid"
)

// defaultPrompts returns the starter prompt-response pairs a fresh store is
// seeded with, so there is something to rate before any authoring happens.
func defaultPrompts() []domain.Prompt {
	pairs := []struct {
		prompt   string
		response string
		category string
	}{
		{
			prompt:   "Explain the concept of machine learning in simple terms.",
			response: "Machine learning is a type of artificial intelligence where computers learn to make predictions or decisions by finding patterns in data, rather than being explicitly programmed for every possible scenario. Think of it like teaching a child to recognize animals - instead of describing every feature of every animal, you show them many pictures of different animals with labels, and they learn to identify new animals they haven't seen before.",
			category: "Educational",
		},
		{
			prompt:   "What are the benefits of renewable energy sources?",
			response: "Renewable energy sources offer several key benefits: 1) Environmental - they produce little to no greenhouse gas emissions, helping combat climate change, 2) Economic - they provide long-term cost savings and energy independence, 3) Sustainability - they won't run out like fossil fuels, 4) Health - they reduce air pollution and related health problems, 5) Job creation - the renewable energy sector creates many new employment opportunities.",
			category: "Educational",
		},
		{
			prompt:   "What is the capital of Australia?",
			response: "The capital of Australia is Canberra. It's located in the Australian Capital Territory (ACT) between Sydney and Melbourne. Canberra was specifically planned and built to be the national capital, with construction beginning in 1913. Many people mistakenly think Sydney or Melbourne is the capital because they are much larger and more well-known cities.",
			category: "Factual",
		},
		{
			prompt:   "How does photosynthesis work?",
			response: "Photosynthesis is how plants make food using sunlight. The process occurs mainly in leaves and involves: 1) Light absorption - chlorophyll in leaves captures sunlight, 2) Water uptake - roots absorb water from soil, 3) CO2 intake - leaves take in carbon dioxide from air through stomata, 4) Chemical reaction - using light energy, plants combine CO2 and water to create glucose (sugar) and release oxygen as a byproduct. This process is crucial for life on Earth as it produces the oxygen we breathe.",
			category: "Educational",
		},
		{
			prompt:   "How do I start learning a new programming language?",
			response: "To start learning a new programming language effectively: 1) Choose your first language based on your goals (Python for beginners/data science, JavaScript for web development), 2) Set up your development environment (code editor, compiler/interpreter), 3) Start with basics - syntax, variables, data types, 4) Practice with small programs and exercises, 5) Build simple projects to apply what you learn, 6) Read other people's code on GitHub, 7) Join programming communities and forums, 8) Be consistent - practice a little every day.",
			category: "Technical",
		},
		{
			prompt:   "Explain the difference between weather and climate.",
			response: "Weather and climate are related but distinct concepts: Weather refers to short-term atmospheric conditions in a specific place at a specific time - like today's temperature, rainfall, or wind. It can change from hour to hour or day to day. Climate, on the other hand, refers to long-term patterns of weather in a region over many years (typically 30+ years). Climate tells us what to generally expect, while weather tells us what's actually happening right now.",
			category: "Educational",
		},
	}

	now := time.Now().UTC()
	prompts := make([]domain.Prompt, len(pairs))
	for i, pair := range pairs {
		prompts[i] = domain.Prompt{
			Id:        uuid.New().String(),
			Prompt:    pair.prompt,
			Response:  pair.response,
			Category:  pair.category,
			CreatedAt: now,
		}
	}

	return prompts
}
