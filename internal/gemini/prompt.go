package gemini

import "fmt"

// Prompt builders for the three content flows. The wording matters: the
// normalizer only handles the narrow shapes these prompts ask for.

func CoursePlanPrompt(proficiency string) string {
	return fmt.Sprintf(
		"Generate a detailed step-by-step learning roadmap for %s level in Generative AI. "+
			"Include what to study, practice exercises, and estimated timeline. "+
			"Format the answer in Markdown with headings and lists.",
		proficiency,
	)
}

func TodoPrompt(plan string) string {
	return fmt.Sprintf(
		"Convert the following learning roadmap into a JSON array of todo items. "+
			"Each item must be an object with a \"task\" string and a \"completed\" boolean set to false. "+
			"Return only the JSON array.\n\n%s",
		plan,
	)
}

func BuzzwordsPrompt(count int) string {
	return fmt.Sprintf(
		"Generate %d AI buzzwords with their simple definitions. "+
			"Return a JSON array of objects with \"buzzword\" and \"definition\" fields.",
		clampCount(count),
	)
}

func QuizPrompt(proficiency string, count int) string {
	return fmt.Sprintf(
		"Generate %d multiple-choice questions about Generative AI for %s level. "+
			"Format as a JSON array of objects with \"question\", \"options\" (keys A-D) "+
			"and \"correct\" (the letter of the right answer).",
		clampCount(count), proficiency,
	)
}

func clampCount(n int) int {
	if n <= 0 || n > 10 {
		return 10
	}
	return n
}
