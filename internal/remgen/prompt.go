package remgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/lingua/internal/catalog"
)

const variantSystemPrompt = `You are a patient, encouraging language tutor. A learner just got a question wrong and is about to retry an easier variant. Reword the question prompt so it feels fresh, without changing what it asks or which answer is correct.`

func buildVariantUserMessage(in VariantInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Domain: %s\n", catalog.DomainDisplayName(in.Domain)))
	b.WriteString(fmt.Sprintf("Concept: %s\n", in.ConceptName))
	b.WriteString(fmt.Sprintf("Difficulty: %s\n", in.Difficulty.Label()))
	b.WriteString(fmt.Sprintf("Original prompt: %s\n", in.Prompt))
	b.WriteString("Choices (do not change):\n")
	for i, c := range in.Choices {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, c))
	}
	if in.WrongAnswer != "" {
		b.WriteString(fmt.Sprintf("The learner previously answered: %s\n", in.WrongAnswer))
	}
	b.WriteString("\nRewrite only the prompt text. The correct answer must stay the same.\n")

	return b.String()
}
