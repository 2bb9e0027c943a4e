package ai

import "context"

// PromptFlows expone los dos flujos de prompts de la app.
// Ambos son request/response sin estado: cada llamada es independiente,
// sin streaming ni memoria de conversación.
type PromptFlows interface {
	// SupportAnswer responde una pregunta de contención emocional.
	SupportAnswer(ctx context.Context, question string) (string, error)

	// JournalPrompt genera una consigna de journaling a partir de la
	// etapa de maternidad y experiencias recientes de la usuaria.
	JournalPrompt(ctx context.Context, stageOfMotherhood, recentExperiences string) (string, error)
}
