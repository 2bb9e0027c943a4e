package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	defaultModelName = "gemini-1.5-flash-latest"

	supportSystemInstruction = "You are a warm, reassuring companion for new and expecting mothers. " +
		"Answer emotional-support questions with empathy and practical suggestions. " +
		"You are not a medical professional: for anything clinical, gently suggest talking to a doctor or midwife. " +
		"Keep answers short, kind and concrete."

	journalPromptSystemInstruction = "You generate a single reflective journaling prompt for a mother, " +
		"tailored to her stage of motherhood and her recent experiences. " +
		"Return only the prompt itself, one or two sentences, nothing else."
)

var (
	ErrNotConfigured = errors.New("gemini client not configured")
	ErrEmptyResponse = errors.New("gemini returned an empty response")
)

// Flows implementa ai.PromptFlows sobre Gemini.
// Dos flujos independientes, sin streaming, sin memoria: cada llamada arma
// su propio prompt y listo. Sin retry: el upstream falla => el handler
// devuelve error genérico.
type Flows struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, apiKey string) (*Flows, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Flows{client: client, model: defaultModelName}, nil
}

func (f *Flows) Close() error {
	if f == nil || f.client == nil {
		return nil
	}
	return f.client.Close()
}

func (f *Flows) SupportAnswer(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("question required")
	}
	return f.generate(ctx, supportSystemInstruction, question)
}

func (f *Flows) JournalPrompt(ctx context.Context, stageOfMotherhood, recentExperiences string) (string, error) {
	stage := strings.TrimSpace(stageOfMotherhood)
	recent := strings.TrimSpace(recentExperiences)
	if stage == "" || recent == "" {
		return "", errors.New("stageOfMotherhood and recentExperiences required")
	}

	user := fmt.Sprintf("Stage of motherhood: %s\nRecent experiences: %s", stage, recent)
	return f.generate(ctx, journalPromptSystemInstruction, user)
}

func (f *Flows) generate(ctx context.Context, system, user string) (string, error) {
	if f == nil || f.client == nil {
		return "", ErrNotConfigured
	}

	model := f.client.GenerativeModel(f.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
