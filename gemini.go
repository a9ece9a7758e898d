package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/bodul/xwordsetter/internal/puzzle"
)

// ClueWriter writes clue prose for answers placed in the grid.
type ClueWriter interface {
	WriteClues(ctx context.Context, clues []puzzle.Clue) ([]ClueText, error)
}

const writeCluesPrompt = `Tu es verbicruciste. Rédige une définition de mots croisés pour chacune des réponses ci-dessous.

Réponds au format JSON suivant :
[
  {"number": <numéro>, "direction": "across" | "down", "text": "Définition"},
  ...
]

Règles :
- Une seule définition par réponse, en français, de 2 à 8 mots.
- La définition ne contient jamais la réponse ni un mot de sa famille.
- Recopie "number" et "direction" tels quels.
- Réponds UNIQUEMENT avec le JSON, sans commentaire ni markdown.

Réponses :
`

// cluePrompt lists the clues that carry a complete answer.
func cluePrompt(clues []puzzle.Clue) (string, int) {
	var b strings.Builder
	b.WriteString(writeCluesPrompt)
	n := 0
	for _, c := range clues {
		if c.Answer == "" {
			continue
		}
		fmt.Fprintf(&b, "- %d %s : %s (%d)\n", c.Number, c.Direction, c.Answer, c.Length())
		n++
	}
	return b.String(), n
}

// WriteClues asks Gemini Flash for one definition per filled clue. Clues
// without a complete answer are skipped.
func (g *GeminiClient) WriteClues(ctx context.Context, clues []puzzle.Clue) ([]ClueText, error) {
	prompt, n := cluePrompt(clues)
	if n == 0 {
		return nil, nil
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.7)),
			TopP:             genai.Ptr(float32(1)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	return parseClueTexts(resp.Text())
}

func parseClueTexts(text string) ([]ClueText, error) {
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	var texts []ClueText
	if err := json.Unmarshal([]byte(text), &texts); err != nil {
		return nil, fmt.Errorf("parse clue JSON: %w\nraw response: %s", err, text)
	}
	for i := range texts {
		texts[i].Text = strings.TrimSpace(texts[i].Text)
	}
	return texts, nil
}
