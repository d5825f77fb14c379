// Package advisor suggests spending groups for transaction categories using
// a Gemini chat session.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const modelName = "gemini-2.5-flash"

const systemInstruction = `You are a personal finance assistant. The user
maintains a mapping from transaction categories to spending groups for yearly
spending reports. Given a list of categories without a group and the list of
existing groups, propose a group for each category. Reuse existing groups
whenever one fits; invent a new group only when nothing fits. Answer with one
line per category, exactly "category: group", and nothing else.`

// Advisor holds a chat session with the grouping model.
type Advisor struct {
	chat *genai.Chat
}

// New creates the Gemini client from ambient credentials and opens the chat.
func New(ctx context.Context) (*Advisor, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, modelName, config, nil)
	if err != nil {
		return nil, fmt.Errorf("starting chat: %w", err)
	}
	return &Advisor{chat: chat}, nil
}

// SuggestGroups proposes a spending group for each ungrouped category. The
// result only holds categories the model actually answered for; the caller
// reviews and applies them.
func (a *Advisor) SuggestGroups(ctx context.Context, categories, groups []string) (map[string]string, error) {
	var b strings.Builder
	b.WriteString("Categories without a spending group:\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	b.WriteString("\nExisting spending groups:\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "- %s\n", g)
	}
	resp, err := a.chat.Send(ctx, &genai.Part{Text: b.String()})
	if err != nil {
		return nil, fmt.Errorf("asking for group suggestions: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from model")
	}
	return parseSuggestions(resp.Candidates[0].Content.Parts[0].Text, categories), nil
}

// parseSuggestions reads "category: group" lines, keeping only categories
// that were actually asked about.
func parseSuggestions(answer string, categories []string) map[string]string {
	asked := make(map[string]bool, len(categories))
	for _, c := range categories {
		asked[c] = true
	}
	suggestions := make(map[string]string)
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		category, group, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		category = strings.TrimSpace(category)
		group = strings.TrimSpace(group)
		if category == "" || group == "" || !asked[category] {
			continue
		}
		suggestions[category] = group
	}
	return suggestions
}
