// Package agent implements the advice collaborator: a Gemini-backed
// financial advisor that receives a read-only summary of the ledger and
// returns free-text advice. It never mutates ledger state.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/cashpilot/cashpilot"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

const advicePrompt = `You are a financial advisor for the app "Cash Pilot".
Analyze the following user financial summary JSON and provide 3 brief, actionable insights or warnings.
Focus on spending habits, loan risks (overdue or high interest), and saving opportunities.
Keep it friendly and encouraging.

Data:
%s
`

// Advisor wraps a Gemini client configured for one model.
type Advisor struct {
	client *genai.Client
	model  string
}

// NewAdvisor creates an Advisor. The client picks its API key up from the
// environment; an empty model falls back to DefaultModel.
func NewAdvisor(ctx context.Context, model string) (*Advisor, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not initialize Gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Advisor{client: client, model: model}, nil
}

// Advise sends the ledger summary and returns the generated advice.
func (a *Advisor) Advise(ctx context.Context, summary cashpilot.AdviceSummary) (string, error) {
	prompt, err := buildPrompt(summary)
	if err != nil {
		return "", err
	}
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("could not generate advice: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no response from advisor")
	}
	return text, nil
}

// buildPrompt renders the advice prompt around the serialized summary.
func buildPrompt(summary cashpilot.AdviceSummary) (string, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not serialize summary: %w", err)
	}
	return fmt.Sprintf(advicePrompt, data), nil
}
