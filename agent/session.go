package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"

	"github.com/cashpilot/cashpilot"
)

const prompt = "advise> "

// Run starts an interactive chat session seeded with the ledger summary.
// The summary is handed to the model as system context; every user line is
// a chat turn. Typing 'bye' (or Ctrl+D) ends the session.
func (a *Advisor) Run(ctx context.Context, w io.Writer, r io.Reader, summary cashpilot.AdviceSummary, prompts ...string) error {
	seed, err := buildPrompt(summary)
	if err != nil {
		return err
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: seed}},
		},
	}
	chat, err := a.client.Chats.Create(ctx, a.model, config, nil)
	if err != nil {
		return fmt.Errorf("could not start chat session: %w", err)
	}

	fmt.Fprintln(w, "Welcome to Cash Pilot financial advice. Type 'bye' to exit.")

	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)
		var input string

		// Flush scripted prompts first, then ask the user.
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(w, input)
		} else {
			var err error
			input, err = reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		resp, err := chat.Send(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return fmt.Errorf("no response from advisor")
		}
		fmt.Fprintln(w, resp.Candidates[0].Content.Parts[0].Text)
	}
}
