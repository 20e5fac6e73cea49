// Package customer produces the simulated customer's side of the role-play.
// The conversation model is an opaque request/response collaborator: the
// session hands it the ordered turn history, it returns the next reply.
package customer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/grivetoutdoors/salestrainer/internal/persona"
	"github.com/grivetoutdoors/salestrainer/internal/session"
)

// Simulator is the conversation collaborator the session talks to.
type Simulator interface {
	Reply(ctx context.Context, turns []session.Turn) (string, error)
}

var claudeModels = map[string]string{
	"haiku":  "claude-haiku-4-5-20251001",
	"sonnet": "claude-sonnet-4-5-20250929",
}

const (
	temperature    = 0.7
	maxTokens      = 1024
	maxRetries     = 3
	initialBackoff = 1 * time.Second
	backoffMult    = 2
)

// ClaudeSimulator plays the customer persona using the Anthropic API.
type ClaudeSimulator struct {
	client    anthropic.Client
	model     string
	sysPrompt string
}

// NewClaudeSimulator builds a simulator for the given persona and employee.
// model is "haiku" or "sonnet"; unknown values fall back to haiku.
func NewClaudeSimulator(model string, p persona.Persona, employeeName string) *ClaudeSimulator {
	return &ClaudeSimulator{
		client:    anthropic.NewClient(),
		model:     model,
		sysPrompt: BuildSystemPrompt(p, employeeName),
	}
}

// Reply sends the accumulated conversation and returns the customer's next
// message. Transient API failures are retried with doubling backoff; a
// failure never invalidates the turns already accumulated upstream.
func (c *ClaudeSimulator) Reply(ctx context.Context, turns []session.Turn) (string, error) {
	ctx, span := otel.Tracer("customer").Start(ctx, "customer.Reply")
	defer span.End()

	modelID := claudeModels[c.model]
	if modelID == "" {
		modelID = claudeModels["haiku"]
	}
	span.SetAttributes(attribute.String("model", modelID))

	messages := toMessageParams(turns)
	if len(messages) == 0 {
		return "", fmt.Errorf("no conversation turns to reply to")
	}

	var lastErr error
	backoff := initialBackoff

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:       anthropic.Model(modelID),
			MaxTokens:   maxTokens,
			Temperature: anthropic.Float(temperature),
			System: []anthropic.TextBlockParam{
				{Text: c.sysPrompt},
			},
			Messages: messages,
		})
		if err != nil {
			lastErr = fmt.Errorf("customer model error (attempt %d/%d): %w", attempt, maxRetries, err)
			if attempt < maxRetries {
				select {
				case <-ctx.Done():
					return "", ctx.Err()
				case <-time.After(backoff):
				}
				backoff *= time.Duration(backoffMult)
			}
			continue
		}

		text := extractText(message)
		if text == "" {
			lastErr = fmt.Errorf("empty reply from customer model (attempt %d/%d)", attempt, maxRetries)
			if attempt < maxRetries {
				select {
				case <-ctx.Done():
					return "", ctx.Err()
				case <-time.After(backoff):
				}
				backoff *= time.Duration(backoffMult)
			}
			continue
		}

		return text, nil
	}

	return "", lastErr
}

// toMessageParams converts session turns to API messages. System turns are
// never part of the history — the system prompt is carried separately. The
// API requires a user turn first, so the app's opening welcome (an assistant
// turn in the transcript) is dropped along with any other leading assistant
// turns.
func toMessageParams(turns []session.Turn) []anthropic.MessageParam {
	var out []anthropic.MessageParam
	for _, t := range turns {
		switch t.Role {
		case session.RoleUser:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(t.Content)))
		case session.RoleAssistant:
			if len(out) == 0 {
				continue
			}
			out = append(out, anthropic.NewAssistantMessage(anthropic.NewTextBlock(t.Content)))
		}
	}
	return out
}

func extractText(msg *anthropic.Message) string {
	var parts []string
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			parts = append(parts, tb.Text)
		}
	}
	return strings.Join(parts, "")
}
