// Package core holds the conversation brain: the chat service delegating to
// the model, the fixed prompts, the doctor catalog and the doctor-selection
// state machine.
package core

import (
	"context"

	"github.com/rs/zerolog"

	"mediconnect-bot/internal/extract"
	"mediconnect-bot/internal/llm"
	"mediconnect-bot/pkg"
)

// ChatService produces assistant replies.  The system prompt plus the
// rendered profile context is prepended to the full turn history on every
// call.
type ChatService struct {
	llm llm.Client
	log zerolog.Logger
}

// NewChatService constructs a ChatService with the given model client.
func NewChatService(client llm.Client, log zerolog.Logger) *ChatService {
	return &ChatService{llm: client, log: log}
}

// Reply asks the model for the next assistant turn.  history must already
// include the latest user message.  On model failure the fixed apology is
// returned together with the error so the caller can log it; the
// conversation continues either way.
func (s *ChatService) Reply(ctx context.Context, profile *pkg.PatientProfile, history []pkg.Message) (string, error) {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: SystemPrompt + "\n\n" + extract.RenderContext(profile),
	})
	for _, m := range history {
		messages = append(messages, llm.Message{Role: string(m.Role), Content: m.Content})
	}

	reply, err := s.llm.Chat(ctx, messages)
	if err != nil {
		s.log.Error().Err(err).Msg("model call failed")
		return Apology, err
	}
	return reply, nil
}
