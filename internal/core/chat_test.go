package core

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediconnect-bot/internal/llm"
	"mediconnect-bot/pkg"
)

// capturingLLM records the request it received.
type capturingLLM struct {
	got   []llm.Message
	reply string
	err   error
}

func (c *capturingLLM) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	c.got = messages
	return c.reply, c.err
}

func TestChatService_Reply(t *testing.T) {
	client := &capturingLLM{reply: "How long have you had the headache?"}
	svc := NewChatService(client, zerolog.Nop())

	name := "John Smith"
	profile := pkg.PatientProfile{Name: &name}
	history := []pkg.Message{
		{Role: pkg.RoleUser, Content: "hello"},
		{Role: pkg.RoleAssistant, Content: "hi, tell me about yourself"},
		{Role: pkg.RoleUser, Content: "I have a headache"},
	}

	reply, err := svc.Reply(context.Background(), &profile, history)
	require.NoError(t, err)
	assert.Equal(t, "How long have you had the headache?", reply)

	// System prompt + rendered context first, then the history in order.
	require.Len(t, client.got, 4)
	assert.Equal(t, "system", client.got[0].Role)
	assert.Contains(t, client.got[0].Content, "Dr. Sara")
	assert.Contains(t, client.got[0].Content, "Name: John Smith")
	assert.Equal(t, "user", client.got[1].Role)
	assert.Equal(t, "I have a headache", client.got[3].Content)
}

func TestChatService_ReplyFailure(t *testing.T) {
	client := &capturingLLM{err: errors.New("rate limited")}
	svc := NewChatService(client, zerolog.Nop())

	reply, err := svc.Reply(context.Background(), &pkg.PatientProfile{}, nil)
	assert.Error(t, err)
	assert.Equal(t, Apology, reply)
}
