package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/calmvio/backend/internal/config"
	"github.com/calmvio/backend/internal/model/chat"
)

// Service wraps the language-model collaborator behind a single Complete
// call. The model is stateless across calls: the system prompt is passed
// verbatim and the full transcript is replayed on every turn.
type Service struct {
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the completion chain from the configured model backend.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile completion chain: %w", err)
	}

	return &Service{chain: runnable}, nil
}

// Complete sends the prior history plus the new user message to the model and
// returns the reply text. The new message travels as the final chain input,
// not as part of history.
func (s *Service) Complete(ctx context.Context, history []chat.Message, userText string) (string, error) {
	input := map[string]any{
		"system":  companionSystemPrompt,
		"history": buildHistoryMessages(history),
		"query":   userText,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run completion chain: %w", err)
	}

	log.Printf("[ai] generated reply, length=%d", len(response.Content))
	return response.Content, nil
}

func buildHistoryMessages(messages []chat.Message) []*schema.Message {
	if len(messages) == 0 {
		return nil
	}

	history := make([]*schema.Message, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chat.RoleAssistant:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}
	return history
}
