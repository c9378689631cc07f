package usecase

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"beaticafe/internal/infra/llm"
	"beaticafe/internal/knowledge"

	"go.uber.org/zap"
)

const (
	maxChatHistory = 20
	maxChatMessage = 1000
)

// Completer is the chat-completion backend.
type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

// PromptSource renders the assistant's system prompt.
type PromptSource interface {
	SystemPrompt() string
}

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatInput struct {
	History []ChatTurn `json:"history"`
	Message string     `json:"message"`
}

type ChatOutput struct {
	Reply string `json:"reply"`
	// Fallback is set when the assistant could not be reached.
	Fallback bool `json:"fallback"`
}

type ChatIntro struct {
	Assistant      string   `json:"assistant"`
	Greeting       string   `json:"greeting"`
	QuickQuestions []string `json:"quick_questions"`
}

type ChatUsecase struct {
	llm    Completer
	prompt PromptSource
	log    *zap.Logger
}

func NewChatUsecase(c Completer, prompt PromptSource, log *zap.Logger) *ChatUsecase {
	return &ChatUsecase{llm: c, prompt: prompt, log: log}
}

func (u *ChatUsecase) Intro() ChatIntro {
	return ChatIntro{
		Assistant:      knowledge.AssistantName,
		Greeting:       knowledge.Greeting,
		QuickQuestions: knowledge.QuickQuestions,
	}
}

// Reply answers the visitor. A failing backend is not an error: the visitor
// gets the fixed apology instead.
func (u *ChatUsecase) Reply(ctx context.Context, in ChatInput) (ChatOutput, error) {
	msg := strings.TrimSpace(in.Message)
	if msg == "" {
		return ChatOutput{}, NewHTTPError(http.StatusBadRequest, "message is required")
	}
	if utf8.RuneCountInString(msg) > maxChatMessage {
		return ChatOutput{}, NewHTTPError(http.StatusBadRequest, "message is too long")
	}

	history := in.History
	if len(history) > maxChatHistory {
		history = history[len(history)-maxChatHistory:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: u.prompt.SystemPrompt()})
	for _, t := range history {
		// the client cannot inject system turns
		if t.Role != llm.RoleUser && t.Role != llm.RoleAssistant {
			continue
		}
		messages = append(messages, llm.Message{Role: t.Role, Content: t.Content})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: msg})

	reply, err := u.llm.Complete(ctx, messages)
	if err != nil {
		u.log.Warn("chat completion failed", zap.Error(err), zap.Int("turns", len(messages)))
		return ChatOutput{Reply: knowledge.Fallback, Fallback: true}, nil
	}
	return ChatOutput{Reply: reply}, nil
}
