package usecase

import (
	"context"
	"strings"
)

type ChatUseCase struct {
	Client ChatCompleter
}

func NewChatUseCase(client ChatCompleter) *ChatUseCase {
	return &ChatUseCase{Client: client}
}

func (uc *ChatUseCase) Execute(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", &DomainError{Code: CodeValidation, Message: "prompt é obrigatório", Fields: []string{"prompt"}}
	}
	if uc.Client == nil {
		return "", internal("chat não configurado", nil)
	}

	answer, err := uc.Client.Complete(ctx, prompt)
	if err != nil {
		return "", internal("Erro ao processar a requisição", err)
	}
	return strings.TrimSpace(answer), nil
}
