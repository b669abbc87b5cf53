package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/rohits-web03/medrecords/internal/apperr"
	"github.com/rs/zerolog"
)

// ChatClient is the streaming chat call of the model server.
type ChatClient interface {
	Chat(ctx context.Context, req *api.ChatRequest, fn api.ChatResponseFunc) error
}

// NewOllamaClient returns a client for the Ollama server at host.
func NewOllamaClient(host string) (*api.Client, error) {
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("parse ollama host: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("ollama host %q must be an absolute URL", host)
	}
	return api.NewClient(base, http.DefaultClient), nil
}

type ChatService struct {
	client  ChatClient
	model   string
	timeout time.Duration
	logger  zerolog.Logger
}

func NewChatService(client ChatClient, model string, timeout time.Duration, logger zerolog.Logger) *ChatService {
	return &ChatService{client: client, model: model, timeout: timeout, logger: logger}
}

// Chat sends prompt as a single user message and joins the streamed
// fragments, in arrival order, into one reply. Nothing is returned until the
// stream ends. The call is bounded by the service timeout and by ctx.
func (s *ChatService) Chat(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apperr.New(apperr.ErrBadRequest, "No prompt provided")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stream := true
	req := &api.ChatRequest{
		Model:    s.model,
		Messages: []api.Message{{Role: "user", Content: prompt}},
		Stream:   &stream,
	}

	start := time.Now()
	var reply strings.Builder
	fragments := 0
	err := s.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		fragments++
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("model", s.model).Int("fragments", fragments).Msg("chat failed")
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return "", fmt.Errorf("model %s did not answer within %s: %w", s.model, s.timeout, context.DeadlineExceeded)
		case ctx.Err() != nil:
			return "", ctx.Err()
		default:
			return "", apperr.Wrap(apperr.ErrUpstreamUnavailable, err, "model service unavailable: "+err.Error())
		}
	}

	s.logger.Info().
		Str("model", s.model).
		Int("fragments", fragments).
		Dur("elapsed", time.Since(start)).
		Msg("chat completed")
	return reply.String(), nil
}
