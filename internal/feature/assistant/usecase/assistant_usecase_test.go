package usecase

import (
	"context"
	"errors"
	"testing"

	"seeek_backend/internal/feature/assistant/domain/entity"
)

// mockResponder はResponderインターフェースのモック実装です。
type mockResponder struct {
	RespondFunc  func(ctx context.Context, history, message string, p entity.Profile) (*entity.ChatReply, error)
	RespondCalls int
}

func (m *mockResponder) Respond(ctx context.Context, history, message string, p entity.Profile) (*entity.ChatReply, error) {
	m.RespondCalls++
	return m.RespondFunc(ctx, history, message, p)
}

func TestAssistantUsecase_Chat(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		responder := &mockResponder{}
		uc := NewAssistantUsecase(responder)

		_, err := uc.Chat(context.Background(), "", "", entity.Profile{})

		if !errors.Is(err, ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got: %v", err)
		}
		if responder.RespondCalls != 0 {
			t.Errorf("responder should not be called, got %d calls", responder.RespondCalls)
		}
	})

	t.Run("history and profile forwarded", func(t *testing.T) {
		responder := &mockResponder{
			RespondFunc: func(ctx context.Context, history, message string, p entity.Profile) (*entity.ChatReply, error) {
				if history != "user: Hi\nassistant: Hello! How can I help?" {
					t.Errorf("unexpected history: %q", history)
				}
				if message != "What should I eat for dinner?" {
					t.Errorf("unexpected message: %q", message)
				}
				if p.Nationality != "Nigerian" {
					t.Errorf("expected profile to be forwarded, got %+v", p)
				}
				return &entity.ChatReply{ChatResponse: "Try a light pepper soup."}, nil
			},
		}

		uc := NewAssistantUsecase(responder)
		reply, err := uc.Chat(context.Background(), "user: Hi\nassistant: Hello! How can I help?",
			"What should I eat for dinner?", entity.Profile{Nationality: "Nigerian"})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply.ChatResponse != "Try a light pepper soup." {
			t.Errorf("unexpected reply: %+v", reply)
		}
	})

	t.Run("responder failure", func(t *testing.T) {
		responder := &mockResponder{
			RespondFunc: func(ctx context.Context, history, message string, p entity.Profile) (*entity.ChatReply, error) {
				return nil, errors.New("model overloaded")
			},
		}

		uc := NewAssistantUsecase(responder)
		_, err := uc.Chat(context.Background(), "", "dinner ideas", entity.Profile{})

		if err == nil {
			t.Fatal("expected an error")
		}
	})
}
