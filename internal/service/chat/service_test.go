package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/quickserve/crew-assistant/backend/internal/model/chat"
)

func TestCreateSessionAndLoadTranscript(t *testing.T) {
	svc := NewService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if session.ID == "" {
		t.Fatal("expected a session ID")
	}

	got, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.ID != session.ID {
		t.Fatalf("GetSession returned %s, want %s", got.ID, session.ID)
	}

	messages, err := svc.LoadTranscript(ctx, session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("new session should start empty, got %d messages", len(messages))
	}
}

func TestSaveMessageOrdering(t *testing.T) {
	svc := NewService()
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx)

	contents := []string{"hi", "Recommend a burger", "any deals?"}
	for _, content := range contents {
		err := svc.SaveMessage(ctx, chat.Message{
			SessionID: session.ID,
			Sender:    chat.RoleUser,
			Content:   content,
		})
		if err != nil {
			t.Fatalf("SaveMessage(%q): %v", content, err)
		}
	}

	messages, err := svc.LoadTranscript(ctx, session.ID)
	if err != nil {
		t.Fatalf("LoadTranscript: %v", err)
	}
	if len(messages) != len(contents) {
		t.Fatalf("got %d messages, want %d", len(messages), len(contents))
	}
	for i, message := range messages {
		if message.Content != contents[i] {
			t.Errorf("message %d = %q, want %q", i, message.Content, contents[i])
		}
		if message.ID == "" {
			t.Errorf("message %d missing generated ID", i)
		}
		if message.CreatedAt.IsZero() {
			t.Errorf("message %d missing timestamp", i)
		}
	}
}

func TestSaveMessageValidation(t *testing.T) {
	svc := NewService()
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx)

	err := svc.SaveMessage(ctx, chat.Message{SessionID: session.ID, Sender: chat.RoleUser})
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}

	err = svc.SaveMessage(ctx, chat.Message{SessionID: "missing", Sender: chat.RoleUser, Content: "hello"})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestLoadTranscriptUnknownSession(t *testing.T) {
	svc := NewService()

	_, err := svc.LoadTranscript(context.Background(), "nope")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

// LoadTranscript hands out a copy; callers must not observe later appends.
func TestLoadTranscriptReturnsCopy(t *testing.T) {
	svc := NewService()
	ctx := context.Background()
	session, _ := svc.CreateSession(ctx)

	if err := svc.SaveMessage(ctx, chat.Message{SessionID: session.ID, Sender: chat.RoleUser, Content: "first"}); err != nil {
		t.Fatalf("SaveMessage: %v", err)
	}
	snapshot, _ := svc.LoadTranscript(ctx, session.ID)

	if err := svc.SaveMessage(ctx, chat.Message{SessionID: session.ID, Sender: chat.RoleUser, Content: "second"}); err != nil {
		t.Fatalf("SaveMessage: %v", err)
	}
	if len(snapshot) != 1 {
		t.Fatalf("snapshot grew after later append: %d", len(snapshot))
	}
}

func TestTurnsConversion(t *testing.T) {
	messages := []chat.Message{
		{Sender: chat.RoleUser, Content: "hello"},
		{Sender: chat.RoleAssistant, Content: "hi there"},
	}

	turns := Turns(messages)
	if len(turns) != 2 {
		t.Fatalf("got %d turns, want 2", len(turns))
	}
	if turns[0].Role != chat.RoleUser || turns[0].Content != "hello" {
		t.Errorf("unexpected first turn: %+v", turns[0])
	}
	if turns[1].Role != chat.RoleAssistant {
		t.Errorf("unexpected second turn role: %s", turns[1].Role)
	}
}
