package email_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/ErlanBelekov/wanderstore/internal/email"
)

func TestNewSender_LocalLogsInsteadOfSending(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	s := email.NewSender("local", "", "", logger)
	if _, ok := s.(*email.LogSender); !ok {
		t.Fatalf("sender = %T, want *email.LogSender", s)
	}

	if err := s.Send(context.Background(), "a@example.com", "Hi", "<p>secret body</p>"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if !strings.Contains(buf.String(), "a@example.com") {
		t.Errorf("log %q missing recipient", buf.String())
	}
	if strings.Contains(buf.String(), "secret body") {
		t.Error("body leaked into logs")
	}
}

func TestNewSender_ProductionUsesResend(t *testing.T) {
	s := email.NewSender("production", "re_test", "hello@example.com", slog.Default())
	if _, ok := s.(*email.ResendSender); !ok {
		t.Fatalf("sender = %T, want *email.ResendSender", s)
	}
}

func TestWelcomeMessage_EscapesName(t *testing.T) {
	subject, body := email.WelcomeMessage("<b>Eve</b>")
	if subject == "" {
		t.Error("empty subject")
	}
	if strings.Contains(body, "<b>Eve</b>") {
		t.Errorf("name not escaped: %s", body)
	}
	if !strings.Contains(body, "&lt;b&gt;Eve&lt;/b&gt;") {
		t.Errorf("escaped name missing: %s", body)
	}
}
