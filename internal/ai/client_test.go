package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	gissyerrors "gissy.dev/gissy/internal/errors"
)

const testDiff = "diff --git a/file.go b/file.go\n+new code"

func TestMockClient_GenerateCommitMessage(t *testing.T) {
	mock := NewMockClient()
	mock.SetMockCommitMessage("feat: add code")

	msg, err := mock.GenerateCommitMessage(context.Background(), testDiff)
	if err != nil {
		t.Fatalf("GenerateCommitMessage failed: %v", err)
	}
	if msg != "feat: add code" {
		t.Errorf("Expected 'feat: add code', got '%s'", msg)
	}
	if mock.CommitCallCount() != 1 {
		t.Errorf("Expected 1 call, got %d", mock.CommitCallCount())
	}
	if mock.LastDiff() != testDiff {
		t.Errorf("Expected last diff to be recorded")
	}
}

func TestMockClient_ErrorHandling(t *testing.T) {
	mock := NewMockClient()
	expectedErr := errors.New("test error")
	mock.SetMockCommitError(expectedErr)

	_, err := mock.GenerateCommitMessage(context.Background(), testDiff)
	if !errors.Is(err, expectedErr) {
		t.Errorf("Expected error '%v', got '%v'", expectedErr, err)
	}

	mock.Reset()
	if _, err := mock.GenerateCommitMessage(context.Background(), testDiff); err == nil {
		t.Error("Expected error when no response is set")
	}
}

func TestMockClient_DelayHonorsContext(t *testing.T) {
	mock := NewMockClient()
	mock.SetMockCommitMessage("feat: slow")
	mock.SetDelay(time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := mock.GenerateCommitMessage(ctx, testDiff)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}

func TestMockClient_FactoryRecordsKeys(t *testing.T) {
	mock := NewMockClient()
	factory := mock.Factory()

	for _, key := range []string{"first", "second"} {
		client, err := factory(context.Background(), key)
		if err != nil {
			t.Fatalf("factory failed: %v", err)
		}
		if client != mock {
			t.Fatal("factory should return the mock")
		}
	}

	keys := mock.Keys()
	if len(keys) != 2 || keys[0] != "first" || keys[1] != "second" {
		t.Errorf("unexpected keys %v", keys)
	}
}

func TestCredentials(t *testing.T) {
	t.Setenv("GISSY_TEST_KEY", "  sk-test  ")
	key, ok := NewEnvCredential("GISSY_TEST_KEY").APIKey()
	if !ok || key != "sk-test" {
		t.Errorf("expected trimmed key, got %q %v", key, ok)
	}

	t.Setenv("GISSY_TEST_KEY", "")
	if _, ok := NewEnvCredential("GISSY_TEST_KEY").APIKey(); ok {
		t.Error("empty variable should be reported as missing")
	}

	if NewEnvCredential("").Describe() != DefaultAPIKeyEnv {
		t.Errorf("default credential should read %s", DefaultAPIKeyEnv)
	}

	// read at call time, not at construction
	cred := NewEnvCredential("GISSY_TEST_KEY")
	t.Setenv("GISSY_TEST_KEY", "rotated")
	if key, _ := cred.APIKey(); key != "rotated" {
		t.Errorf("expected rotated key, got %q", key)
	}

	if _, ok := StaticCredential("  ").APIKey(); ok {
		t.Error("blank static credential should be missing")
	}
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	_, err := NewOpenAIClient(context.Background(), "", OpenAIConfig{})
	if !errors.Is(err, gissyerrors.ErrMissingCredential) {
		t.Errorf("expected ErrMissingCredential, got %v", err)
	}
}

func newChatServer(t *testing.T, content string, status int) (*httptest.Server, *[]map[string]interface{}) {
	t.Helper()
	var requests []map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		requests = append(requests, body)

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   DefaultModel,
			"choices": []map[string]interface{}{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]interface{}{"role": "assistant", "content": content},
			}},
			"usage": map[string]interface{}{"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2},
		})
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func TestOpenAIClient_GenerateCommitMessage(t *testing.T) {
	server, requests := newChatServer(t, "  \"feat: add code\"\n", http.StatusOK)

	client, err := NewOpenAIClient(context.Background(), "sk-test", OpenAIConfig{BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIClient failed: %v", err)
	}

	msg, err := client.GenerateCommitMessage(context.Background(), testDiff)
	if err != nil {
		t.Fatalf("GenerateCommitMessage failed: %v", err)
	}
	if msg != "feat: add code" {
		t.Errorf("expected cleaned message, got %q", msg)
	}

	if len(*requests) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(*requests))
	}
	messages, _ := (*requests)[0]["messages"].([]interface{})
	if len(messages) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(messages))
	}
	first, _ := messages[0].(map[string]interface{})
	if first["role"] != "system" {
		t.Errorf("expected system role first, got %v", first["role"])
	}
}

func TestOpenAIClient_EmptyResponse(t *testing.T) {
	server, _ := newChatServer(t, "   ", http.StatusOK)

	client, err := NewOpenAIClient(context.Background(), "sk-test", OpenAIConfig{BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIClient failed: %v", err)
	}

	_, err = client.GenerateCommitMessage(context.Background(), testDiff)
	if !errors.Is(err, gissyerrors.ErrEmptyAIResponse) {
		t.Errorf("expected ErrEmptyAIResponse, got %v", err)
	}
}

func TestOpenAIClient_ServiceError(t *testing.T) {
	server, _ := newChatServer(t, "", http.StatusInternalServerError)

	client, err := NewOpenAIClient(context.Background(), "sk-test", OpenAIConfig{BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIClient failed: %v", err)
	}

	if _, err := client.GenerateCommitMessage(context.Background(), testDiff); err == nil {
		t.Error("expected an error for a 500 response")
	}
}

func TestBuildCommitMessagePrompt(t *testing.T) {
	prompt := BuildCommitMessagePrompt(testDiff)
	if !strings.Contains(prompt, testDiff) {
		t.Error("prompt should contain the diff")
	}
	if !strings.Contains(prompt, "present tense") {
		t.Error("prompt should ask for present tense")
	}

	long := strings.Repeat("+x\n", maxDiffLength)
	prompt = BuildCommitMessagePrompt(long)
	if !strings.Contains(prompt, "(diff truncated)") {
		t.Error("long diffs should be truncated")
	}
	if len(prompt) > maxDiffLength+1000 {
		t.Errorf("prompt too long: %d", len(prompt))
	}
}

func TestBuildCommitMessagePrompt_TruncatesOnRuneBoundary(t *testing.T) {
	// "é" is two bytes, so the byte limit falls inside a rune
	long := "+" + strings.Repeat("é", maxDiffLength)
	prompt := BuildCommitMessagePrompt(long)
	if !utf8.ValidString(prompt) {
		t.Fatal("truncated prompt is not valid UTF-8")
	}
	if !strings.Contains(prompt, "(diff truncated)") {
		t.Error("long diffs should be truncated")
	}

	if got := truncateDiff("+é", 2); got != "+" {
		t.Errorf("truncateDiff split a rune: %q", got)
	}
	if got := truncateDiff("+é", 3); got != "+é" {
		t.Errorf("truncateDiff dropped a whole rune: %q", got)
	}
}

func TestCleanResponse(t *testing.T) {
	tests := map[string]string{
		"feat: add x":                  "feat: add x",
		"  feat: add x \n":             "feat: add x",
		"\"feat: add x\"":              "feat: add x",
		"'fix: y'":                     "fix: y",
		"```\nfeat: add x\n```":        "feat: add x",
		"```text\nfeat: add x\n```":    "feat: add x",
		"`chore: z`":                   "chore: z",
		"feat: keep \"inner\" quotes":  "feat: keep \"inner\" quotes",
		"":                             "",
	}
	for in, want := range tests {
		if got := CleanResponse(in); got != want {
			t.Errorf("CleanResponse(%q) = %q, want %q", in, got, want)
		}
	}
}
