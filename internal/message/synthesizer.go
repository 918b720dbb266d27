package message

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"gissy.dev/gissy/internal/ai"
	gissyerrors "gissy.dev/gissy/internal/errors"
)

const (
	// DefaultTimeout bounds one AI attempt
	DefaultTimeout = ai.DefaultTimeout

	defaultMaxFailures = 3
	defaultOpenFor     = 60 * time.Second
)

// Logger is the subset of tui.Splog the synthesizer reports through.
type Logger interface {
	Debug(format string, args ...interface{})
	Warn(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

// Synthesizer generates commit messages. It is safe to reuse across calls;
// the only state carried between calls is the circuit breaker guarding the
// AI path.
type Synthesizer struct {
	factory    ai.Factory
	credential ai.CredentialSource
	timeout    time.Duration
	logger     Logger

	maxFailures uint32
	openFor     time.Duration
	breaker     *gobreaker.CircuitBreaker
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithClientFactory sets how AI clients are built.
func WithClientFactory(f ai.Factory) Option {
	return func(s *Synthesizer) {
		if f != nil {
			s.factory = f
		}
	}
}

// WithCredentialSource sets where the API key is read from on each attempt.
func WithCredentialSource(c ai.CredentialSource) Option {
	return func(s *Synthesizer) {
		if c != nil {
			s.credential = c
		}
	}
}

// WithTimeout bounds each AI attempt. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(s *Synthesizer) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the logger for warnings and debug output.
func WithLogger(l Logger) Option {
	return func(s *Synthesizer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCircuitBreaker sets how many consecutive AI failures open the breaker
// and how long it stays open.
func WithCircuitBreaker(maxFailures uint32, openFor time.Duration) Option {
	return func(s *Synthesizer) {
		if maxFailures > 0 {
			s.maxFailures = maxFailures
		}
		if openFor > 0 {
			s.openFor = openFor
		}
	}
}

// New creates a Synthesizer. Without options it reads OPENAI_API_KEY and
// talks to the OpenAI chat completion API.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		factory:     ai.NewOpenAIFactory(ai.OpenAIConfig{}),
		credential:  ai.NewEnvCredential(""),
		timeout:     DefaultTimeout,
		logger:      nopLogger{},
		maxFailures: defaultMaxFailures,
		openFor:     defaultOpenFor,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ai-commit-message",
		MaxRequests: 1,
		Timeout:     s.openFor,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.logger.Debug("%s circuit %s -> %s", name, from, to)
		},
	})
	return s
}

// Generate derives a message for diff. It never fails: every AI problem
// degrades to Fallback.
func (s *Synthesizer) Generate(ctx context.Context, diff string, useAI bool) GeneratedMessage {
	if strings.TrimSpace(diff) == "" {
		return GeneratedMessage{Subject: DefaultMessage, Source: SourceDefault}
	}
	if !useAI {
		return Fallback(diff)
	}

	text, err := s.generateAI(ctx, diff)
	if err != nil {
		switch {
		case errors.Is(err, gissyerrors.ErrMissingCredential):
			s.logger.Warn("%s not found in environment, using fallback message", s.credential.Describe())
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			s.logger.Debug("AI generation suspended after repeated failures, using fallback message")
		case errors.Is(err, gissyerrors.ErrEmptyAIResponse):
			s.logger.Warn("AI response was empty, using fallback message")
		default:
			s.logger.Warn("AI generation failed: %v", err)
			s.logger.Debug("using fallback message")
		}
		return Fallback(diff)
	}

	msg := Parse(text)
	msg.Source = SourceAI
	return msg
}

// BreakerState reports the AI circuit breaker state ("closed", "open",
// "half-open").
func (s *Synthesizer) BreakerState() string {
	return s.breaker.State().String()
}

func (s *Synthesizer) generateAI(ctx context.Context, diff string) (string, error) {
	// the key is read per attempt so rotated credentials take effect
	key, ok := s.credential.APIKey()
	if !ok {
		return "", gissyerrors.ErrMissingCredential
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		client, err := s.factory(attemptCtx, key)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("requesting AI commit message")
		text, err := client.GenerateCommitMessage(attemptCtx, diff)
		if err != nil {
			return nil, err
		}
		text = ai.CleanResponse(text)
		if text == "" {
			return nil, gissyerrors.ErrEmptyAIResponse
		}
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
