package coach

import (
	"context"
	"strings"
	"sync"

	"focusdeck/internal/llm"
	"focusdeck/internal/stats"
	"focusdeck/internal/tasks"
)

// Canned replies used when the coach cannot reach the model. Chat never
// fails outright; it degrades to these so the app stays usable offline.
const (
	fallbackNoProvider = "I'm currently unable to assist due to a configuration issue. Please ensure the API key is set up correctly. In the meantime, here's a study tip: Use this time to review your recent notes or practice active recall."

	fallbackEmptyMessage = "I notice your message is empty. Could you share what you'd like to learn about or which aspect of your studies you'd like to discuss? I'm here to help guide your learning journey."

	fallbackEmptyResponse = "I understand your message, but I'm having trouble formulating a response. Could you rephrase your question or try again?"

	fallbackError = "While I'm temporarily unable to respond due to an unexpected issue, here's a quick study tip: Take this moment to practice the 'brain dump' technique - write down everything you remember about your current topic. This helps reinforce learning. Please try your question again in a moment."
)

// Service is the AI study coach. It keeps a running chat history and
// offers single-turn helpers for explanations, session analysis, break
// suggestions, and study plans.
//
// The provider may be nil, in which case every method degrades to a
// canned fallback instead of failing.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	history []llm.Message

	// Async chat state. gen identifies the latest request; replies from
	// superseded requests are discarded.
	gen     int
	pending string
	ready   bool
}

// NewService creates a coach. A nil provider puts it in offline mode.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Available reports whether a model backend is configured.
func (s *Service) Available() bool {
	return s.provider != nil
}

// Chat sends one user message with the full conversation history and
// returns the reply. It never returns an error; failures degrade to a
// fallback reply and are not recorded in the history.
func (s *Service) Chat(ctx context.Context, message string) string {
	if strings.TrimSpace(message) == "" {
		return fallbackEmptyMessage
	}
	if s.provider == nil {
		return fallbackNoProvider
	}

	s.mu.Lock()
	s.history = append(s.history, llm.Message{Role: llm.RoleUser, Content: strings.TrimSpace(message)})
	msgs := make([]llm.Message, len(s.history))
	copy(msgs, s.history)
	s.mu.Unlock()

	ctx = llm.WithPurpose(ctx, "chat")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      coachSystemPrompt,
		Messages:    msgs,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return fallbackError
	}

	reply := strings.TrimSpace(string(resp.Content))
	if reply == "" {
		return fallbackEmptyResponse
	}

	s.mu.Lock()
	s.history = append(s.history, llm.Message{Role: llm.RoleAssistant, Content: reply})
	s.mu.Unlock()

	return reply
}

// Ask starts an async chat turn. Only one reply is pending at a time;
// a newer Ask supersedes any in-flight request, and the superseded
// reply is dropped when it arrives.
func (s *Service) Ask(ctx context.Context, message string) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.pending = ""
	s.ready = false
	s.mu.Unlock()

	go func() {
		reply := s.Chat(ctx, message)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		s.pending = reply
		s.ready = true
	}()
}

// ConsumeReply returns the pending chat reply if one is ready.
// After consumption the pending slot is cleared.
func (s *Service) ConsumeReply() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return "", false
	}
	reply := s.pending
	s.pending = ""
	s.ready = false
	return reply, true
}

// History returns a copy of the chat exchange so far.
func (s *Service) History() []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]llm.Message, len(s.history))
	copy(out, s.history)
	return out
}

// ExplainConcept asks for a structured explanation of a concept.
// Single-turn; the chat history is not involved.
func (s *Service) ExplainConcept(ctx context.Context, subject, concept string) string {
	return s.singleTurn(ctx, "explain", buildExplainUserMessage(subject, concept))
}

// AnalyzePerformance asks for a short analysis of a completed session.
func (s *Service) AnalyzePerformance(ctx context.Context, task tasks.Task, st stats.UserStats) string {
	return s.singleTurn(ctx, "analyze", buildAnalyzeUserMessage(task, st))
}

// SuggestBreak asks for a break activity suited to the break length and
// the focus score of the session just finished.
func (s *Service) SuggestBreak(ctx context.Context, breakMinutes, focusScore int) string {
	return s.singleTurn(ctx, "break", buildBreakUserMessage(breakMinutes, focusScore))
}

// singleTurn runs one history-free exchange. Like Chat, it never fails:
// a missing provider, a provider error, or an empty reply all degrade to
// the canned fallbacks.
func (s *Service) singleTurn(ctx context.Context, purpose, userMsg string) string {
	if s.provider == nil {
		return fallbackNoProvider
	}

	ctx = llm.WithPurpose(ctx, purpose)
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      coachSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMsg}},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return fallbackError
	}

	reply := strings.TrimSpace(string(resp.Content))
	if reply == "" {
		return fallbackEmptyResponse
	}
	return reply
}
