package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/voyago/voyago-backend/internal/api/models"
	"github.com/voyago/voyago-backend/internal/providers"
	"github.com/voyago/voyago-backend/internal/repository"
)

// ErrSessionNotFound is returned when a chat request names a session
// that does not exist.
var ErrSessionNotFound = errors.New("session not found")

const (
	searchResultLimit = 5

	// Reply sent instead of the raw parameter JSON once a search runs.
	completionReply = "Great! I found some travel packages for you based on your preferences. Here are the results:"

	// Reply for a model call that failed mid-flight. Deliberately not
	// the same text as the keyword fallback for an unconfigured model;
	// the two paths are distinct in the product today.
	transientFailureReply = "I'm here to help you plan your perfect trip! Could you tell me where you'd like to go?"
)

// SearchParams is the evolving trip-search parameter map gathered
// across a conversation. Keys follow the elicitation order: destination,
// origin, departure_month, departure_year, duration_days, travelers,
// budget, preferences.
type SearchParams map[string]interface{}

// Outcome is the result of one planner turn: either a completed
// parameter map or a free-text reply to pass through.
type Outcome struct {
	Params SearchParams
	Text   string
}

// Completed reports whether this outcome carries a finished parameter map
func (o Outcome) Completed() bool {
	return o.Params != nil
}

// PlannerService is the conversational trip planner. Each turn it
// persists the user message, asks the language model to either finish
// the parameter map or keep the conversation going, and runs a package
// search when the map completes.
type PlannerService struct {
	sessions  repository.SessionRepository
	messages  repository.MessageRepository
	packages  repository.PackageRepository
	provider  providers.Provider // nil when no model is configured
	maxTokens int
	timeout   time.Duration
	log       *logrus.Logger
}

// NewPlannerService creates a new planner service
func NewPlannerService(
	sessions repository.SessionRepository,
	messages repository.MessageRepository,
	packages repository.PackageRepository,
	provider providers.Provider,
	maxTokens int,
	timeout time.Duration,
	log *logrus.Logger,
) *PlannerService {
	return &PlannerService{
		sessions:  sessions,
		messages:  messages,
		packages:  packages,
		provider:  provider,
		maxTokens: maxTokens,
		timeout:   timeout,
		log:       log,
	}
}

// Chat processes one user message and returns the assistant reply,
// plus search results when this turn completed the parameter map.
// Model trouble never surfaces as an error: the reply degrades to
// fallback text instead.
func (s *PlannerService) Chat(ctx context.Context, userID, sessionID *int64, message string) (*models.ChatResponse, error) {
	session, err := s.resolveSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	_, err = s.messages.Create(ctx, repository.Message{
		SessionID:   session.ID,
		Sender:      repository.SenderUser,
		MessageText: message,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	history, err := s.messages.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	var knownParams SearchParams
	if err := json.Unmarshal(session.ActiveSearchParams, &knownParams); err != nil || knownParams == nil {
		knownParams = SearchParams{}
	}

	reply, outcome := s.nextTurn(ctx, history, knownParams, message)

	var searchResults []models.SearchResult
	if outcome.Completed() {
		raw, err := json.Marshal(outcome.Params)
		if err != nil {
			return nil, fmt.Errorf("failed to encode search params: %w", err)
		}
		if err := s.sessions.UpdateSearchParams(ctx, session.ID, raw); err != nil {
			return nil, fmt.Errorf("failed to update search params: %w", err)
		}

		searchResults, err = s.executeSearch(ctx, outcome.Params)
		if err != nil {
			// Degrade to a null result set; the reply still confirms
			// the gathered parameters.
			s.log.WithError(err).Error("travel search failed")
			searchResults = nil
		}
	}

	_, err = s.messages.Create(ctx, repository.Message{
		SessionID:   session.ID,
		Sender:      repository.SenderAI,
		MessageText: reply,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save assistant message: %w", err)
	}

	return &models.ChatResponse{
		Response:      reply,
		SearchResults: searchResults,
		SessionID:     session.ID,
	}, nil
}

// History returns the active session for a user and its messages in
// timestamp order, creating the session if the user has none.
func (s *PlannerService) History(ctx context.Context, userID *int64) (*models.ChatHistoryResponse, error) {
	session, err := s.sessions.GetOrCreateActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve active session: %w", err)
	}

	history, err := s.messages.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	messages := make([]models.ChatMessage, 0, len(history))
	for _, msg := range history {
		messages = append(messages, models.ChatMessage{
			ID:          msg.ID,
			SessionID:   msg.SessionID,
			Sender:      msg.Sender,
			MessageText: msg.MessageText,
			Timestamp:   msg.Timestamp,
		})
	}

	return &models.ChatHistoryResponse{
		SessionID: session.ID,
		Messages:  messages,
	}, nil
}

func (s *PlannerService) resolveSession(ctx context.Context, userID, sessionID *int64) (*repository.Session, error) {
	if sessionID != nil {
		session, err := s.sessions.Get(ctx, *sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		if session == nil {
			return nil, ErrSessionNotFound
		}
		return session, nil
	}

	session, err := s.sessions.Create(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// nextTurn decides this turn's reply. Exactly one model call is made
// when a provider is configured; none otherwise.
func (s *PlannerService) nextTurn(ctx context.Context, history []repository.Message, knownParams SearchParams, message string) (string, Outcome) {
	if s.provider == nil {
		return FallbackResponse(message), Outcome{}
	}

	prompt := buildPlannerPrompt(history, knownParams, message)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.provider.Complete(callCtx, providers.CompletionRequest{
		Prompt:    prompt,
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		s.log.WithError(err).Warn("model call failed, degrading to fallback reply")
		return transientFailureReply, Outcome{}
	}

	outcome := parseAssistantReply(raw)
	if outcome.Completed() {
		return completionReply, outcome
	}
	return outcome.Text, outcome
}

// parseAssistantReply classifies the model output: a JSON object
// containing a destination is a completed parameter map, anything else
// (including JSON without a destination) is free text passed through
// verbatim.
func parseAssistantReply(raw string) Outcome {
	var params SearchParams
	if err := json.Unmarshal([]byte(raw), &params); err == nil && params != nil {
		if _, ok := params["destination"]; ok {
			return Outcome{Params: params}
		}
	}
	return Outcome{Text: raw}
}

// executeSearch runs the package search for a completed parameter map.
// Travelers and budget default when absent; the query itself only
// filters on destination today.
func (s *PlannerService) executeSearch(ctx context.Context, params SearchParams) ([]models.SearchResult, error) {
	destination := destinationText(params)

	travelers := params["travelers"]
	if travelers == nil {
		travelers = 2
	}
	budget := params["budget"]
	if budget == nil {
		budget = "any"
	}

	s.log.WithFields(logrus.Fields{
		"destination": destination,
		"travelers":   travelers,
		"budget":      budget,
	}).Info("executing travel search")

	rows, err := s.packages.SearchByDestination(ctx, destination, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("package search failed: %w", err)
	}

	results := make([]models.SearchResult, 0, len(rows))
	for _, row := range rows {
		result := models.SearchResult{
			ID:          row.ID,
			Title:       row.Title,
			Destination: row.Destination,
			Price:       "Contact for pricing",
		}
		if row.PricePerPerson.Valid {
			result.Price = fmt.Sprintf("$%s", formatAmount(row.PricePerPerson.Float64))
		}
		if row.DurationDays.Valid {
			result.Duration = fmt.Sprintf("%d days", row.DurationDays.Int64)
		}
		if row.HotelName.Valid {
			name := row.HotelName.String
			result.Hotel = &name
		}
		if row.HotelRating.Valid {
			rating := row.HotelRating.Float64
			result.Rating = &rating
		}
		results = append(results, result)
	}

	return results, nil
}

// destinationText renders the destination parameter for the LIKE
// query. The model occasionally emits a non-string value (a number, a
// list); its printed form is still a usable match term, and an empty
// pattern would match the whole catalog.
func destinationText(params SearchParams) string {
	v, ok := params["destination"]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// buildPlannerPrompt renders the elicitation prompt: transcript so far
// (excluding the newest message), known parameters, and the newest
// message.
func buildPlannerPrompt(history []repository.Message, knownParams SearchParams, message string) string {
	var transcript strings.Builder
	for i, msg := range history {
		if i == len(history)-1 && msg.Sender == repository.SenderUser && msg.MessageText == message {
			break
		}
		transcript.WriteString(capitalizeSender(msg.Sender))
		transcript.WriteString(": ")
		transcript.WriteString(msg.MessageText)
		transcript.WriteString("\n")
	}

	known, err := json.Marshal(knownParams)
	if err != nil {
		known = []byte("{}")
	}

	return fmt.Sprintf(`You are a helpful and concise travel assistant. Your goal is to gather all necessary parameters to perform a travel search. The required parameters are: 'destination', 'origin', 'departure_month', 'departure_year', 'duration_days', 'travelers', 'budget', and 'preferences'.

Below is the current conversation history:
---
%s---

Based on the latest message, you must perform one of three actions:
1. **If you have gathered ALL required parameters:** Respond ONLY with a single, minified JSON object containing all the parameters. Do not add any conversational text.
2. **If the user is providing or modifying information but some parameters are still missing:** Acknowledge the information received and then ask a clear, concise follow-up question for the NEXT required piece of information.
3. **If the user's intent is unclear or is just conversational:** Provide a friendly, helpful response.

Current known parameters are: %s
Latest user message is: "%s"
`, transcript.String(), known, message)
}

func capitalizeSender(sender string) string {
	if sender == "" {
		return sender
	}
	return strings.ToUpper(sender[:1]) + sender[1:]
}

// formatAmount prints a price the way the storefront expects: two
// decimals, no trailing zeros beyond cents.
func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
