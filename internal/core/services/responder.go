package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nutricoach/nutricoach/internal/core/domain"
	"github.com/nutricoach/nutricoach/internal/core/ports/driven"
	"github.com/nutricoach/nutricoach/internal/logger"
)

// systemPrompt is the fixed nutrition-coach persona for single-turn
// answers.
const systemPrompt = `You are a professional nutrition tutor bot with expertise in dietetics, sports nutrition, and meal planning. Your role is to provide evidence-based, personalized nutrition guidance.

INSTRUCTIONS:
- Always base your responses on the provided context from the nutrition database
- Provide specific, actionable advice
- Include relevant nutritional data when available
- Acknowledge limitations and recommend consulting healthcare professionals for medical concerns
- Be encouraging and supportive while remaining scientifically accurate
- Use clear, accessible language

RESPONSE STRUCTURE:
1. Direct answer to the user's question
2. Relevant nutritional information and data
3. Practical recommendations or next steps
4. Any important disclaimers or considerations

Remember: You complement but do not replace professional medical advice.`

// conversationalSystemPrompt is the persona for chat sessions, which
// maintain context across turns.
const conversationalSystemPrompt = `You are a professional, conversational nutrition tutor bot with expertise in dietetics, sports nutrition, and meal planning. You maintain context across conversations and provide personalized, evidence-based guidance.

CONVERSATIONAL GUIDELINES:
- Remember and reference previous parts of our conversation
- Build on previous answers when relevant
- Ask clarifying questions when helpful
- Maintain a friendly, supportive, coaching tone
- Provide specific, actionable advice
- Always base responses on the provided nutrition database context

RESPONSE APPROACH:
- Acknowledge previous conversation when relevant
- Provide direct answers to questions
- Include relevant nutritional data and recommendations
- Suggest follow-up questions or next steps
- Be encouraging and motivating

Remember: You're a nutrition coach having an ongoing conversation, not just answering isolated questions.`

// Fallback answers substituted when the model call fails. The caller
// always receives a response string, never a raw backend error.
const (
	fallbackAnswer = "I apologize, but I'm currently unable to process your question due to a technical issue. Please try again in a moment."

	fallbackChatAnswer = "I'm having trouble processing your question right now. Could you try asking again or rephrase your question?"
)

// Style directives appended to the prompt, one per response style.
var styleInstructions = map[domain.ResponseStyle]string{
	domain.StyleBrief:          "Provide a concise, direct answer in 2-3 sentences.",
	domain.StyleComprehensive:  "Provide a thorough but accessible explanation with practical recommendations.",
	domain.StyleDetailed:       "Provide an in-depth response with detailed explanations, multiple options, and comprehensive guidance.",
	domain.StyleConversational: "Respond naturally and conversationally. Reference our discussion when relevant and ask follow-up questions to keep the dialogue flowing.",
}

// historyTurnLimit bounds the history block; assistant turns inside it
// are truncated to historyTruncateAt characters to bound prompt size.
const (
	historyTurnLimit   = 6
	historyTruncateAt  = 150
	defaultGenTimeout  = 120 * time.Second
	defaultMaxTokens   = 2000
	defaultTemperature = 0.7
)

// Responder assembles the final prompt and invokes the chat model once
// per request. Model failures are recovered here and replaced with a
// fixed fallback answer.
type Responder struct {
	model       driven.ChatModel
	timeout     time.Duration
	maxTokens   int
	temperature float64
}

// ResponderOption configures a Responder.
type ResponderOption func(*Responder)

// WithTimeout bounds each model call.
func WithTimeout(d time.Duration) ResponderOption {
	return func(r *Responder) { r.timeout = d }
}

// WithMaxTokens sets the generation token budget.
func WithMaxTokens(n int) ResponderOption {
	return func(r *Responder) { r.maxTokens = n }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) ResponderOption {
	return func(r *Responder) { r.temperature = t }
}

// NewResponder creates a responder over the given chat model.
func NewResponder(model driven.ChatModel, opts ...ResponderOption) *Responder {
	r := &Responder{
		model:       model,
		timeout:     defaultGenTimeout,
		maxTokens:   defaultMaxTokens,
		temperature: defaultTemperature,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GenerateRequest carries everything the responder folds into a prompt.
type GenerateRequest struct {
	Query        string
	ContextBlock string
	Profile      *domain.UserProfile
	History      []domain.ConversationTurn
	Style        domain.ResponseStyle

	// Conversational switches to the chat persona and fallback.
	Conversational bool
}

// Generate builds the prompt, invokes the model once and returns the
// answer text. On any model failure it returns the fixed fallback
// string; the caller always receives usable text.
func (r *Responder) Generate(ctx context.Context, req GenerateRequest) string {
	system := systemPrompt
	fallback := fallbackAnswer
	if req.Conversational {
		system = conversationalSystemPrompt
		fallback = fallbackChatAnswer
	}

	opts := driven.CompleteOptions{
		MaxTokens:   r.maxTokens,
		Temperature: r.temperature,
	}
	if req.Conversational {
		// Slightly higher temperature and mild penalties read more
		// naturally in dialogue.
		opts.Temperature = 0.8
		opts.PresencePenalty = 0.1
		opts.FrequencyPenalty = 0.1
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.model.Complete(ctx, system, r.buildUserPrompt(req), opts)
	if err != nil {
		logger.Warn("Model call failed: %v", err)
		return fallback
	}
	if strings.TrimSpace(text) == "" {
		logger.Warn("Model returned empty output")
		return fallback
	}
	return text
}

func (r *Responder) buildUserPrompt(req GenerateRequest) string {
	var b strings.Builder

	b.WriteString("CONTEXT FROM NUTRITION DATABASE:\n")
	b.WriteString(req.ContextBlock)
	b.WriteString("\n")

	if block := formatHistory(req.History); block != "" {
		b.WriteString("\nRECENT CONVERSATION:\n")
		b.WriteString(block)
		b.WriteString("\n")
	}

	if !req.Profile.IsZero() {
		b.WriteString("\nUSER PROFILE:\n")
		b.WriteString(req.Profile.Describe())
		b.WriteString("\n")
	}

	b.WriteString("\nCURRENT QUESTION: ")
	b.WriteString(req.Query)
	b.WriteString("\n\nRESPONSE STYLE: ")
	b.WriteString(styleInstruction(req.Style))
	b.WriteString("\n\nPlease provide a helpful, evidence-based response using the context provided above.")

	return b.String()
}

// formatHistory renders the recent turns, truncating assistant turns
// so long answers do not dominate the prompt.
func formatHistory(history []domain.ConversationTurn) string {
	if len(history) < 2 {
		return ""
	}

	recent := domain.RecentTurns(history, historyTurnLimit)
	lines := make([]string, 0, len(recent))
	for _, turn := range recent {
		label := "You"
		content := turn.Content
		if turn.Role == domain.RoleAssistant {
			label = "Assistant"
			if len(content) > historyTruncateAt {
				content = content[:historyTruncateAt] + "..."
			}
		}
		lines = append(lines, label+": "+content)
	}
	return strings.Join(lines, "\n")
}

func styleInstruction(style domain.ResponseStyle) string {
	if instruction, ok := styleInstructions[style]; ok {
		return instruction
	}
	return styleInstructions[domain.StyleComprehensive]
}

// Ping verifies the model backend is reachable.
func (r *Responder) Ping(ctx context.Context) error {
	if err := r.model.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrModelUnavailable, err)
	}
	return nil
}
