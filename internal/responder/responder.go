// Package responder implements the automated support replies: layered
// keyword, pattern and lookup rules with an optional generative fallback.
package responder

import (
	"context"
	"log"
	"regexp"
	"strings"
)

const (
	replyHelp      = "Don't worry — I'll connect you to a live agent now."
	replyEmotional = "I didn't quite understand that — let me connect you to a live agent for better assistance."
	replyGreeting  = "Hello! How can I help you today?"
	replyDefault   = "I'm not sure about that. Would you like me to connect you to a live agent?"
)

var helpKeywords = []string{
	"help", "support", "problem", "issue", "error", "stuck",
	"agent", "human", "representative", "staff", "i need help", "i need support",
}

var emotionalPattern = regexp.MustCompile(`\b(love|miss|like|hate|sad|angry)\b`)

var greetings = []string{"hi", "hello", "hey", "good morning", "good afternoon"}

// Generator produces a free-form continuation for inputs no rule covers.
type Generator interface {
	Generate(ctx context.Context, utterance string) (string, error)
}

// Responder is constructed once at startup with its table and optional
// generator, then shared by reference. It holds no mutable state.
type Responder struct {
	faq       *Table
	generator Generator
}

func New(faq *Table, generator Generator) *Responder {
	if faq == nil {
		faq = NewTable(nil)
	}
	return &Responder{faq: faq, generator: generator}
}

// Respond applies the rule layers in order, first match wins:
// help/support keywords, emotional topics, greetings, exact lookup,
// partial lookup, generative fallback, default fallback.
func (r *Responder) Respond(ctx context.Context, utterance string) string {
	input := strings.ToLower(strings.TrimSpace(utterance))

	for _, keyword := range helpKeywords {
		if strings.Contains(input, keyword) {
			return replyHelp
		}
	}

	if emotionalPattern.MatchString(input) {
		return replyEmotional
	}

	for _, greeting := range greetings {
		if input == greeting {
			return replyGreeting
		}
	}

	if answer, ok := r.faq.Exact(input); ok {
		return answer
	}
	if answer, ok := r.faq.Partial(input); ok {
		return answer
	}

	if r.generator != nil {
		generated, err := r.generator.Generate(ctx, utterance)
		if err != nil {
			log.Printf("responder fallback generation failed: %v", err)
		} else if reply := strings.TrimSpace(generated); reply != "" {
			return reply
		}
	}

	return replyDefault
}
