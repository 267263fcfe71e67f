package responder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
}

func (g *stubGenerator) Generate(ctx context.Context, utterance string) (string, error) {
	g.calls++
	return g.reply, g.err
}

func testTable() *Table {
	return NewTable([]Entry{
		{Question: "Opening Hours", Answer: "We are open 9 to 6."},
		{Question: "hours", Answer: "Which hours do you mean?"},
		{Question: "do you deliver", Answer: "Yes, we deliver within the city."},
	})
}

func TestRespondRulePrecedence(t *testing.T) {
	r := New(testTable(), nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"help keyword wins", "I need help with my package", replyHelp},
		{"keyword beats lookup", "support for opening hours", replyHelp},
		{"emotional topic", "i hate waiting", replyEmotional},
		{"exact greeting", "Hello", replyGreeting},
		{"greeting needs whole match", "hello there friend", replyDefault},
		{"exact lookup", "  Opening Hours  ", "We are open 9 to 6."},
		{"default fallback", "tell me a joke", replyDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Respond(ctx, tt.input))
		})
	}
}

func TestRespondPartialLookupLongestWins(t *testing.T) {
	r := New(testTable(), nil)

	// Both "opening hours" and "hours" are contained in the input; the
	// longer question must win.
	got := r.Respond(context.Background(), "what are the opening hours today")
	assert.Equal(t, "We are open 9 to 6.", got)
}

func TestRespondGenerativeFallback(t *testing.T) {
	gen := &stubGenerator{reply: "A generated continuation."}
	r := New(testTable(), gen)

	got := r.Respond(context.Background(), "tell me a joke")
	assert.Equal(t, "A generated continuation.", got)
	assert.Equal(t, 1, gen.calls)
}

func TestRespondGeneratorNotConsultedOnRuleMatch(t *testing.T) {
	gen := &stubGenerator{reply: "should not be used"}
	r := New(testTable(), gen)

	r.Respond(context.Background(), "hello")
	assert.Equal(t, 0, gen.calls)
}

func TestRespondGeneratorFailureFallsThrough(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model unavailable")}
	r := New(testTable(), gen)

	got := r.Respond(context.Background(), "tell me a joke")
	assert.Equal(t, replyDefault, got)
}

func TestTableNormalization(t *testing.T) {
	table := NewTable([]Entry{
		{Question: "  MIXED Case  ", Answer: " trimmed answer "},
		{Question: "mixed case", Answer: "duplicate is dropped"},
		{Question: "", Answer: "no question"},
		{Question: "no answer", Answer: "  "},
	})

	require.Equal(t, 1, table.Len())
	answer, ok := table.Exact("mixed case")
	require.True(t, ok)
	assert.Equal(t, "trimmed answer", answer)
}
