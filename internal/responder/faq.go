package responder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Entry is one canned question/answer pair.
type Entry struct {
	Question string `toml:"question"`
	Answer   string `toml:"answer"`
}

// Table holds the canned pairs, keyed by lower-cased trimmed question.
// Partial matching walks entries longest question first so the most specific
// entry wins and lookups stay deterministic.
type Table struct {
	entries []Entry
	exact   map[string]string
}

func NewTable(entries []Entry) *Table {
	normalized := make([]Entry, 0, len(entries))
	exact := make(map[string]string, len(entries))
	for _, e := range entries {
		q := strings.ToLower(strings.TrimSpace(e.Question))
		a := strings.TrimSpace(e.Answer)
		if q == "" || a == "" {
			continue
		}
		if _, dup := exact[q]; dup {
			continue
		}
		normalized = append(normalized, Entry{Question: q, Answer: a})
		exact[q] = a
	}
	sort.SliceStable(normalized, func(i, j int) bool {
		return len(normalized[i].Question) > len(normalized[j].Question)
	})
	return &Table{entries: normalized, exact: exact}
}

func LoadTable(path string) (*Table, error) {
	var file struct {
		Entries []Entry `toml:"entry"`
	}
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("decode faq table failed: %w", err)
	}
	return NewTable(file.Entries), nil
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Exact looks up the whole normalized input as a question.
func (t *Table) Exact(input string) (string, bool) {
	answer, ok := t.exact[input]
	return answer, ok
}

// Partial returns the answer of the longest question contained in the input.
func (t *Table) Partial(input string) (string, bool) {
	for _, e := range t.entries {
		if strings.Contains(input, e.Question) {
			return e.Answer, true
		}
	}
	return "", false
}
