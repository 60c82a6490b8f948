package domain

import "strings"

// SuggestionLimit is the max number of suggestions returned for a prefix.
const SuggestionLimit = 10

// Suggest returns the vocabulary entries starting with prefix (case
// insensitive), in vocabulary order, truncated to limit. An empty prefix
// yields no suggestion.
func Suggest(prefix string, vocabulary []string, limit int) []string {
	suggestions := make([]string, 0)
	if prefix == "" || limit <= 0 {
		return suggestions
	}

	prefix = strings.ToLower(prefix)
	for _, word := range vocabulary {
		if strings.HasPrefix(strings.ToLower(word), prefix) {
			suggestions = append(suggestions, word)
			if len(suggestions) == limit {
				break
			}
		}
	}
	return suggestions
}

// Selection keeps track of the highlighted entry of a suggestion list.
// The highlighted index is always clamped to [0, len-1].
type Selection struct {
	suggestions []string
	highlighted int
}

func NewSelection(suggestions []string) *Selection {
	return &Selection{suggestions: suggestions}
}

func (s *Selection) Suggestions() []string {
	return s.suggestions
}

func (s *Selection) Highlighted() int {
	return s.highlighted
}

func (s *Selection) IsEmpty() bool {
	return len(s.suggestions) == 0
}

// Next moves the highlight one entry down, stopping at the last one.
func (s *Selection) Next() {
	if s.highlighted < len(s.suggestions)-1 {
		s.highlighted++
	}
}

// Previous moves the highlight one entry up, stopping at the first one.
func (s *Selection) Previous() {
	if s.highlighted > 0 {
		s.highlighted--
	}
}

// Commit returns the highlighted entry and clears the list.
func (s *Selection) Commit() (string, error) {
	if s.IsEmpty() {
		return "", ErrNoSuggestion
	}
	word := s.suggestions[s.highlighted]
	s.suggestions = nil
	s.highlighted = 0
	return word, nil
}

// CommitSuggestion stores the highlighted suggestion verbatim into the given
// slot of the phrase and returns the slot that should get focus next.
func CommitSuggestion(
	phrase *SeedPhrase, slot int, selection *Selection,
) (int, error) {
	if err := phrase.checkIndex(slot); err != nil {
		return slot, err
	}
	word, err := selection.Commit()
	if err != nil {
		return slot, err
	}

	phrase.words[slot] = word
	if slot+1 < len(phrase.words) {
		return slot + 1, nil
	}
	return slot, nil
}
