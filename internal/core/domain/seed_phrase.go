package domain

import (
	"fmt"
	"strings"
)

const (
	ShortSeedPhraseLength = 12
	LongSeedPhraseLength  = 24
)

// SeedPhrase is the N-word (12 or 24) mnemonic being composed. Its length is
// fixed for the lifetime of the slots; changing word count reallocates them.
type SeedPhrase struct {
	words   []string
	payload string
	lastErr error
}

func NewSeedPhrase(wordCount int) (*SeedPhrase, error) {
	p := &SeedPhrase{}
	if err := p.SetWordCount(wordCount); err != nil {
		return nil, err
	}
	return p, nil
}

// SetWordCount resets the phrase to wordCount empty slots and clears any
// previous encoded output or error.
func (p *SeedPhrase) SetWordCount(wordCount int) error {
	if wordCount != ShortSeedPhraseLength && wordCount != LongSeedPhraseLength {
		return ErrInvalidWordCount
	}
	p.words = make([]string, wordCount)
	p.payload = ""
	p.lastErr = nil
	return nil
}

// SetWord trims and lowercases raw and stores it in slot i. Vocabulary
// membership is not checked.
func (p *SeedPhrase) SetWord(i int, raw string) error {
	if err := p.checkIndex(i); err != nil {
		return err
	}
	p.words[i] = strings.ToLower(strings.TrimSpace(raw))
	return nil
}

// PasteBulk handles text pasted into slot target. N words replace the whole
// phrase, a single word only edits the target slot, anything else is
// rejected without touching the slots.
func (p *SeedPhrase) PasteBulk(raw string, target int) error {
	tokens := strings.Fields(raw)

	switch len(tokens) {
	case len(p.words):
		for i, t := range tokens {
			p.words[i] = strings.ToLower(t)
		}
		return nil
	case 1:
		return p.SetWord(target, tokens[0])
	default:
		p.lastErr = fmt.Errorf(
			"%w: please paste exactly %d words, got %d",
			ErrWrongWordCount, len(p.words), len(tokens),
		)
		return p.lastErr
	}
}

// Encode returns the words joined by single spaces. It fails if any slot is
// still empty.
func (p *SeedPhrase) Encode() (string, error) {
	p.payload = ""
	p.lastErr = nil

	if !p.IsComplete() {
		p.lastErr = fmt.Errorf(
			"%w: please enter all %d words", ErrIncompletePhrase, len(p.words),
		)
		return "", p.lastErr
	}

	p.payload = strings.Join(p.words, " ")
	return p.payload, nil
}

// Clear empties all slots, keeping the current word count.
func (p *SeedPhrase) Clear() {
	p.SetWordCount(len(p.words))
}

func (p *SeedPhrase) WordCount() int {
	return len(p.words)
}

func (p *SeedPhrase) Word(i int) string {
	if p.checkIndex(i) != nil {
		return ""
	}
	return p.words[i]
}

func (p *SeedPhrase) Words() []string {
	words := make([]string, len(p.words))
	copy(words, p.words)
	return words
}

// FilledCount returns the number of non-empty slots.
func (p *SeedPhrase) FilledCount() int {
	count := 0
	for _, w := range p.words {
		if len(w) > 0 {
			count++
		}
	}
	return count
}

func (p *SeedPhrase) IsComplete() bool {
	return p.FilledCount() == len(p.words)
}

// Payload returns the last successfully encoded phrase, if any.
func (p *SeedPhrase) Payload() string {
	return p.payload
}

// LastError returns the error of the last paste or encode attempt.
func (p *SeedPhrase) LastError() error {
	return p.lastErr
}

func (p *SeedPhrase) Validate() ValidationResult {
	if !p.IsComplete() {
		return NewValidationResult(fmt.Errorf(
			"%w: please enter all %d words", ErrIncompletePhrase, len(p.words),
		))
	}
	return NewValidationResult(nil)
}

func (p *SeedPhrase) BuildPayload() (string, error) {
	return p.Encode()
}

func (p *SeedPhrase) ErrorCorrection() ErrorCorrectionLevel {
	return ErrorCorrectionHigh
}

func (p *SeedPhrase) Mode() Mode {
	return ModeSeedPhrase
}

func (p *SeedPhrase) checkIndex(i int) error {
	if i < 0 || i >= len(p.words) {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}
	return nil
}
