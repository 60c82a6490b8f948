package vocabulary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tdex-network/btcqr/internal/core/ports"
	"github.com/tyler-smith/go-bip39/wordlists"
)

// Size is the number of words of a BIP-39 word list.
const Size = 2048

type service struct {
	words []string
	index map[string]struct{}
}

// NewEnglish returns the BIP-39 English word list.
func NewEnglish() ports.Vocabulary {
	v, _ := newService(wordlists.English)
	return v
}

// NewFromFile loads a custom word list, one word per line. Blank lines are
// ignored.
func NewFromFile(path string) (ports.Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	return NewFromReader(f)
}

func NewFromReader(r io.Reader) (ports.Vocabulary, error) {
	words := make([]string, 0, Size)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	svc, err := newService(words)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func newService(words []string) (*service, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, len(words))
	}

	index := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w != strings.ToLower(w) {
			return nil, fmt.Errorf("%w: %q", ErrNotLowercase, w)
		}
		if _, ok := index[w]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateWord, w)
		}
		index[w] = struct{}{}
	}

	return &service{words, index}, nil
}

func (s *service) Words() []string {
	return s.words
}

func (s *service) Contains(word string) bool {
	_, ok := s.index[word]
	return ok
}
