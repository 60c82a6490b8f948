package domain_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/btcqr/internal/core/domain"
	"github.com/tyler-smith/go-bip39/wordlists"
)

func TestNewSeedPhrase(t *testing.T) {
	t.Parallel()

	for _, n := range []int{12, 24} {
		p, err := domain.NewSeedPhrase(n)
		require.NoError(t, err)
		require.Equal(t, n, p.WordCount())
		require.Zero(t, p.FilledCount())
		require.False(t, p.IsComplete())
	}

	for _, n := range []int{0, 1, 13, 18, 25, -12} {
		p, err := domain.NewSeedPhrase(n)
		require.ErrorIs(t, err, domain.ErrInvalidWordCount)
		require.Nil(t, p)
	}
}

func TestSeedPhraseEncode(t *testing.T) {
	t.Parallel()

	for _, n := range []int{12, 24} {
		n := n
		t.Run(fmt.Sprintf("%d_words", n), func(t *testing.T) {
			t.Parallel()

			p, err := domain.NewSeedPhrase(n)
			require.NoError(t, err)

			words := wordlists.English[:n]
			for i, w := range words {
				require.NoError(t, p.SetWord(i, w))
			}

			payload, err := p.Encode()
			require.NoError(t, err)
			require.Equal(t, strings.Join(words, " "), payload)
			require.Equal(t, payload, p.Payload())
			require.True(t, p.Validate().Ok)

			for i := 0; i < n; i++ {
				require.NoError(t, p.SetWord(i, ""))
				payload, err := p.Encode()
				require.ErrorIs(t, err, domain.ErrIncompletePhrase)
				require.Empty(t, payload)
				require.Equal(t, domain.KindIncompleteInput, domain.KindOf(err))

				res := p.Validate()
				require.False(t, res.Ok)
				require.Equal(t, domain.KindIncompleteInput, res.Reason)
				require.NoError(t, p.SetWord(i, words[i]))
			}
		})
	}
}

func TestSeedPhraseSetWord(t *testing.T) {
	t.Parallel()

	p, err := domain.NewSeedPhrase(12)
	require.NoError(t, err)

	require.NoError(t, p.SetWord(3, "  ABANDON \t"))
	require.Equal(t, "abandon", p.Word(3))
	require.Equal(t, 1, p.FilledCount())

	// Vocabulary membership is not enforced.
	require.NoError(t, p.SetWord(4, "NotAWord"))
	require.Equal(t, "notaword", p.Word(4))

	require.ErrorIs(t, p.SetWord(12, "abandon"), domain.ErrSlotOutOfRange)
	require.ErrorIs(t, p.SetWord(-1, "abandon"), domain.ErrSlotOutOfRange)
}

func TestSeedPhrasePasteBulk(t *testing.T) {
	t.Parallel()

	twelve := strings.Join(wordlists.English[100:112], " ")
	twentyFour := strings.Join(wordlists.English[200:224], " ")

	tests := []struct {
		name          string
		wordCount     int
		pasted        string
		target        int
		expectedWords func(before []string) []string
		expectedError error
	}{
		{
			name:      "all_words_replace_every_slot",
			wordCount: 12,
			pasted:    "  " + strings.ToUpper(twelve) + "\n",
			target:    7,
			expectedWords: func([]string) []string {
				return strings.Fields(twelve)
			},
		},
		{
			name:      "all_words_with_mixed_whitespace",
			wordCount: 24,
			pasted:    strings.ReplaceAll(twentyFour, " ", " \t\n "),
			target:    0,
			expectedWords: func([]string) []string {
				return strings.Fields(twentyFour)
			},
		},
		{
			name:      "single_word_edits_target_only",
			wordCount: 12,
			pasted:    "  Zoo  ",
			target:    5,
			expectedWords: func(before []string) []string {
				after := append([]string{}, before...)
				after[5] = "zoo"
				return after
			},
		},
		{
			name:          "too_few_words",
			wordCount:     12,
			pasted:        "abandon ability able",
			target:        0,
			expectedError: domain.ErrWrongWordCount,
		},
		{
			name:          "twelve_words_in_long_phrase",
			wordCount:     24,
			pasted:        twelve,
			target:        0,
			expectedError: domain.ErrWrongWordCount,
		},
		{
			name:          "only_whitespace",
			wordCount:     12,
			pasted:        " \n\t ",
			target:        0,
			expectedError: domain.ErrWrongWordCount,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := domain.NewSeedPhrase(tt.wordCount)
			require.NoError(t, err)
			require.NoError(t, p.SetWord(0, "first"))
			require.NoError(t, p.SetWord(tt.wordCount-1, "last"))
			before := p.Words()

			err = p.PasteBulk(tt.pasted, tt.target)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				require.Equal(t, domain.KindWrongWordCount, domain.KindOf(err))
				require.Equal(t, before, p.Words())
				require.ErrorIs(t, p.LastError(), tt.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expectedWords(before), p.Words())
		})
	}
}

func TestSeedPhraseSetWordCount(t *testing.T) {
	t.Parallel()

	p, err := domain.NewSeedPhrase(12)
	require.NoError(t, err)
	require.NoError(t, p.PasteBulk(strings.Join(wordlists.English[:12], " "), 0))
	_, err = p.Encode()
	require.NoError(t, err)
	require.NotEmpty(t, p.Payload())

	// Resetting to the same count still clears everything.
	require.NoError(t, p.SetWordCount(12))
	require.Zero(t, p.FilledCount())
	require.Empty(t, p.Payload())
	require.NoError(t, p.LastError())

	require.Error(t, p.PasteBulk("a b", 0))
	require.NoError(t, p.SetWordCount(24))
	require.Equal(t, 24, p.WordCount())
	require.NoError(t, p.LastError())

	require.ErrorIs(t, p.SetWordCount(18), domain.ErrInvalidWordCount)
	require.Equal(t, 24, p.WordCount())
}

func TestSeedPhraseClear(t *testing.T) {
	t.Parallel()

	p, err := domain.NewSeedPhrase(24)
	require.NoError(t, err)
	require.NoError(t, p.SetWord(0, "abandon"))

	p.Clear()
	require.Equal(t, 24, p.WordCount())
	require.Zero(t, p.FilledCount())
	require.Equal(t, domain.ModeSeedPhrase, p.Mode())
	require.Equal(t, domain.ErrorCorrectionHigh, p.ErrorCorrection())
}
