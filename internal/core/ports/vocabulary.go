package ports

// Vocabulary is the immutable, ordered list of words used for seed phrase
// autocompletion. The slice returned by Words is shared and must not be
// modified.
type Vocabulary interface {
	Words() []string
	Contains(word string) bool
}
