// Package protocol provides the client-side data model of the analysis server
// protocol: string vocabularies, value types, and the refactoring payloads whose
// shape is selected by a RefactoringKind.
package protocol

import (
	"sort"
)

// Enum is implemented by every vocabulary-backed string type. The decoder
// validates any field whose type implements Enum.
type Enum interface {
	Vocabulary() *Vocabulary
}

// Token is a single vocabulary member with its documentation.
type Token struct {
	Value string `json:"value"`
	Doc   string `json:"doc,omitempty"`
}

// Vocabulary is a fixed set of string tokens. An open vocabulary accepts tokens
// it does not know about; a closed one rejects them.
type Vocabulary struct {
	Name   string
	Open   bool
	tokens []Token
	index  map[string]int
}

func closedVocabulary[T ~string](name string, docs map[T]string, values ...T) *Vocabulary {
	return newVocabulary(name, false, docs, values)
}

func openVocabulary[T ~string](name string, docs map[T]string, values ...T) *Vocabulary {
	return newVocabulary(name, true, docs, values)
}

func newVocabulary[T ~string](name string, open bool, docs map[T]string, values []T) *Vocabulary {
	tokens := make([]Token, len(values))
	for i, value := range values {
		tokens[i] = Token{Value: string(value), Doc: docs[value]}
	}
	v := &Vocabulary{
		Name:   name,
		Open:   open,
		tokens: tokens,
		index:  make(map[string]int, len(tokens)),
	}
	for i, t := range tokens {
		if _, dup := v.index[t.Value]; dup {
			panic("protocol: duplicate token " + t.Value + " in " + name)
		}
		v.index[t.Value] = i
	}
	registry[name] = v
	return v
}

// Tokens returns the vocabulary members in declaration order.
func (v *Vocabulary) Tokens() []Token {
	out := make([]Token, len(v.tokens))
	copy(out, v.tokens)
	return out
}

// Contains reports whether token is a declared member.
func (v *Vocabulary) Contains(token string) bool {
	_, ok := v.index[token]
	return ok
}

// Doc returns the documentation of a member, or "" if it has none.
func (v *Vocabulary) Doc(token string) string {
	if i, ok := v.index[token]; ok {
		return v.tokens[i].Doc
	}
	return ""
}

// Check validates token against the vocabulary. For an open vocabulary an
// unknown token is accepted and recognized is false.
func (v *Vocabulary) Check(token string) (recognized bool, err error) {
	if v.Contains(token) {
		return true, nil
	}
	if v.Open {
		return false, nil
	}
	return false, &UnknownEnumValueError{Vocabulary: v.Name, Token: token}
}

var registry = map[string]*Vocabulary{}

// Lookup returns the vocabulary registered under name.
func Lookup(name string) (*Vocabulary, bool) {
	v, ok := registry[name]
	return v, ok
}

// Vocabularies returns every registered vocabulary sorted by name.
func Vocabularies() []*Vocabulary {
	out := make([]*Vocabulary, 0, len(registry))
	for _, v := range registry {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Validate returns token unchanged if it belongs to the named vocabulary.
// Open vocabularies accept any token.
func Validate(vocabulary, token string) (string, error) {
	v, ok := registry[vocabulary]
	if !ok {
		return "", &UnknownEnumValueError{Vocabulary: "Vocabulary", Token: vocabulary}
	}
	if _, err := v.Check(token); err != nil {
		return "", err
	}
	return token, nil
}
