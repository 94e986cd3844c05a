package commands

import (
	"fmt"

	"github.com/asclient/asclient/internal/domain/protocol"
	"github.com/spf13/cobra"
)

func newVocabCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vocab [name]",
		Short: "List vocabularies, or the tokens of one vocabulary",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.format.FormatVocabularies(protocol.Vocabularies())
			}
			v, ok := protocol.Lookup(args[0])
			if !ok {
				return fmt.Errorf("vocabulary %q not found", args[0])
			}
			return a.format.FormatTokens(v)
		},
	}
}

type tokenCheck struct {
	Vocabulary string `json:"vocabulary"`
	Token      string `json:"token"`
	Valid      bool   `json:"valid"`
	Recognized bool   `json:"recognized"`
	Doc        string `json:"doc,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <vocabulary> <token>",
		Short: "Check a token against a vocabulary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, token := args[0], args[1]
			if _, err := protocol.Validate(name, token); err != nil {
				return err
			}
			v, _ := protocol.Lookup(name)
			result := tokenCheck{
				Vocabulary: name,
				Token:      token,
				Valid:      true,
				Recognized: v.Contains(token),
				Doc:        v.Doc(token),
			}
			if !result.Recognized && a.settings.Strict {
				return &protocol.UnrecognizedKindError{UnrecognizedKind: protocol.UnrecognizedKind{
					Vocabulary: name,
					Token:      token,
				}}
			}

			if a.format.JSON() {
				return a.format.Value(result)
			}
			out := cmd.OutOrStdout()
			if result.Recognized {
				fmt.Fprintf(out, "✓ %s is a %s value\n", token, name)
			} else {
				fmt.Fprintf(out, "? %s is not a known %s value; accepted because the vocabulary is open\n", token, name)
			}
			if result.Doc != "" {
				fmt.Fprintf(out, "  %s\n", result.Doc)
			}
			return nil
		},
	}
}
