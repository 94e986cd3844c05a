package commands

import (
	"fmt"
	"os"

	"github.com/asclient/asclient/internal/domain/codec"
	"github.com/asclient/asclient/internal/domain/protocol"
	"github.com/spf13/cobra"
)

func newRoundtripCmd(a *app) *cobra.Command {
	var resultKind string

	cmd := &cobra.Command{
		Use:   "roundtrip <file>",
		Short: "Decode a message and write it back in canonical form",
		Long: `Roundtrip decodes edit.getRefactoring params, or a result when --result-kind
names the kind of the request it answers, and encodes the value again. The
re-encoded document is decoded once more and compared with the first value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var out []byte
			if resultKind != "" {
				out, err = a.roundtripResult(protocol.RefactoringKind(resultKind), data)
			} else {
				out, err = a.roundtripParams(data)
			}
			if err != nil {
				return err
			}
			return a.format.Document(out)
		},
	}
	cmd.Flags().StringVar(&resultKind, "result-kind", "", "decode a result of this refactoring kind")
	return cmd
}

func (a *app) roundtripParams(data []byte) ([]byte, error) {
	env, err := codec.DecodeMessage(data, a.decodeOptions()...)
	if err != nil {
		return nil, err
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}
	out, err := codec.EncodeMessage(env)
	if err != nil {
		return nil, err
	}

	again, err := codec.DecodeMessage(out, a.decodeOptions()...)
	if err != nil {
		return nil, err
	}
	if !codec.Equal(env, again) {
		return nil, fmt.Errorf("re-encoded params differ:\n%s", protocol.Diff(env, again))
	}
	a.log.Infof("round trip of %s params", env.Kind)
	return out, nil
}

func (a *app) roundtripResult(kind protocol.RefactoringKind, data []byte) ([]byte, error) {
	result, err := codec.DecodeResult(kind, data, a.decodeOptions()...)
	if err != nil {
		return nil, err
	}
	out, err := codec.EncodeResult(result)
	if err != nil {
		return nil, err
	}

	again, err := codec.DecodeResult(kind, out, a.decodeOptions()...)
	if err != nil {
		return nil, err
	}
	if !protocol.Equal(result, again) {
		return nil, fmt.Errorf("re-encoded result differs:\n%s", protocol.Diff(result, again))
	}
	a.log.Infof("round trip of %s result, max severity %q", kind, result.MaxSeverity())
	return out, nil
}
