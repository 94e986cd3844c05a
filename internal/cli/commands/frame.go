package commands

import (
	"os"

	"github.com/asclient/asclient/internal/domain/codec"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newFrameCmd(a *app) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "frame <params-file>",
		Short: "Wrap edit.getRefactoring params in a request frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			env, err := codec.DecodeMessage(data, a.decodeOptions()...)
			if err != nil {
				return err
			}
			if err := env.Validate(); err != nil {
				return err
			}

			if id == "" {
				id = uuid.New().String()
			}
			out, err := codec.EncodeRequest(id, env)
			if err != nil {
				return err
			}
			a.log.Infof("framed %s request %s", env.Kind, id)
			return a.format.Document(out)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "request id (default is a random UUID)")
	return cmd
}
