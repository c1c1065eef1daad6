package commands

import (
	"github.com/spf13/cobra"
	"github.com/umalmyha/authflow/internal/config"
	"github.com/umalmyha/authflow/internal/validation"
)

var (
	cfg   config.Config
	rules *validation.Rules
)

func Execute() error {
	root := &cobra.Command{
		Use:          "authflow",
		Short:        "Login and sign up flow with remember-me preference",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Build()
			if err != nil {
				return err
			}
			cfg = c

			r, err := validation.NewRules()
			if err != nil {
				return err
			}
			rules = r
			return nil
		},
	}

	root.AddCommand(appCmd(), serveCmd())
	return root.Execute()
}
