package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored profile so onboarding runs again",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := newLogger(cmd, cfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		svc, closeStore, err := openService(cmd, cfg, log)
		defer closeStore()
		if err != nil {
			return err
		}
		if err := svc.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Onboarding reset. The questionnaire will run on next start.")
		return nil
	},
}
