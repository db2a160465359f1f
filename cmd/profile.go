package cmd

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the stored profile as JSON",
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

		out := cmd.OutOrStdout()
		st := svc.Load(cmd.Context())
		switch {
		case st.Profile != nil:
			data, err := json.MarshalIndent(st.Profile, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal profile: %w", err)
			}
			fmt.Fprintln(out, string(data))
		case st.Completed:
			fmt.Fprintln(out, "Onboarding was skipped; no profile stored.")
		default:
			fmt.Fprintln(out, "No profile stored. Run aimarketcap to start onboarding.")
		}
		return nil
	},
}
