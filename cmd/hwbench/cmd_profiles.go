package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/perfkit/hwbench/internal/config"
	"github.com/perfkit/hwbench/internal/models"
)

func newProfilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List workload profiles and their weights",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			profiles, err := cfg.WorkloadProfiles()
			if err != nil {
				return err
			}

			w := os.Stdout
			fmt.Fprintf(w, "%-20s", "profile")
			for _, c := range models.Components() {
				fmt.Fprintf(w, "  %8s", c)
			}
			fmt.Fprintln(w)

			for _, p := range profiles {
				fmt.Fprintf(w, "%-20s", p.Name)
				for _, c := range models.Components() {
					fmt.Fprintf(w, "  %7.0f%%", p.Weights[c]*100)
				}
				fmt.Fprintln(w)
				if len(p.MinScores) > 0 {
					fmt.Fprintf(w, "%-20s", "  minimum")
					for _, c := range models.Components() {
						if minScore, ok := p.MinScores[c]; ok {
							fmt.Fprintf(w, "  %8.0f", minScore)
						} else {
							fmt.Fprintf(w, "  %8s", "-")
						}
					}
					fmt.Fprintln(w)
				}
			}
			return nil
		},
	}
}
