package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"hirehub-backend/internal/skillmatch"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	var (
		jobSkills    string
		seekerSkills string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Compute the skill match between a job and a seeker",
		Long:  "Computes the percentage of the job's required skills covered by the seeker's skills. Both inputs are comma-separated lists.",
		Example: `  hirehubctl match --job "Python, Django, SQL" --skills "python, sql, docker"
  hirehubctl match -j "Go, Kubernetes" -s "go" --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := skillmatch.ComputeMatch(jobSkills, seekerSkills)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			fmt.Fprintf(out, "Match: %d%% (%s)\n", result.Percentage, result.Level)
			if len(result.MatchingSkills) == 0 {
				fmt.Fprintln(out, "Matching skills: none")
				return nil
			}
			fmt.Fprintf(out, "Matching skills: %s\n", strings.Join(result.MatchingSkills, ", "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&jobSkills, "job", "j", "", "Job's required skills, comma separated (required)")
	cmd.Flags().StringVarP(&seekerSkills, "skills", "s", "", "Seeker's skills, comma separated")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	if err := cmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	return cmd
}
