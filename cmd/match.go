package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spigell/career-compass/internal/answers"
	"github.com/spigell/career-compass/internal/chat"
	"github.com/spigell/career-compass/internal/compass"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a saved answers file against the company registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("answers")
		explain, _ := cmd.Flags().GetBool("explain")
		output, _ := cmd.Flags().GetString("output")

		return runMatch(cmd.OutOrStdout(), path, output, explain)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("answers", "a", "", "a YAML or JSON file with the answers")
	matchCmd.Flags().Bool("explain", false, "show how each score was built")
	matchCmd.Flags().StringP("output", "o", outputText, "output format: text or json")

	matchCmd.MarkFlagRequired("answers")
}

type matchReport struct {
	Answers map[string]any  `json:"answers"`
	Matches []compass.Match `json:"matches"`
}

func runMatch(w io.Writer, path, output string, explain bool) error {
	output = strings.ToLower(strings.TrimSpace(output))
	if output != outputText && output != outputJSON {
		return fmt.Errorf("unsupported output format: %s", output)
	}

	doc, err := answers.Load(path)
	if err != nil {
		return err
	}

	a, err := doc.Answers(compass.Questions())
	if err != nil {
		return err
	}

	matches := compass.Score(a, compass.Companies())

	if output == outputJSON {
		if !explain {
			for i := range matches {
				matches[i].Breakdown = nil
			}
		}
		pretty, err := json.MarshalIndent(matchReport{Answers: a.Map(), Matches: matches}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(pretty))
		return err
	}

	if len(matches) == 0 {
		_, err := fmt.Fprint(w, chat.FallbackCard())
		return err
	}

	for _, m := range matches {
		fmt.Fprint(w, chat.MatchCard(m, chat.Reason(a)))
		if explain {
			fmt.Fprintf(w, "   score: %d (%s)\n", m.Score, formatBreakdown(m.Breakdown))
		}
		fmt.Fprintln(w)
	}

	return nil
}

func formatBreakdown(b map[string]int) string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s +%d", k, b[k]))
	}
	return strings.Join(parts, ", ")
}
