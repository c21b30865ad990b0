package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spigell/career-compass/internal/compass"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the conversation questions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printQuestions(cmd.OutOrStdout(), compass.Questions())
	},
}

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List the companies a conversation can match",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printCompanies(cmd.OutOrStdout(), compass.Companies())
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd, companiesCmd)
}

func printQuestions(w io.Writer, questions []compass.Question) {
	for i, q := range questions {
		fmt.Fprintf(w, "%d. [%s] %s (%s)\n", i+1, q.Key, q.Prompt.Render("<name>"), q.Kind)
		for j, opt := range q.Options {
			fmt.Fprintf(w, "   %d) %s\n", j, opt)
		}
	}
}

func printCompanies(w io.Writer, companies []compass.Company) {
	for _, c := range companies {
		fmt.Fprintf(w, "%s (%s)\n", c.Name, c.Category)
		fmt.Fprintf(w, "   %s\n", c.Description)
		fmt.Fprintf(w, "   keywords: %s\n", strings.Join(c.Keywords, ", "))
		fmt.Fprintf(w, "   roles: %s\n", strings.Join(c.Roles, ", "))
	}
}
