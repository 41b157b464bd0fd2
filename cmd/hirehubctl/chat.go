package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"hirehub-backend/internal/chatbot"
	"hirehub-backend/internal/domain"

	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	var (
		name      string
		explain   bool
		listRules bool
	)

	cmd := &cobra.Command{
		Use:   "chat [message...]",
		Short: "Ask the help assistant",
		Long:  "Sends one message to the help assistant, or starts an interactive session reading one message per line from stdin when no message is given.",
		Example: `  hirehubctl chat "how do I apply?"
  hirehubctl chat --explain --name alice hello
  hirehubctl chat --rules`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			responder := chatbot.Default()

			if listRules {
				for i, rule := range responder.Rules() {
					fmt.Fprintf(out, "%2d. %s\n", i+1, rule)
				}
				return nil
			}

			if len(args) > 0 {
				replyTo(out, responder, strings.Join(args, " "), name, explain)
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				replyTo(out, responder, line, name, explain)
				if responder.Classify(line) == chatbot.RuleGoodbye {
					break
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Display name used in greetings")
	cmd.Flags().BoolVar(&explain, "explain", false, "Print the matched rule before each reply")
	cmd.Flags().BoolVar(&listRules, "rules", false, "List rules in evaluation order and exit")
	return cmd
}

func replyTo(out io.Writer, responder *chatbot.Responder, message, name string, explain bool) {
	if explain {
		fmt.Fprintf(out, "[rule: %s]\n", responder.Classify(message))
	}
	printReply(out, responder.Respond(message, name))
}

func printReply(out io.Writer, reply domain.ChatResponse) {
	fmt.Fprintln(out, reply.Message)
	if len(reply.Links) > 0 {
		fmt.Fprintln(out)
		for _, link := range reply.Links {
			fmt.Fprintf(out, "  %s: %s\n", link.Text, link.URL)
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Try asking:")
	for _, s := range reply.Suggestions {
		fmt.Fprintf(out, "  - %s\n", s)
	}
	fmt.Fprintln(out)
}
