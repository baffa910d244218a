package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
)

func chatCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the career mentor in the terminal",
		Long: `Chat with the career mentor interactively or send a one-shot message.

Examples:
  careermentor chat                                  # Interactive REPL
  careermentor chat -m "How do I become a doctor?"   # One-shot message`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, handler, err := bootstrap()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			ui := newTerminalUI(cmd.OutOrStdout())

			sess, err := handler.Start(ctx, ui)
			if err != nil {
				return err
			}
			defer func() { _ = handler.End(sess) }()

			if message != "" {
				return handler.HandleMessage(ctx, sess, ui, message)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Session: %s\nType \"exit\" to quit.\n\n", sess.ID)

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(cmd.ErrOrStderr(), "You: ")
				if !scanner.Scan() {
					return scanner.Err()
				}

				input := strings.TrimSpace(scanner.Text())
				if input == "" {
					continue
				}
				if input == "exit" || input == "quit" {
					fmt.Fprintln(cmd.ErrOrStderr(), "Goodbye!")
					return nil
				}

				if err := handler.HandleMessage(ctx, sess, ui, input); err != nil {
					return err
				}
			}
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "one-shot message (omit for interactive mode)")

	return cmd
}
