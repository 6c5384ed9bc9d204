package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/greenbite/internal/forms"
	"github.com/spf13/cobra"
)

func newSubscribeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe <email>",
		Short: "Subscribe to the newsletter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(opts)
			if err != nil {
				return err
			}
			defer env.Close()
			db, err := env.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			subscribed, err := forms.Subscribe(cmd.Context(), db, args[0])
			if err != nil {
				return err
			}
			if !subscribed {
				return errors.New("email is required")
			}
			PrintSuccess(cmd.OutOrStdout(), forms.SubscribedText)
			return nil
		},
	}
}

func newUnsubscribeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unsubscribe <email>",
		Short: "Remove an email from the newsletter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(opts)
			if err != nil {
				return err
			}
			defer env.Close()
			db, err := env.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			email := strings.ToLower(strings.TrimSpace(args[0]))
			if err := db.Unsubscribe(cmd.Context(), email); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), "Unsubscribed "+email)
			return nil
		},
	}
}

func newContactCmd(opts *globalOptions) *cobra.Command {
	var form forms.Contact
	var list bool

	cmd := &cobra.Command{
		Use:     "contact",
		Short:   "Send a message, or list sent messages",
		Example: "  greenbite contact --name Ada --email ada@example.com --message \"Love the recipes\"\n  greenbite contact --list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv(opts)
			if err != nil {
				return err
			}
			defer env.Close()
			db, err := env.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			w := cmd.OutOrStdout()
			if list {
				msgs, err := db.ListContactMessages(cmd.Context())
				if err != nil {
					return err
				}
				if opts.jsonOutput {
					return outputJSON(w, msgs)
				}
				PrintSection(w, "Messages")
				if len(msgs) == 0 {
					PrintEmptyState(w, "No messages yet.")
				}
				for _, m := range msgs {
					PrintListItem(w, fmt.Sprintf("%s <%s>: %s", m.Name, m.Email, m.Message), m.CreatedAt.Format("2006-01-02 15:04"))
				}
				return nil
			}

			if _, err := forms.SubmitContact(cmd.Context(), db, form); err != nil {
				return errors.New(forms.ContactStatus(err))
			}
			PrintSuccess(w, forms.ContactThanksText)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Name, "name", "", "Your name")
	cmd.Flags().StringVar(&form.Email, "email", "", "Your email")
	cmd.Flags().StringVarP(&form.Message, "message", "m", "", "Your message")
	cmd.Flags().BoolVar(&list, "list", false, "List stored messages")
	return cmd
}
