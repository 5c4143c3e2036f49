package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/georgemunganga/venuehub-backend/internal/client"
	"github.com/georgemunganga/venuehub-backend/internal/client/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const tokenEnv = "VENUECTL_TOKEN"

type options struct {
	server string
	token  string
	page   int
	limit  int

	// venues holds the listing state shared by the venue commands.
	venues *store.Store
}

func (o *options) client() *client.Client {
	token := o.token
	if token == "" {
		token = os.Getenv(tokenEnv)
	}
	return client.New(o.server, client.WithToken(token))
}

func (o *options) pageQuery() client.PageQuery {
	return client.PageQuery{Page: o.page, Limit: o.limit}
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithStore(store.New(store.State{}))
}

func newRootCmdWithStore(venues *store.Store) *cobra.Command {
	opts := &options{venues: venues}
	root := &cobra.Command{
		Use:          "venuectl",
		Short:        "Administer venues and food donations",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.server, "server", "http://localhost:8080", "API base URL")
	root.PersistentFlags().StringVar(&opts.token, "token", "", "bearer token (defaults to $"+tokenEnv+")")
	root.PersistentFlags().IntVar(&opts.page, "page", 0, "page number for list commands")
	root.PersistentFlags().IntVar(&opts.limit, "limit", 0, "page size for list commands")

	root.AddCommand(newLoginCmd(opts), newVenuesCmd(opts), newDonationsCmd(opts))
	return root
}

func newLoginCmd(opts *options) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print a token for " + tokenEnv,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.client().Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "export %s=%s\n", tokenEnv, s.Token)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
