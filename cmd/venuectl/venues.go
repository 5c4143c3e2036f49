package main

import (
	"fmt"
	"strings"

	"github.com/georgemunganga/venuehub-backend/internal/client"
	"github.com/georgemunganga/venuehub-backend/internal/client/store"
	"github.com/georgemunganga/venuehub-backend/internal/modules/venue"
	"github.com/spf13/cobra"
)

func newVenuesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venues",
		Short: "List and moderate venues",
	}
	cmd.AddCommand(newVenuesListCmd(opts), newVenueStatusCmd(opts, "approve", venue.StatusApproved), newVenueStatusCmd(opts, "reject", venue.StatusRejected))
	return cmd
}

func newVenuesListCmd(opts *options) *cobra.Command {
	var q client.VenueQuery
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List venues",
		RunE: func(cmd *cobra.Command, args []string) error {
			q.PageQuery = opts.pageQuery()
			q.Status = venue.Status(strings.ToUpper(status))
			opts.venues.Dispatch(store.Action{Type: store.SetLoading, Loading: true})
			page, err := opts.client().ListVenues(cmd.Context(), q)
			opts.venues.Dispatch(store.Action{Type: store.SetLoading, Loading: false})
			if err != nil {
				opts.venues.Dispatch(store.Action{Type: store.SetError, Err: err.Error()})
				return err
			}
			state := opts.venues.Dispatch(store.Action{Type: store.SetVenues, Venues: page.Items})

			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tCITY\tSTATUS\tPRICE")
			for _, v := range state.Venues {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s/%s\n", v.ID, v.Name, v.Type, v.City, v.Status, v.BasePrice.StringFixed(2), v.PriceUnit)
			}
			fmt.Fprintf(w, "\npage %d, %d of %d\n", page.Page, len(state.Venues), page.Total)
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&q.Type, "type", "", "venue type")
	cmd.Flags().StringVar(&status, "status", "", "PENDING, APPROVED, REJECTED or INACTIVE")
	cmd.Flags().StringVar(&q.City, "city", "", "city")
	cmd.Flags().StringVar(&q.Search, "search", "", "name search")
	return cmd
}

func newVenueStatusCmd(opts *options, use string, status venue.Status) *cobra.Command {
	var reason string
	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: "Mark a venue " + strings.ToLower(string(status)),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			v, err := opts.client().UpdateVenueStatus(cmd.Context(), id, status, reason)
			if err != nil {
				opts.venues.Dispatch(store.Action{Type: store.SetError, Err: err.Error()})
				return err
			}
			opts.venues.Dispatch(store.Action{Type: store.UpdateVenue, Venue: *v})
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", v.ID, v.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "reason shown to the owner")
	if status == venue.StatusRejected {
		_ = cmd.MarkFlagRequired("reason")
	}
	return cmd
}
