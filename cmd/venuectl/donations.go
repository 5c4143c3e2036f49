package main

import (
	"fmt"
	"strings"

	"github.com/georgemunganga/venuehub-backend/internal/client"
	"github.com/georgemunganga/venuehub-backend/internal/modules/donation"
	"github.com/spf13/cobra"
)

func newDonationsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "donations",
		Short: "List and progress food donations",
	}
	cmd.AddCommand(newDonationsListCmd(opts), newDonationStatusCmd(opts))
	return cmd
}

func newDonationsListCmd(opts *options) *cobra.Command {
	var status, city string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List donations",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := opts.client().ListDonations(cmd.Context(), client.DonationQuery{
				PageQuery: opts.pageQuery(),
				Status:    donation.Status(strings.ToUpper(status)),
				City:      city,
			})
			if err != nil {
				return err
			}
			w := table(cmd.OutOrStdout())
			fmt.Fprintln(w, "ID\tDONOR\tFOOD\tQUANTITY\tCITY\tPICKUP\tSTATUS")
			for _, d := range page.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\t%s\t%s\t%s\n",
					d.ID, d.ContactName, d.FoodType, d.Quantity.String(), d.Unit, d.City,
					d.PickupTime.Format("2006-01-02 15:04"), d.Status)
			}
			fmt.Fprintf(w, "\npage %d, %d of %d\n", page.Page, len(page.Items), page.Total)
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&city, "city", "", "filter by city")
	return cmd
}

func newDonationStatusCmd(opts *options) *cobra.Command {
	var note string
	cmd := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move a donation to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d, err := opts.client().UpdateDonationStatus(cmd.Context(), id, donation.Status(strings.ToUpper(args[1])), note)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", d.ID, d.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "admin note stored on the donation")
	return cmd
}
