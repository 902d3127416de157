package main

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

func checkinsCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkins",
		Short: "Inspect or clear an event's live check-in set",
	}
	cmd.AddCommand(checkinsListCmd(open))
	cmd.AddCommand(checkinsClearCmd(open))
	return cmd
}

func checkinsListCmd(open opener) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list <eventID>",
		Short: "List the students currently checked in to an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := parseEventID(args[0])
			if err != nil {
				return err
			}
			a, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			snap, err := a.checkins.ListCheckedIn(cmd.Context(), eventID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(snap)
			}
			ids := slices.Clone(snap.StudentIDs)
			slices.Sort(ids)
			fmt.Fprintf(out, "event %d: %d checked in\n", eventID, len(ids))
			for _, id := range ids {
				fmt.Fprintf(out, "  %d\n", id)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON")
	return cmd
}

func checkinsClearCmd(open opener) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear <eventID>",
		Short: "Empty an event's check-in set without writing attendance",
		Long: `Empty an event's check-in set without writing attendance.

Use this after "attendance persist" reported cleared=false: the attendance
records are already saved and persisting again would duplicate them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := parseEventID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to clear event %d without --yes", eventID)
			}
			a, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.checkins.ClearCheckins(cmd.Context(), eventID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "event %d: check-ins cleared\n", eventID)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the clear")
	return cmd
}
