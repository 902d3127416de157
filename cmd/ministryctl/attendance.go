package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"youthministry/internal/domain"

	"github.com/spf13/cobra"
)

func attendanceCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Persist attendance from check-ins",
	}
	cmd.AddCommand(attendancePersistCmd(open))
	return cmd
}

func attendancePersistCmd(open opener) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "persist <eventID>",
		Short: "Write one attendance record per checked-in student and clear them",
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

			result, err := a.reconciler.Reconcile(cmd.Context(), eventID)
			if errors.Is(err, domain.ErrStorage) {
				return fmt.Errorf("persist attendance for event %d: %w (check-ins were kept, safe to retry)", eventID, err)
			}
			if err != nil {
				return fmt.Errorf("persist attendance for event %d: %w", eventID, err)
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(result)
			}
			fmt.Fprintf(out, "event %d: persisted %d attendance records\n", result.EventID, result.PersistedCount)
			if !result.Cleared {
				fmt.Fprintf(out, "warning: records are saved but check-ins were not cleared; run \"ministryctl checkins clear %d --yes\" and do not persist again\n", result.EventID)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Output as JSON")
	return cmd
}
