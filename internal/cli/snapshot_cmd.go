package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/artscollective/grantbook/internal/cli/formatter"
	"github.com/artscollective/grantbook/internal/service"
	"github.com/spf13/cobra"
)

type snapshotJSON struct {
	ID        string          `json:"id"`
	ProjectID string          `json:"projectId"`
	Title     string          `json:"title"`
	CreatedAt time.Time       `json:"createdAt"`
	Metrics   json.RawMessage `json:"metrics"`
}

func newSnapshotCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Freeze and review ticket projections for proposals",
	}

	cmd.AddCommand(
		newSnapshotCreateCmd(a),
		newSnapshotListCmd(a),
		newSnapshotShowCmd(a),
	)

	return cmd
}

func newSnapshotCreateCmd(a *App) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "create PROJECT",
		Short: "Freeze the project's current ticket metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, a, args[0])
			if err != nil {
				return err
			}
			snap, err := a.snapshotUseCase().CreateProposalSnapshot(ctx, projectID, title)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created snapshot %q %s\n", snap.Title, snap.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Snapshot title")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newSnapshotListCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list PROJECT",
		Short: "List a project's snapshots, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, a, args[0])
			if err != nil {
				return err
			}
			snaps, err := a.snapshotUseCase().ListByProject(ctx, projectID)
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]snapshotJSON, 0, len(snaps))
				for _, s := range snaps {
					out = append(out, snapshotJSON{s.ID, s.ProjectID, s.Title, s.CreatedAt, s.Metrics})
				}
				return writeJSON(cmd.OutOrStdout(), out)
			}
			if len(snaps) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No snapshots found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSnapshotList(snaps))
			return nil
		},
	}

	addJSONFlag(cmd, &asJSON)
	return cmd
}

func newSnapshotShowCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a snapshot's frozen metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := a.snapshotUseCase().Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), snapshotJSON{snap.ID, snap.ProjectID, snap.Title, snap.CreatedAt, snap.Metrics})
			}
			metrics, err := service.DecodeTicketMetrics(snap)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSnapshot(a.display(), snap, metrics))
			return nil
		},
	}

	addJSONFlag(cmd, &asJSON)
	return cmd
}
