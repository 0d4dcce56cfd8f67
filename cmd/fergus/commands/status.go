package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/fergus/internal/adapters/detector"
	"go.trai.ch/fergus/internal/core/domain"
	"go.trai.ch/fergus/internal/ui/output"
	"go.trai.ch/fergus/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the cache state of every template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputMode, _ := cmd.Flags().GetString("output")

			statuses, err := c.app.Status(cmd.Context())
			if err != nil {
				return err
			}

			mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)
			out := output.NewWithProfile(cmd.OutOrStdout(), detector.Profile(mode))
			printStatus(out, statuses)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "auto", "Output mode: auto, styled, or plain")
	return cmd
}

func printStatus(out *termenv.Output, statuses []domain.TemplateStatus) {
	if len(statuses) == 0 {
		_, _ = fmt.Fprintln(out, "no templates found")
		return
	}

	width := 0
	for _, st := range statuses {
		width = max(width, len(st.Rel))
	}

	for _, st := range statuses {
		icon, color := style.Freshness(st.Freshness.String())
		styled := out.String(icon).Foreground(out.Color(string(color)))
		_, _ = fmt.Fprintf(out, "%s %-*s  %-7s", styled, width, st.Rel, st.Freshness)
		writeRecord(out, st.Record)
		_, _ = fmt.Fprintln(out)
	}
}

func writeRecord(w io.Writer, record *domain.CompileRecord) {
	if record == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "  %s  %s", record.CompiledAt.UTC().Format(time.RFC3339), record.ArtifactHash)
}
