package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/serieslab/internal/domain"
	"github.com/aalvaropc/serieslab/internal/infra/logger"
	"github.com/aalvaropc/serieslab/internal/infra/mathfn"
	"github.com/aalvaropc/serieslab/internal/infra/render"
	"github.com/aalvaropc/serieslab/internal/infra/runstore"
	"github.com/aalvaropc/serieslab/internal/ports"
	"github.com/aalvaropc/serieslab/internal/usecase"
)

const reportLabel = "exp-maclaurin"

type reportOptions struct {
	noSave bool
	format string
}

func runReport(cmd *cobra.Command, root string, cfg domain.Config, opts reportOptions) error {
	var store ports.ArtifactStore
	if cfg.Save.Enabled && !opts.noSave {
		store = runstore.NewJSONStore(root, cfg)
	}

	uc := usecase.NewBuildReport(
		mathfn.NewExpSource(domain.ExpBase),
		mathfn.LibReference{},
		store,
	)

	report, runID, err := uc.Execute(cmd.Context(), usecase.Params{
		Label:      reportLabel,
		Base:       domain.ExpBase,
		Iterations: cfg.Report.Iterations,
	})
	if err != nil {
		logger.L().Error("report.failed", "rows", len(report.Records), "err", err)
		// Print the rows computed before the failure so the break point is visible.
		_ = printReport(os.Stdout, report, runID, opts.format)
		return err
	}

	logger.L().Info("report.finished", "rows", len(report.Records), "run_id", runID)
	return printReport(os.Stdout, report, runID, opts.format)
}

func printReport(w io.Writer, report domain.ReportArtifact, runID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		// Include runID (optional) as a wrapper to avoid changing the domain model.
		payload := map[string]any{
			"run_id": runID,
			"report": report,
		}
		return enc.Encode(payload)
	case "pretty", "":
		fmt.Fprint(w, render.New(render.DefaultTheme()).Table(report))
		if runID != "" {
			fmt.Fprintf(w, "\nRun ID: %s\n", runID)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
