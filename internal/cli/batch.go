package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/factyne/factyne/internal/model"
	"github.com/factyne/factyne/internal/service"
	"github.com/factyne/factyne/internal/worker"
	"github.com/spf13/cobra"
)

var (
	batchConcurrency int
	batchOutDir      string
	batchTimeout     time.Duration
	batchVerify      bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <sources-file>",
	Short: "Fact-check many documents concurrently",
	Long: `Batch reads a manifest file with one source per line (a URL or inline
text, blank lines and # comments skipped) and fact-checks them concurrently.

Per-source JSON reports are written to the output directory, named by
request ID. A summary line per source goes to stderr.

Example:
  factyne batch sources.txt --concurrency 8 --out reports/`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "documents processed in parallel")
	batchCmd.Flags().StringVar(&batchOutDir, "out", "", "directory for per-source JSON reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Second, "per-document time budget")
	batchCmd.Flags().BoolVar(&batchVerify, "verify", false, "verify claims against Wikipedia after scoring")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Pipeline.Budget = batchTimeout
	cfg.Verify.Enabled = batchVerify
	cfg.Concurrency.Workers = batchConcurrency
	cfg.Output.Verbose = verbose

	if batchOutDir != "" {
		if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	svc := service.New(cfg)
	processor := worker.NewBatchProcessor(svc, batchConcurrency)

	ctx := context.Background()
	start := time.Now()

	results, err := processor.ProcessFile(ctx, args[0])
	if err != nil {
		return err
	}

	var completed, failed int
	for _, res := range results {
		if res.Error != nil || res.Request == nil || res.Request.Status != model.StatusCompleted {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %s\n", truncate(res.Source, 60), batchFailure(res))
			continue
		}
		completed++
		fmt.Fprintf(os.Stderr, "✓ %s: trust %.2f (%d claims, %d contradictions)\n",
			truncate(res.Source, 60), res.Request.TrustScore,
			len(res.Request.Claims), len(res.Request.Contradictions))

		if batchOutDir != "" {
			if err := writeBatchReport(res.Request); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: write report for %s: %v\n", truncate(res.Source, 60), err)
			}
		}
	}

	fmt.Fprintf(os.Stderr, "\nProcessed %d sources in %v: %d completed, %d failed\n",
		len(results), time.Since(start).Round(time.Millisecond), completed, failed)

	if completed == 0 && failed > 0 {
		return fmt.Errorf("all %d sources failed", failed)
	}
	return nil
}

func batchFailure(res *worker.CheckResult) string {
	if res.Error != nil {
		return res.Error.Error()
	}
	if res.Request != nil && res.Request.ErrorCode != "" {
		return res.Request.ErrorCode
	}
	return "failed"
}

func writeBatchReport(req *model.FactCheckRequest) error {
	data, err := json.MarshalIndent(req.ToResult(), "", "  ")
	if err != nil {
		return err
	}
	name := strings.ReplaceAll(req.ID, string(filepath.Separator), "_") + ".json"
	return os.WriteFile(filepath.Join(batchOutDir, name), data, 0o644)
}
