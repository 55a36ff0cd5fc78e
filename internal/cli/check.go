package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/factyne/factyne/internal/llm"
	"github.com/factyne/factyne/internal/model"
	"github.com/factyne/factyne/internal/pipeline"
	"github.com/factyne/factyne/internal/service"
	"github.com/spf13/cobra"
)

var (
	inputFile   string
	inputURL    string
	outJSON     string
	outMD       string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	verifyFlag  bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Fact-check text, a file, or a URL",
	Long: `Check runs the claim pipeline over one document:
- Segment text into candidate claims
- Filter out questions, opinions, and non-declarative noise
- Flag negation and hedging per claim
- Score per-claim confidence and detect contradictions
- Aggregate an overall trust score

Example:
  factyne check "The Earth is flat according to some scientists."
  factyne check --file article.txt --json report.json --md report.md
  factyne check --url https://example.com/post --verify`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Input flags
	checkCmd.Flags().StringVar(&inputFile, "file", "", "read input text from a file")
	checkCmd.Flags().StringVar(&inputURL, "url", "", "fetch and check a web page")

	// Output flags
	checkCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path")
	checkCmd.Flags().StringVar(&outMD, "md", "", "output Markdown report path")
	checkCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Processing flags
	checkCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-request time budget")
	checkCmd.Flags().StringVar(&userAgent, "ua", "Factyne/0.2 (+https://github.com/factyne/factyne)", "HTTP User-Agent")
	checkCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read when fetching a URL")
	checkCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the external lookup cache")
	checkCmd.Flags().BoolVar(&verifyFlag, "verify", false, "verify claims against Wikipedia after scoring")

	// LLM flags
	checkCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary of the result (never affects scores)")
	checkCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	checkCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

// buildConfig assembles the run configuration from defaults and flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Pipeline.Budget = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.Cache.Enabled = !noCache
	cfg.Verify.Enabled = verifyFlag
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	source, err := resolveSource(args)
	if err != nil {
		return err
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout+10*time.Second)
	defer cancel()

	svc := service.New(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "Checking: %s\n", truncate(source, 80))
		fmt.Fprintf(os.Stderr, "Budget:   %v\n", timeout)
		fmt.Fprintln(os.Stderr)
	}

	req, err := svc.CheckSource(ctx, source)
	if err != nil {
		if pipeline.IsValidationError(err) {
			return fmt.Errorf("invalid input: %w", err)
		}
		return fmt.Errorf("check failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d claims\n", len(req.Claims))
		fmt.Fprintf(os.Stderr, "✓ Found %d contradictions\n", len(req.Contradictions))
		fmt.Fprintf(os.Stderr, "✓ Trust score: %.2f\n", req.TrustScore)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(req, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(req, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}
	renderer.RenderSummary(req)

	if llmEnabled && req.Status == model.StatusCompleted {
		if err := printSummary(ctx, cfg, req); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary failed: %v\n", err)
		}
	}

	return nil
}

// resolveSource picks the input among inline text, --file, and --url.
func resolveSource(args []string) (string, error) {
	provided := 0
	if len(args) == 1 {
		provided++
	}
	if inputFile != "" {
		provided++
	}
	if inputURL != "" {
		provided++
	}
	if provided != 1 {
		return "", fmt.Errorf("provide exactly one input: inline text, --file, or --url")
	}

	switch {
	case inputURL != "":
		return inputURL, nil
	case inputFile != "":
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	default:
		return args[0], nil
	}
}

// printSummary generates and prints the optional LLM summary. Scores are
// already final by the time this runs.
func printSummary(ctx context.Context, cfg *model.Config, req *model.FactCheckRequest) error {
	summarizer, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return err
	}
	if summarizer == nil {
		return nil
	}

	resp, err := summarizer.Summarize(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\nSummary (%s):\n%s\n", resp.Model, resp.Summary)
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
