package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/factyne/factyne/internal/model"
)

// Renderer writes fact-check reports as JSON and Markdown files plus a
// terminal summary.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// report is the file-level report shape: the stable result fields plus the
// contradiction detail the count summarizes.
type report struct {
	model.Result
	SourceURL            string                    `json:"source_url,omitempty"`
	ContradictionDetails []model.ContradictionPair `json:"contradiction_details,omitempty"`
}

func buildReport(req *model.FactCheckRequest) report {
	return report{
		Result:               req.ToResult(),
		SourceURL:            req.SourceURL,
		ContradictionDetails: req.Contradictions,
	}
}

// RenderJSON writes the report to path.
func (r *Renderer) RenderJSON(req *model.FactCheckRequest, path string) error {
	data, err := json.MarshalIndent(buildReport(req), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report to path.
func (r *Renderer) RenderMarkdown(req *model.FactCheckRequest, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Factyne Report\n\n")
	fmt.Fprintf(&b, "- **Status:** %s\n", req.Status)
	if req.SourceURL != "" {
		fmt.Fprintf(&b, "- **Source:** %s\n", req.SourceURL)
	}

	if req.Status == model.StatusFailed {
		fmt.Fprintf(&b, "- **Error:** %s\n", req.ErrorCode)
	} else {
		fmt.Fprintf(&b, "- **Trust score:** %.2f\n", req.TrustScore)
		fmt.Fprintf(&b, "- **Claims:** %d\n", len(req.Claims))
		fmt.Fprintf(&b, "- **Contradictions:** %d\n", len(req.Contradictions))
	}
	fmt.Fprintf(&b, "- **Processing time:** %d ms\n\n", req.ProcessingTimeMS)

	if len(req.Claims) > 0 {
		fmt.Fprintf(&b, "## Claims\n\n")
		for _, c := range req.Claims {
			flags := claimFlags(c)
			fmt.Fprintf(&b, "- %s *(confidence %.2f%s)*\n", c.Text, c.Confidence, flags)
		}
		fmt.Fprintf(&b, "\n")
	}

	if len(req.Contradictions) > 0 {
		fmt.Fprintf(&b, "## Contradictions\n\n")
		for _, p := range req.Contradictions {
			fmt.Fprintf(&b, "- **%s** (importance %.2f): %q vs %q: %s\n",
				p.Type, p.Importance, p.ClaimAText, p.ClaimBText, p.Description)
		}
		fmt.Fprintf(&b, "\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\nGenerated by Factyne. Scores describe assertion confidence and internal consistency, not truth.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints a short result summary to stderr.
func (r *Renderer) RenderSummary(req *model.FactCheckRequest) {
	fmt.Fprintf(os.Stderr, "\n")
	if req.Status == model.StatusFailed {
		fmt.Fprintf(os.Stderr, "Fact-check failed: %s\n", req.ErrorCode)
		return
	}

	fmt.Fprintf(os.Stderr, "Trust score:    %.2f\n", req.TrustScore)
	fmt.Fprintf(os.Stderr, "Claims:         %d\n", len(req.Claims))
	fmt.Fprintf(os.Stderr, "Contradictions: %d\n", len(req.Contradictions))
	fmt.Fprintf(os.Stderr, "Processed in:   %d ms\n", req.ProcessingTimeMS)
}

func claimFlags(c model.Claim) string {
	var parts []string
	if c.IsNegated {
		parts = append(parts, "negated")
	}
	if c.HasQualifier {
		parts = append(parts, "hedged")
	}
	if len(parts) == 0 {
		return ""
	}
	return ", " + strings.Join(parts, ", ")
}
