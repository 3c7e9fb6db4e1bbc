package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nkurtev/attestor/internal/checklist"
	"github.com/nkurtev/attestor/internal/docsource"
	"github.com/nkurtev/attestor/internal/model"
	"github.com/nkurtev/attestor/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	refSources    []string
	checklistPath string
	outJSON       string
	outMD         string
	timeout       time.Duration
	userAgent     string
	maxBytes      int64
	noCache       bool
	noFooter      bool
	llmEnabled    bool
	llmProvider   string
	llmModel      string
)

// assessCmd represents the assess command
var assessCmd = &cobra.Command{
	Use:   "assess <submission>",
	Short: "Assess one submission against the compliance checklist",
	Long: `Assess reads a submission (local file or URL), extracts its canonical
questionnaire structure, gathers lexical evidence from the submission
and any reference documents, and produces a per-requirement report with
status, evidence citations, gaps, actions, and gold-standard guidance.

Example:
  attestor assess return.txt
  attestor assess return.txt --ref policy.pdf.txt --ref https://example.org/framework
  attestor assess return.txt --json report.json --md report.md
  attestor assess return.txt --llm --llm-provider openai --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAssess,
}

func init() {
	rootCmd.AddCommand(assessCmd)

	// Input flags
	assessCmd.Flags().StringArrayVar(&refSources, "ref", nil, "reference document (file or URL), repeatable")
	assessCmd.Flags().StringVar(&checklistPath, "checklist", "", "checklist YAML (default: built-in standards)")

	// Output flags
	assessCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	assessCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// HTTP flags
	assessCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall assessment timeout")
	assessCmd.Flags().StringVar(&userAgent, "ua", "Attestor/0.1 (+https://github.com/nkurtev/attestor)", "HTTP User-Agent")
	assessCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	assessCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable document text cache (force fresh fetch)")
	assessCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	assessCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM narrative generation")
	assessCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	assessCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAssess(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	cl, err := loadChecklist()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Assessing: %s\n", source)
		fmt.Fprintf(os.Stderr, "Checklist: %s (%d requirements)\n", cl.Name, len(cl.Requirements))
		fmt.Fprintf(os.Stderr, "References: %d\n\n", len(refSources))
	}

	loader := docsource.NewLoader(cfg.HTTP, cfg.Cache)

	submission, err := loader.Load(ctx, source)
	if err != nil {
		return fmt.Errorf("load submission: %w", err)
	}

	corpus, err := loader.LoadAll(ctx, refSources)
	if err != nil {
		return fmt.Errorf("load references: %w", err)
	}

	p := pipeline.NewPipeline(cfg, cl)
	report, err := p.Assess(ctx, submission, corpus)
	if err != nil {
		return fmt.Errorf("assess: %w", err)
	}

	return p.Renderer().WriteReport(report, outJSON, outMD, verbose)
}

// buildConfig layers flag values over the defaults
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		cfg.LLM.StrictSources = true // Always enforce

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			// Ollama doesn't need an API key
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

// loadChecklist loads the configured checklist or falls back to the
// built-in standards
func loadChecklist() (*model.Checklist, error) {
	if checklistPath == "" {
		return checklist.Default(), nil
	}
	cl, err := checklist.Load(checklistPath)
	if err != nil {
		return nil, fmt.Errorf("load checklist: %w", err)
	}
	return cl, nil
}
