package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/nkurtev/attestor/internal/docsource"
	"github.com/nkurtev/attestor/internal/model"
	"github.com/nkurtev/attestor/internal/pipeline"
	"github.com/nkurtev/attestor/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Assess multiple submissions from a manifest file in parallel",
	Long: `Batch assesses multiple submissions concurrently:
- Read submission sources from the manifest (one file path or URL per line)
- Share the reference corpus and checklist across all assessments
- Write an individual JSON and Markdown report per submission

Example:
  attestor batch submissions.txt --ref framework.txt
  attestor batch submissions.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./attestor-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().StringArrayVar(&refSources, "ref", nil, "reference document (file or URL), repeatable")
	batchCmd.Flags().StringVar(&checklistPath, "checklist", "", "checklist YAML (default: built-in standards)")
	batchCmd.Flags().StringVar(&userAgent, "ua", "Attestor/0.1 (+https://github.com/nkurtev/attestor)", "HTTP User-Agent")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable document text cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

// batchAssessor adapts the pipeline and loader to the worker pool
type batchAssessor struct {
	loader   *docsource.Loader
	pipeline *pipeline.Pipeline
	corpus   []model.SourceDocument
}

func (a *batchAssessor) AssessSource(ctx context.Context, source string) (*model.Report, error) {
	submission, err := a.loader.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load submission: %w", err)
	}
	return a.pipeline.Assess(ctx, submission, a.corpus)
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifest := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.HTTP.UserAgent = userAgent
	cfg.Cache.Enabled = !noCache
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	cl, err := loadChecklist()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	loader := docsource.NewLoader(cfg.HTTP, cfg.Cache)

	// The reference corpus is loaded once and shared by every job
	corpus, err := loader.LoadAll(ctx, refSources)
	if err != nil {
		return fmt.Errorf("load references: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Batch assessment\n")
	fmt.Fprintf(os.Stderr, "  Manifest:   %s\n", manifest)
	fmt.Fprintf(os.Stderr, "  Checklist:  %s\n", cl.Name)
	fmt.Fprintf(os.Stderr, "  References: %d\n", len(corpus))
	fmt.Fprintf(os.Stderr, "  Workers:    %d\n\n", concurrency)

	assessor := &batchAssessor{
		loader:   loader,
		pipeline: pipeline.NewPipeline(cfg, cl),
		corpus:   corpus,
	}
	limiter := worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize)
	processor := worker.NewBatchProcessor(assessor, limiter, concurrency)

	results, err := processor.ProcessFile(ctx, manifest)
	if err != nil {
		return fmt.Errorf("process manifest: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	var ok, failed int
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Source, result.Error)
			continue
		}

		slug := sanitizeFilename(result.Report.Submission)
		jsonPath := filepath.Join(outputDir, slug+".json")
		mdPath := filepath.Join(outputDir, slug+".md")
		if err := renderer.WriteReport(result.Report, jsonPath, mdPath, false); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Source, err)
			continue
		}

		ok++
		counts := result.Report.StatusCounts()
		fmt.Fprintf(os.Stderr, "OK   %s (%d met, %d partial, %d unknown)\n",
			result.Report.Submission,
			counts[model.StatusMet],
			counts[model.StatusPartiallyMet],
			counts[model.StatusUnknown])
	}

	fmt.Fprintf(os.Stderr, "\nBatch complete: %d total, %d ok, %d failed, output in %s\n",
		len(results), ok, failed, outputDir)
	return nil
}

// sanitizeFilename makes a report filename out of a submission name
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	s = replacer.Replace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "report"
	}
	return s
}
