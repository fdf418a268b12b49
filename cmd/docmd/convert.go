package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docmd/docmd/internal/extract"
	"github.com/docmd/docmd/internal/models"
	"github.com/docmd/docmd/internal/validate"
	"github.com/docmd/docmd/pkg/batch"
	"github.com/docmd/docmd/pkg/converter"
)

var (
	outDir  string
	asJSON  bool
	workers int
)

var convertCmd = &cobra.Command{
	Use:   "convert FILE...",
	Short: "Convert documents to Markdown",
	Long: `Convert one or more PDF or DOCX files to cleaned Markdown. Each output is
written next to its input with a .md extension, or into --out when given.
Multiple files are converted concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: alongside each input)")
	convertCmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	convertCmd.Flags().IntVar(&workers, "concurrency", 0, "max concurrent conversions (default from config)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	v := validate.NewValidator(log, &validate.Config{
		MaxFileSize:  cfg.MaxFileSize,
		AllowedTypes: validate.DefaultConfig().AllowedTypes,
	})

	var (
		valid   []string
		results []models.ConversionResult
	)
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			results = append(results, models.ConversionResult{
				Source: path,
				Status: models.StatusFailed,
				Error:  err.Error(),
			})
			continue
		}
		if res := v.Validate(path, data); !res.IsValid {
			results = append(results, models.ConversionResult{
				Source: path,
				Status: models.StatusFailed,
				Error:  validationSummary(res),
			})
			continue
		}
		valid = append(valid, path)
	}

	n := workers
	if n <= 0 {
		n = cfg.Concurrency
	}
	runner := batch.NewRunner(newConverter(), n, log)
	results = append(results, runner.Run(cmd.Context(), valid)...)

	failed := 0
	for i := range results {
		if results[i].Status == models.StatusCompleted {
			path, err := writeOutput(results[i].Source, results[i].Markdown)
			if err != nil {
				results[i].Status = models.StatusFailed
				results[i].Error = err.Error()
			} else {
				results[i].Output = path
			}
		}
		if results[i].Status == models.StatusFailed {
			failed++
		}
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		printResults(results)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(results))
	}
	return nil
}

// newConverter builds the converter from config: PDF suppression options
// and, when configured, a strategy override replacing the default entirely.
func newConverter() *converter.Converter {
	opts := []converter.Option{
		converter.WithLogger(log),
		converter.WithPDFOptions(extract.PDFOptions{
			IgnoreGraphics: cfg.PDF.IgnoreGraphics,
			IgnoreCode:     cfg.PDF.IgnoreCode,
			IgnoreAlpha:    cfg.PDF.IgnoreAlpha,
		}),
	}
	if len(cfg.Strategy) > 0 {
		s := make(converter.Strategy, len(cfg.Strategy))
		for i, r := range cfg.Strategy {
			s[i] = converter.Rule{Pattern: r.Pattern, Replacement: r.Replacement}
		}
		opts = append(opts, converter.WithStrategy(s))
	}
	return converter.New(opts...)
}

func writeOutput(source, markdown string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source)) + ".md"
	dir := filepath.Dir(source)
	if outDir != "" {
		dir = outDir
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	path := filepath.Join(dir, base)
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return path, nil
}

func validationSummary(res *validate.Result) string {
	msgs := make([]string, len(res.Errors))
	for i, e := range res.Errors {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

func printResults(results []models.ConversionResult) {
	completed := 0
	for _, r := range results {
		switch r.Status {
		case models.StatusCompleted:
			completed++
			fmt.Printf("converted: %s -> %s\n", r.Source, r.Output)
		default:
			fmt.Printf("failed:    %s (%s)\n", r.Source, r.Error)
		}
	}
	fmt.Printf("\n%d converted, %d failed (total: %d)\n",
		completed, len(results)-completed, len(results))
}
