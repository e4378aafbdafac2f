package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/observability"
	"github.com/jonathan/ats-engine/internal/types"
	"github.com/spf13/cobra"
)

var rankApplicantsCmd = &cobra.Command{
	Use:   "rank-applicants",
	Short: "Rank a list of applications against one job posting",
	Long:  "Rank every application in a JSON file against a job posting by weighted keyword coverage of its skills, title, qualifications and experience fields, best match first.",
	RunE:  runRankApplicants,
}

var (
	rankJobFile          string
	rankApplicationsFile string
	rankUploadsDir       string
	rankConfigFile       string
	rankOutputFile       string
	rankConcurrency      int
	rankVerbose          bool
)

func init() {
	rankApplicantsCmd.Flags().StringVar(&rankJobFile, "job", "", "Path to job posting JSON file (required)")
	rankApplicantsCmd.Flags().StringVar(&rankApplicationsFile, "applications", "", "Path to applications JSON file (required)")
	rankApplicantsCmd.Flags().StringVar(&rankUploadsDir, "uploads-dir", "", "Root directory resumes are stored under")
	rankApplicantsCmd.Flags().StringVar(&rankConfigFile, "config", "", "Path to JSON config file")
	rankApplicantsCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	rankApplicantsCmd.Flags().IntVar(&rankConcurrency, "concurrency", 0, "Max concurrent rank computations (0 = default)")
	rankApplicantsCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a human-readable ranking to stderr")
	_ = rankApplicantsCmd.MarkFlagRequired("job")
	_ = rankApplicantsCmd.MarkFlagRequired("applications")

	rootCmd.AddCommand(rankApplicantsCmd)
}

func runRankApplicants(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		UploadsDir:  rankUploadsDir,
		Concurrency: rankConcurrency,
		Verbose:     rankVerbose,
	}, rankConfigFile)
	if err != nil {
		return err
	}

	var job types.Job
	if err := loadJSONFile(rankJobFile, &job); err != nil {
		return err
	}

	var applications []types.Application
	if err := loadJSONFile(rankApplicationsFile, &applications); err != nil {
		return err
	}

	scorer, err := newScorer(cfg)
	if err != nil {
		return err
	}
	ranked := scorer.RankAll(context.Background(), job, applications)

	jsonBytes, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := validateOutput("schemas/ranked_applications.schema.json", jsonBytes); err != nil {
		return err
	}
	if err := writeOutput(rankOutputFile, jsonBytes); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintRankedApplications(ranked)
	}
	return nil
}
