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

var scoreResumeCmd = &cobra.Command{
	Use:   "score-resume",
	Short: "Score the structural quality of a stored resume",
	Long:  "Score a resume on a 0-100 scale from its section structure, length, vocabulary breadth and action language, with improvement suggestions.",
	RunE:  runScoreResume,
}

var (
	scoreResumePath string
	scoreUploadsDir string
	scoreConfigFile string
	scoreOutputFile string
	scoreVerbose    bool
)

func init() {
	scoreResumeCmd.Flags().StringVarP(&scoreResumePath, "resume", "r", "", "Resume path within the uploads directory (required)")
	scoreResumeCmd.Flags().StringVar(&scoreUploadsDir, "uploads-dir", "", "Root directory resumes are stored under")
	scoreResumeCmd.Flags().StringVar(&scoreConfigFile, "config", "", "Path to JSON config file")
	scoreResumeCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreResumeCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a human-readable score breakdown to stderr")
	_ = scoreResumeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreResumeCmd)
}

func runScoreResume(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(config.Config{
		UploadsDir: scoreUploadsDir,
		Verbose:    scoreVerbose,
	}, scoreConfigFile)
	if err != nil {
		return err
	}

	scorer, err := newScorer(cfg)
	if err != nil {
		return err
	}
	result := scorer.ScoreResume(context.Background(), types.Applicant{ResumePath: scoreResumePath})

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := validateOutput("schemas/score_result.schema.json", jsonBytes); err != nil {
		return err
	}
	if err := writeOutput(scoreOutputFile, jsonBytes); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintScoreResult(&result)
	}
	return nil
}
