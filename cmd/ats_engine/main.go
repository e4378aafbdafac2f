// Package main provides the entry point for the ATS scoring engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_engine",
	Short: "ATS resume scoring and job-fit ranking engine",
	Long:  "ATS Engine scores the structural quality of stored resumes and ranks applicants against a job posting by weighted keyword coverage.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
