// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreResult outputs a human-readable breakdown of a resume quality score.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %d / 100\n", result.Score))
	sb.WriteString("\n")

	if len(result.MatchedKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Sections found:   %s\n", strings.Join(result.MatchedKeywords, ", ")))
	}
	if len(result.MissingKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Sections missing: %s\n", strings.Join(result.MissingKeywords, ", ")))
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(result.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.Suggestions[i]))
		}
		if len(result.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Suggestions)-maxItemsToShow))
		}
	}

	p.printBox("RESUME QUALITY", strings.TrimRight(sb.String(), "\n"))
}

// PrintRankResult outputs a human-readable summary of one job-fit rank.
func (p *Printer) PrintRankResult(result *types.RankResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %d / 100\n", result.Score))
	if len(result.MatchedKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Matched:  %s\n", strings.Join(result.MatchedKeywords, ", ")))
	}
	if len(result.MissingKeywords) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", strings.Join(result.MissingKeywords, ", ")))
	}

	p.printBox("JOB FIT", strings.TrimRight(sb.String(), "\n"))
}

// PrintRankedApplications outputs a ranked applicant list, best match first.
func (p *Printer) PrintRankedApplications(ranked []types.RankedApplication) {
	var sb strings.Builder

	if len(ranked) == 0 {
		sb.WriteString("No applications to rank.")
	}
	for i, entry := range ranked {
		name := entry.Application.Applicant.Name
		if name == "" {
			name = entry.Application.Applicant.ResumePath
		}
		sb.WriteString(fmt.Sprintf("%2d. %-30s %3d\n", i+1, name, entry.Result.Score))
	}

	p.printBox("RANKED APPLICANTS", strings.TrimRight(sb.String(), "\n"))
}
