// Package types defines the shared domain types for the ATS scoring engine.
package types

import "github.com/google/uuid"

// Applicant identifies a candidate and the stored resume document to score.
// ResumePath is an opaque locator understood by the document store; the
// engine never writes to it.
type Applicant struct {
	ID         uuid.UUID `json:"id,omitempty"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty"`
	ResumePath string    `json:"resume_path,omitempty"`
}

// Job carries the free-text fields of a posting as supplied by the job store.
// Any field may be empty; empty fields tokenize to empty sets and are never
// treated as errors.
type Job struct {
	ID             uuid.UUID `json:"id,omitempty"`
	Title          string    `json:"title,omitempty"`
	Description    string    `json:"description,omitempty"`
	Qualifications string    `json:"qualifications,omitempty"`
	Experience     string    `json:"experience,omitempty"`
	Skills         string    `json:"skills,omitempty"`
}

// ScoreResult is the outcome of a resume quality score. Matched and missing
// keywords are the section labels found and absent in the resume; the score
// communicates structural completeness, not job relevance.
type ScoreResult struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
	Suggestions     []string `json:"suggestions"`
}

// RankResult is the outcome of a job-fit rank: a 0-100 weighted coverage
// score plus up to ten sorted matched and missing job keywords.
type RankResult struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

// Application pairs an applicant with the cover letter they submitted for a
// particular job.
type Application struct {
	Applicant   Applicant `json:"applicant"`
	CoverLetter string    `json:"cover_letter,omitempty"`
}

// RankedApplication is one entry of a batch ranking.
type RankedApplication struct {
	Application Application `json:"application"`
	Result      RankResult  `json:"result"`
}
