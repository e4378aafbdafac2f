package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/jonathan/ats-engine/internal/schemas"
	"github.com/jonathan/ats-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"score_result.schema.json",
	"rank_result.schema.json",
	"ranked_applications.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			assert.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON")
		})
	}
}

func readSchema(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return data
}

func marshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestScoreResultSchema_AcceptsEngineOutput(t *testing.T) {
	schema := readSchema(t, "score_result.schema.json")

	result := types.ScoreResult{
		Score:           93,
		MatchedKeywords: []string{"experience", "education", "skills"},
		MissingKeywords: []string{"projects", "summary", "profile"},
		Suggestions:     []string{"Add a brief Summary/Profile at the top to frame your experience."},
	}

	assert.NoError(t, schemas.ValidateBytes(schema, marshal(t, result)))
}

func TestScoreResultSchema_AcceptsMissingResumeOutput(t *testing.T) {
	schema := readSchema(t, "score_result.schema.json")

	result := types.ScoreResult{
		Score:           0,
		MatchedKeywords: []string{},
		MissingKeywords: []string{"Resume file missing or unreadable"},
		Suggestions:     []string{"Upload a resume (DOCX or text-based PDF)."},
	}

	assert.NoError(t, schemas.ValidateBytes(schema, marshal(t, result)))
}

func TestScoreResultSchema_RejectsOutOfRangeScore(t *testing.T) {
	schema := readSchema(t, "score_result.schema.json")

	err := schemas.ValidateBytes(schema, []byte(`{"score": 120, "matched_keywords": [], "missing_keywords": [], "suggestions": []}`))
	require.Error(t, err)

	var ve *schemas.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestScoreResultSchema_RejectsUnknownSectionLabel(t *testing.T) {
	schema := readSchema(t, "score_result.schema.json")

	err := schemas.ValidateBytes(schema, []byte(`{"score": 50, "matched_keywords": ["hobbies"], "missing_keywords": [], "suggestions": []}`))
	require.Error(t, err)
}

func TestRankResultSchema_AcceptsEngineOutput(t *testing.T) {
	schema := readSchema(t, "rank_result.schema.json")

	result := types.RankResult{
		Score:           60,
		MatchedKeywords: []string{"sql"},
		MissingKeywords: []string{"python", "react"},
	}

	assert.NoError(t, schemas.ValidateBytes(schema, marshal(t, result)))
}

func TestRankResultSchema_RejectsOversizedKeywordList(t *testing.T) {
	schema := readSchema(t, "rank_result.schema.json")

	doc := `{"score": 10, "matched_keywords": [], "missing_keywords": ["a","b","c","d","e","f","g","h","i","j","k"]}`
	require.Error(t, schemas.ValidateBytes(schema, []byte(doc)))
}

func TestRankedApplicationsSchema_AcceptsEngineOutput(t *testing.T) {
	schema := readSchema(t, "ranked_applications.schema.json")

	ranked := []types.RankedApplication{
		{
			Application: types.Application{
				Applicant:   types.Applicant{Name: "Ada", ResumePath: "uploads/ada.pdf"},
				CoverLetter: "I build things.",
			},
			Result: types.RankResult{Score: 90, MatchedKeywords: []string{"sql"}, MissingKeywords: []string{}},
		},
		{
			Application: types.Application{
				Applicant: types.Applicant{ResumePath: "uploads/bob.docx"},
			},
			Result: types.RankResult{Score: 40, MatchedKeywords: []string{}, MissingKeywords: []string{"sql"}},
		},
	}

	assert.NoError(t, schemas.ValidateBytes(schema, marshal(t, ranked)))
}

func TestRankedApplicationsSchema_RejectsMissingResult(t *testing.T) {
	schema := readSchema(t, "ranked_applications.schema.json")

	doc := `[{"application": {"applicant": {"name": "Ada"}}}]`
	require.Error(t, schemas.ValidateBytes(schema, []byte(doc)))
}
