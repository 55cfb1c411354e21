package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func segmentationOf(sections ...Section) *Segmentation {
	seg := &Segmentation{Sections: sections, TokensEstimate: 1}
	for _, sec := range sections {
		seg.Present = append(seg.Present, sec.Name)
	}
	return seg
}

func TestScoreBounds(t *testing.T) {
	tests := []struct {
		name string
		seg  *Segmentation
		jd   *string
	}{
		{"empty segmentation", segmentationOf(), nil},
		{"empty bodies", segmentationOf(Section{Name: "summary", Body: ""}), nil},
		{
			"rich cv with jd",
			segmentationOf(
				Section{Name: "summary", Body: "Seasoned engineer"},
				Section{Name: "skills", Body: "python sql docker kubernetes"},
				Section{Name: "experience", Body: strings.Repeat("- shipped features 2021\n", 60)},
				Section{Name: "education", Body: "BS CS 2018"},
			),
			strPtr("python sql docker"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd := Score(tt.seg, tt.jd, nil)
			assert.GreaterOrEqual(t, bd.OverallScore, 0)
			assert.LessOrEqual(t, bd.OverallScore, 100)
			for _, pct := range []int{
				bd.SectionCompletenessPct,
				bd.LengthScorePct,
				bd.JDKeywordsCoveragePct,
				bd.StructureScorePct,
			} {
				assert.GreaterOrEqual(t, pct, 0)
				assert.LessOrEqual(t, pct, 100)
			}
		})
	}
}

func TestScoreScenarioA(t *testing.T) {
	seg := Segment("Experience\nBuilt a - pipeline\n- reduced cost\nEducation\nBS CS 2020\nSkills\npython sql")
	bd := Score(seg, nil, nil)

	assert.Equal(t, 75, bd.SectionCompletenessPct)
	assert.Equal(t, []string{"summary"}, bd.RequiredSectionsMissing)
	assert.ElementsMatch(t, []string{"experience", "education", "skills"}, bd.RequiredSectionsPresent)

	assert.Equal(t, 12, bd.LengthTokens)
	assert.Equal(t, 6, bd.LengthScorePct)

	assert.Equal(t, 1, bd.StructureBulletsCount)
	assert.True(t, bd.StructureHasYears)
	assert.Equal(t, 50, bd.StructureScorePct)

	assert.Equal(t, 0, bd.JDKeywordsCoveragePct)

	// 34 + 1 + 0 + 5
	assert.Equal(t, 40, bd.OverallScore)
}

func TestScoreJDCoverage(t *testing.T) {
	seg := segmentationOf(Section{Name: "skills", Body: "python and sql on big projects"})
	bd := Score(seg, strPtr("Python SQL Docker"), nil)

	// 2 dari 3 kata kunci JD: 66 (pembagian integer)
	assert.Equal(t, 66, bd.JDKeywordsCoveragePct)
	assert.Equal(t, []string{"python", "sql"}, bd.JDKeywordsOverlap)
}

func TestScoreScenarioB(t *testing.T) {
	seg := segmentationOf(Section{Name: "skills", Body: "python, sql, rest apis"})
	bd := Score(seg, strPtr("looking for python backend engineer with sql and docker experience"), nil)

	assert.Equal(t, 20, bd.JDKeywordsCoveragePct)
	assert.Equal(t, []string{"python", "sql"}, bd.JDKeywordsOverlap)
}

func TestScoreWithoutJobDescription(t *testing.T) {
	seg := segmentationOf(Section{Name: "skills", Body: "python sql"})

	bd := Score(seg, nil, nil)
	assert.Equal(t, 0, bd.JDKeywordsCoveragePct)
	assert.Empty(t, bd.JDKeywordsOverlap)

	// job description kosong diperlakukan sama dengan tidak ada
	bd = Score(seg, strPtr(""), nil)
	assert.Equal(t, 0, bd.JDKeywordsCoveragePct)
}

func TestScoreLengthSaturation(t *testing.T) {
	seg := segmentationOf(Section{Name: "experience", Body: strings.Repeat("word ", 250)})
	bd := Score(seg, nil, nil)

	assert.Equal(t, 250, bd.LengthTokens)
	assert.Equal(t, 100, bd.LengthScorePct)
}

func TestScoreStructureBullets(t *testing.T) {
	body := "Did things\n- one\n- two\n- three\n- four\n- five"
	seg := segmentationOf(Section{Name: "experience", Body: body})
	bd := Score(seg, nil, nil)

	assert.Equal(t, 5, bd.StructureBulletsCount)
	assert.False(t, bd.StructureHasYears)
	assert.Equal(t, 50, bd.StructureScorePct)
}

func TestScoreTargetRolePassthrough(t *testing.T) {
	seg := segmentationOf(Section{Name: "summary", Body: "engineer"})

	bd := Score(seg, nil, strPtr("Data Analyst"))
	require.NotNil(t, bd.TargetRole)
	assert.Equal(t, "Data Analyst", *bd.TargetRole)

	bd = Score(seg, nil, nil)
	assert.Nil(t, bd.TargetRole)
}
