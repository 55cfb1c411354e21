package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendScenarioC(t *testing.T) {
	seg := segmentationOf(Section{Name: "skills", Body: "kubernetes, docker, aws"})
	recs := Recommend(seg, 5)

	require.Len(t, recs, 1)
	assert.Equal(t, "Cloud/DevOps Engineer (Junior)", recs[0].Title)
	assert.Equal(t, []string{"aws", "docker", "kubernetes"}, recs[0].MatchedSkills)
	assert.Contains(t, recs[0].Reason, "aws, docker, kubernetes")
}

func TestRecommendNeverEmpty(t *testing.T) {
	tests := []struct {
		name string
		seg  *Segmentation
	}{
		{"no sections", segmentationOf()},
		{"empty bodies", segmentationOf(Section{Name: "summary", Body: ""})},
		{"no known keywords", segmentationOf(Section{Name: "skills", Body: "cooking gardening"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Recommend(tt.seg, 5)
			require.Len(t, recs, 1)
			assert.Equal(t, "Generalist Software/IT Role", recs[0].Title)
			assert.Empty(t, recs[0].MatchedSkills)
			assert.NotEmpty(t, recs[0].Reason)
		})
	}
}

func TestRecommendRankingAndTies(t *testing.T) {
	// python mengenai domain data dan backend dengan jumlah hit sama;
	// urutan taksonomi memecah seri
	seg := segmentationOf(Section{Name: "skills", Body: "python"})
	recs := Recommend(seg, 5)

	require.Len(t, recs, 2)
	assert.Equal(t, "Data Analyst / Data Scientist (Junior)", recs[0].Title)
	assert.Equal(t, "Backend Engineer (Python)", recs[1].Title)
}

func TestRecommendRankedByHitCount(t *testing.T) {
	seg := segmentationOf(
		Section{Name: "skills", Body: "docker kubernetes aws gcp"},
		Section{Name: "projects", Body: "built a vue app"},
	)
	recs := Recommend(seg, 5)

	require.GreaterOrEqual(t, len(recs), 2)
	assert.Equal(t, "Cloud/DevOps Engineer (Junior)", recs[0].Title)
	assert.Equal(t, []string{"aws", "docker", "gcp", "kubernetes"}, recs[0].MatchedSkills)
	assert.Equal(t, "Frontend Engineer", recs[1].Title)
}

func TestRecommendSubstringHitsCrossDomains(t *testing.T) {
	seg := segmentationOf(Section{Name: "skills", Body: "react native development"})
	recs := Recommend(seg, 5)

	// "react native" mengandung "react", jadi frontend dan mobile sama-sama kena
	titles := make([]string, len(recs))
	for i, r := range recs {
		titles[i] = r.Title
	}
	assert.Contains(t, titles, "Frontend Engineer")
	assert.Contains(t, titles, "Mobile Developer")
}

func TestRecommendTopK(t *testing.T) {
	seg := segmentationOf(Section{Name: "skills", Body: "python javascript kotlin docker pytorch"})

	assert.Len(t, Recommend(seg, 2), 2)
	assert.Len(t, Recommend(seg, 1), 1)
	// topK di bawah satu tetap menghasilkan satu rekomendasi
	assert.Len(t, Recommend(seg, 0), 1)
	assert.Len(t, Recommend(seg, -3), 1)
}
