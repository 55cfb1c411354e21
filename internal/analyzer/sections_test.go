package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentFallbackNoHeaders(t *testing.T) {
	text := "  Just a plain paragraph about a candidate\nwith no headings at all.  "
	seg := Segment(text)

	require.Len(t, seg.Sections, 1)
	assert.Equal(t, "summary", seg.Sections[0].Name)
	assert.Equal(t, "Just a plain paragraph about a candidate\nwith no headings at all.", seg.Sections[0].Body)
	assert.Equal(t, []string{"summary"}, seg.Present)
	assert.NotContains(t, seg.Missing, "summary")
}

func TestSegmentScenarioA(t *testing.T) {
	text := "Experience\nBuilt a - pipeline\n- reduced cost\nEducation\nBS CS 2020\nSkills\npython sql"
	seg := Segment(text)

	exp, ok := seg.Body("experience")
	require.True(t, ok)
	assert.Equal(t, "Built a - pipeline\n- reduced cost", exp)

	edu, ok := seg.Body("education")
	require.True(t, ok)
	assert.Equal(t, "BS CS 2020", edu)

	skills, ok := seg.Body("skills")
	require.True(t, ok)
	assert.Equal(t, "python sql", skills)

	// urutan output mengikuti urutan kanonik, bukan urutan kemunculan
	assert.Equal(t, []string{"skills", "experience", "education"}, seg.Present)
	assert.Contains(t, seg.Missing, "summary")
	assert.Contains(t, seg.Missing, "contact")
}

func TestSegmentCanonicalOrdering(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		present []string
	}{
		{
			name:    "headers in reverse canonical order",
			text:    "Education\nBS CS\nSkills\ngo docker\nSummary\nA backend engineer",
			present: []string{"summary", "skills", "education"},
		},
		{
			name:    "single header",
			text:    "Projects\nBuilt a CLI tool",
			present: []string{"projects"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg := Segment(tt.text)
			assert.Equal(t, tt.present, seg.Present)
		})
	}
}

func TestSegmentRepeatedHeaderMergesBodies(t *testing.T) {
	text := "Experience\nFirst role at ACME\nEducation\nBS CS\nExperience\nSecond role at Globex"
	seg := Segment(text)

	exp, ok := seg.Body("experience")
	require.True(t, ok)
	assert.Equal(t, "First role at ACME\n\nSecond role at Globex", exp)
}

func TestSegmentHeaderClassification(t *testing.T) {
	tests := []struct {
		header string
		key    string
	}{
		{"Work Experience", "experience"},
		{"PROFESSIONAL EXPERIENCE", "experience"},
		{"Employment", "experience"},
		{"Profile", "summary"},
		{"Objective", "summary"},
		{"Technical Skills", "skills"},
		{"Competencies", "skills"},
		{"Academic Qualification", "education"},
		{"Portfolio", "projects"},
		{"Licenses", "certifications"},
		{"Honors", "awards"},
		{"Contact Information", "contact"},
		{"Hobbies", "interests"},
		// baris yang cocok lebih dari satu kategori: urutan tabel yang menang
		{"Summary of Experience", "summary"},
		{"Experience and Skills", "experience"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			seg := Segment(tt.header + "\nsome body text")
			body, ok := seg.Body(tt.key)
			require.True(t, ok, "expected section %q", tt.key)
			assert.Equal(t, "some body text", body)
		})
	}
}

func TestSegmentLongLineIsNotAHeader(t *testing.T) {
	long := "This line mentions experience but is far too long to be treated as a heading because it keeps going on and on"
	require.Greater(t, len(long), 80)

	seg := Segment(long)
	require.Len(t, seg.Sections, 1)
	assert.Equal(t, "summary", seg.Sections[0].Name)
}

func TestSegmentTokenEstimate(t *testing.T) {
	assert.Equal(t, 1, Segment("").TokensEstimate)
	assert.Equal(t, 1, Segment("   ").TokensEstimate)
	assert.Equal(t, 5, Segment("one two three four five").TokensEstimate)
}

func TestSegmentNormalizesHorizontalWhitespace(t *testing.T) {
	seg := Segment("Skills\npython \t  sql")
	body, ok := seg.Body("skills")
	require.True(t, ok)
	assert.Equal(t, "python sql", body)
}
