package roadmap

import (
	"strings"
	"testing"

	"github.com/hupe1980/careermentor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"software wins over data", "I want software and data skills", "🧑‍💻 Software Engineering Roadmap:"},
		{"case insensitive", "MEDICINE", "🩺 Medical Field Roadmap:"},
		{"substring match", "big data engineering", "📊 Data Science Roadmap:"},
		{"data before medicine", "medicine data", "📊 Data Science Roadmap:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lookup(tt.field)
			assert.True(t, strings.HasPrefix(got, tt.want), got)
		})
	}
}

func TestLookup_ExactTexts(t *testing.T) {
	assert.Equal(t,
		"🧑‍💻 Software Engineering Roadmap:\n1. Learn Python or Java\n2. Study Data Structures\n3. Build full-stack apps\n4. Version control (Git)\n5. Interview prep",
		Lookup("software"),
	)
	assert.Equal(t,
		"📊 Data Science Roadmap:\n1. Python & Statistics\n2. Pandas, NumPy, Scikit-learn\n3. ML Models\n4. Kaggle projects\n5. Portfolio & Jobs",
		Lookup("data"),
	)
	assert.Equal(t,
		"🩺 Medical Field Roadmap:\n1. Pre-med subjects\n2. Medical entrance tests\n3. MBBS studies\n4. Clinical rotations\n5. Specialization",
		Lookup("Medicine"),
	)
}

func TestLookup_Fallback(t *testing.T) {
	assert.Equal(t, "⚠️ No roadmap found for 'law'. Try software, data, or medicine.", Lookup("law"))
	assert.Equal(t, "⚠️ No roadmap found for 'law school'. Try software, data, or medicine.", Lookup("Law School"))
	assert.Equal(t, "⚠️ No roadmap found for ''. Try software, data, or medicine.", Lookup(""))
}

func TestFields(t *testing.T) {
	assert.Equal(t, []string{"software", "data", "medicine"}, Fields())
}

func TestJoinFields(t *testing.T) {
	assert.Equal(t, "", joinFields(nil))
	assert.Equal(t, "software", joinFields([]string{"software"}))
	assert.Equal(t, "software, or data", joinFields([]string{"software", "data"}))
	assert.Equal(t, "software, data, or medicine", joinFields(Fields()))
}

func TestNewTool(t *testing.T) {
	tl := NewTool()
	assert.Equal(t, "get_career_roadmap", tl.Name())
	assert.Equal(t, []string{"field"}, tl.Parameters()["required"])

	res, err := tl.Call(testutil.ToolContext(t, "SkillAgent", "fc-1"), map[string]any{"field": "Software"})
	require.NoError(t, err)
	assert.Equal(t, Lookup("software"), res)

	_, err = tl.Call(testutil.ToolContext(t, "SkillAgent", "fc-2"), map[string]any{})
	assert.Error(t, err)
}
