// Package roadmap maps a free-text career field to a canned, step-by-step
// learning roadmap and exposes the lookup as the get_career_roadmap tool.
package roadmap

import (
	"fmt"
	"strings"

	"github.com/hupe1980/careermentor/core"
	"github.com/hupe1980/careermentor/tool"
)

// ToolName is the name under which Lookup is advertised to the model.
const ToolName = "get_career_roadmap"

type entry struct {
	keyword string
	roadmap string
}

// entries are matched in order; the first keyword contained in the input wins.
var entries = []entry{
	{
		keyword: "software",
		roadmap: "🧑‍💻 Software Engineering Roadmap:\n1. Learn Python or Java\n2. Study Data Structures\n3. Build full-stack apps\n4. Version control (Git)\n5. Interview prep",
	},
	{
		keyword: "data",
		roadmap: "📊 Data Science Roadmap:\n1. Python & Statistics\n2. Pandas, NumPy, Scikit-learn\n3. ML Models\n4. Kaggle projects\n5. Portfolio & Jobs",
	},
	{
		keyword: "medicine",
		roadmap: "🩺 Medical Field Roadmap:\n1. Pre-med subjects\n2. Medical entrance tests\n3. MBBS studies\n4. Clinical rotations\n5. Specialization",
	},
}

// Lookup returns the roadmap for the first known field contained in field
// (case-insensitive), or a fallback message naming the supported fields.
func Lookup(field string) string {
	lowered := strings.ToLower(field)
	for _, e := range entries {
		if strings.Contains(lowered, e.keyword) {
			return e.roadmap
		}
	}
	return fmt.Sprintf("⚠️ No roadmap found for '%s'. Try %s.", lowered, joinFields(Fields()))
}

// Fields returns the supported keywords in priority order.
func Fields() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.keyword
	}
	return out
}

// joinFields renders a list as "a, b, or c".
func joinFields(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	}
	return strings.Join(fields[:len(fields)-1], ", ") + ", or " + fields[len(fields)-1]
}

type args struct {
	Field string `json:"field" description:"Career field the user is interested in, e.g. software, data or medicine"`
}

// NewTool exposes Lookup as a function tool with one required string
// parameter, field.
func NewTool() tool.Tool {
	return tool.NewFunctionToolFromStruct(
		ToolName,
		"Return a step-by-step skill roadmap for a career field.",
		args{},
		func(tc *core.ToolContext, a map[string]any) (any, error) {
			field, _ := a["field"].(string)
			tc.LogDebug("roadmap.lookup", "field", field)
			return Lookup(field), nil
		},
	)
}
