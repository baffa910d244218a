package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript_AppendDoesNotMutateReceiver(t *testing.T) {
	var history Transcript
	next := history.Append(UserMessage("hi"))

	assert.Empty(t, history)
	assert.Equal(t, Transcript{{Role: RoleUser, Content: "hi"}}, next)

	// Appending to a shared prefix must not clobber a sibling transcript.
	a := next.Append(AssistantMessage("a"))
	b := next.Append(AssistantMessage("b"))
	assert.Equal(t, "a", a[1].Content)
	assert.Equal(t, "b", b[1].Content)
}

func TestTranscript_ContentsPreservesOrder(t *testing.T) {
	tr := Transcript{UserMessage("one"), AssistantMessage("two"), UserMessage("three")}
	contents := tr.Contents()

	assert.Len(t, contents, 3)
	assert.Equal(t, RoleUser, contents[0].Role)
	assert.Equal(t, "one", contents[0].Text())
	assert.Equal(t, RoleAssistant, contents[1].Role)
	assert.Equal(t, "three", contents[2].Text())
}

func TestContent_TextIgnoresNonTextParts(t *testing.T) {
	c := Content{Role: RoleAssistant, Parts: []Part{
		TextPart{Text: "Hello, "},
		FunctionCallPart{FunctionCall: FunctionCall{Name: "noop"}},
		TextPart{Text: "world"},
	}}
	assert.Equal(t, "Hello, world", c.Text())
}
