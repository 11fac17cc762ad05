package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryEmailHTML(t *testing.T) {
	body, err := SummaryEmailHTML("Budget approved for Q3", "Hi team")
	require.NoError(t, err)

	assert.Contains(t, body, "Meeting Summary")
	assert.Contains(t, body, "<em>Hi team</em>")
	assert.Contains(t, body, "Budget approved for Q3")
	assert.Contains(t, body, "white-space: pre-wrap")

	// Note comes before the summary block
	assert.Less(t, strings.Index(body, "Hi team"), strings.Index(body, "Budget approved"))
}

func TestSummaryEmailHTML_WithoutNote(t *testing.T) {
	body, err := SummaryEmailHTML("Summary text", "")
	require.NoError(t, err)

	assert.NotContains(t, body, "<em>")
	assert.Contains(t, body, "Summary text")
}

func TestSummaryEmailHTML_EscapesMarkup(t *testing.T) {
	body, err := SummaryEmailHTML("<script>alert(1)</script>", "a & b")
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "a &amp; b")
}

func TestSummaryEmailHTML_PreservesLineBreaks(t *testing.T) {
	body, err := SummaryEmailHTML("- one\n- two", "")
	require.NoError(t, err)
	assert.Contains(t, body, "- one\n- two")
}

func TestSummaryEmailText(t *testing.T) {
	text := SummaryEmailText("- item", "Hi team")
	assert.True(t, strings.HasPrefix(text, "Meeting Summary\n\nHi team\n\n- item"))

	text = SummaryEmailText("- item", "")
	assert.True(t, strings.HasPrefix(text, "Meeting Summary\n\n- item"))
}
