package mailer

import (
	"bytes"
	"html/template"
	"strings"
)

// SummarySubject is the subject line of every summary email
const SummarySubject = "Meeting Summary - AI Generated"

var summaryHTML = template.Must(template.New("summary").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Meeting Summary</h2>
  {{- if .Note}}
  <p style="color: #666; margin-bottom: 20px;"><em>{{.Note}}</em></p>
  {{- end}}
  <div style="background-color: #f9f9f9; padding: 20px; border-radius: 8px; white-space: pre-wrap;">{{.Summary}}</div>
  <p style="color: #999; font-size: 12px; margin-top: 20px;">
    This summary was generated using AI technology.
  </p>
</div>
`))

// SummaryEmailHTML renders the HTML body of a summary email. The note, when
// present, is placed above the summary; both are escaped and shown verbatim.
func SummaryEmailHTML(summary, note string) (string, error) {
	var buf bytes.Buffer
	err := summaryHTML.Execute(&buf, struct{ Summary, Note string }{summary, note})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SummaryEmailText renders the plain-text fallback body of a summary email
func SummaryEmailText(summary, note string) string {
	var b strings.Builder
	b.WriteString("Meeting Summary\n\n")
	if note != "" {
		b.WriteString(note)
		b.WriteString("\n\n")
	}
	b.WriteString(summary)
	b.WriteString("\n\n- This summary was generated using AI technology.")
	return b.String()
}
