package workspace

// Step is one section of the four-step form
type Step int

const (
	StepUpload Step = iota + 1
	StepInstruct
	StepGenerate
	StepShare
)

// View is what a frontend renders. It is derived from State alone.
type View struct {
	// Current is the furthest step the user can act on
	Current Step

	ShowTranscriptPreview bool

	GenerateEnabled bool
	GenerateLabel   string

	ShowSummary bool
	ShowShare   bool

	SendEnabled bool
	SendLabel   string
}

// Project computes the View of s
func Project(s State) View {
	v := View{
		ShowTranscriptPreview: s.Transcript != "",
		GenerateEnabled:       s.CanGenerate(),
		GenerateLabel:         "Generate Summary",
		ShowSummary:           s.Summary != "",
		ShowShare:             s.Summary != "",
		SendEnabled:           s.CanSend(),
		SendLabel:             "Send Email",
	}

	if s.Generate.IsActive() {
		v.GenerateLabel = "Generating Summary..."
	}
	if s.Share.IsActive() {
		v.SendLabel = "Sending Email..."
	}

	switch {
	case v.ShowShare:
		v.Current = StepShare
	case v.GenerateEnabled || s.Generate.IsActive():
		v.Current = StepGenerate
	case s.Transcript != "":
		v.Current = StepInstruct
	default:
		v.Current = StepUpload
	}

	return v
}
