package testhelpers

// RecordingDisplay is an engine.Display that remembers every value pushed to it.
type RecordingDisplay struct {
	Values []string
}

// NewRecordingDisplay creates an empty RecordingDisplay.
func NewRecordingDisplay() *RecordingDisplay {
	return &RecordingDisplay{}
}

// SetValue records text.
func (d *RecordingDisplay) SetValue(text string) {
	d.Values = append(d.Values, text)
}

// Last returns the most recent value, or "" if nothing was recorded.
func (d *RecordingDisplay) Last() string {
	if len(d.Values) == 0 {
		return ""
	}
	return d.Values[len(d.Values)-1]
}

// Reset forgets all recorded values.
func (d *RecordingDisplay) Reset() {
	d.Values = nil
}
