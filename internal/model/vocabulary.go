package model

// Hebrew day-type notes shown by the portal, with English translations.
var dayNotes = map[string]string{
	"מחלה":      "Sick",
	"חופשה":     "Vacation",
	"חופש":      "Vacation",
	"חצי חופשה": "Half Vacation",
	"חג":        "Holiday",
	"מילואים":   "Reserve",
	"השתלמות":   "Training",
	"אבל":       "Bereavement",
}

// TranslateNote translates a portal day note to English. Unrecognised
// notes are returned unchanged.
func TranslateNote(note string) string {
	if english, ok := dayNotes[note]; ok {
		return english
	}
	return note
}
