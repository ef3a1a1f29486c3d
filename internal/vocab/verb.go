package vocab

// Verb is a single English/Spanish vocabulary pair.
type Verb struct {
	ID       int
	English  string
	Spanish  string
	Category Category
}

// Field selects which translation of a verb to project.
type Field int

const (
	FieldEnglish Field = iota
	FieldSpanish
)

// Text returns the verb's translation in the given field.
func (v Verb) Text(f Field) string {
	if f == FieldSpanish {
		return v.Spanish
	}
	return v.English
}

// Lang returns the BCP 47 tag used for speech output.
func (f Field) Lang() string {
	if f == FieldSpanish {
		return "es-ES"
	}
	return "en-US"
}
