package fillblank

// Item is a fill-in-the-blank candidate as returned by the model, before
// it becomes a quiz question.
type Item struct {
	Sentence    string   `json:"sentence"`
	Answer      string   `json:"correctOption"`
	Distractors []string `json:"distractors"`
	Explanation string   `json:"explanation"`
}

// Blank is the placeholder shown in place of the missing verb.
const Blank = "___"

// MaxDistractors caps the wrong options kept from a response.
const MaxDistractors = 3
