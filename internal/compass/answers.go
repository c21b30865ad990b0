package compass

// Answers holds the values collected during one session. Free-text answers
// and selected option labels live in the text map; single-choice answers also
// record the selected option position.
type Answers struct {
	text    map[string]string
	choices map[string]int
}

func NewAnswers() *Answers {
	return &Answers{
		text:    make(map[string]string),
		choices: make(map[string]int),
	}
}

// Set records a free-text answer.
func (a *Answers) Set(key, value string) {
	a.init()
	a.text[key] = value
}

// SetChoice records a selected option label together with its position.
func (a *Answers) SetChoice(key, label string, index int) {
	a.init()
	a.text[key] = label
	a.choices[key] = index
}

// Get returns the answer for key or an empty string.
func (a *Answers) Get(key string) string {
	if a == nil {
		return ""
	}
	return a.text[key]
}

// Choice returns the selected option position for a single-choice key.
func (a *Answers) Choice(key string) (int, bool) {
	if a == nil {
		return 0, false
	}
	idx, ok := a.choices[key]
	return idx, ok
}

func (a *Answers) Has(key string) bool {
	if a == nil {
		return false
	}
	_, ok := a.text[key]
	return ok
}

func (a *Answers) Len() int {
	if a == nil {
		return 0
	}
	return len(a.text)
}

// Map flattens the answers into a plain map. Choice positions are exported
// under "<key>_index".
func (a *Answers) Map() map[string]any {
	out := make(map[string]any, a.Len())
	if a == nil {
		return out
	}
	for k, v := range a.text {
		out[k] = v
	}
	for k, idx := range a.choices {
		out[k+"_index"] = idx
	}
	return out
}

func (a *Answers) Clone() *Answers {
	c := NewAnswers()
	if a == nil {
		return c
	}
	for k, v := range a.text {
		c.text[k] = v
	}
	for k, v := range a.choices {
		c.choices[k] = v
	}
	return c
}

func (a *Answers) init() {
	if a.text == nil {
		a.text = make(map[string]string)
	}
	if a.choices == nil {
		a.choices = make(map[string]int)
	}
}
