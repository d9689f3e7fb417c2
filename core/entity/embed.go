package entity

// Embed is the chat-embed-equivalent output structure.
type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Footer      string       `json:"footer,omitempty"`
}

// EmbedField is one named value of an embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Collection renders several details at once. Sets larger than
// BigSetThreshold use the short form.
type Collection struct {
	Items           []Details
	BigSetThreshold int
}

// IsBigSet reports whether the collection renders in short form.
func (c Collection) IsBigSet() bool {
	return c.BigSetThreshold > 0 && len(c.Items) > c.BigSetThreshold
}

// Text renders the collection as chat text lines. Long entries are
// separated by an empty line.
func (c Collection) Text() []string {
	var lines []string
	if c.IsBigSet() {
		for _, d := range c.Items {
			lines = append(lines, d.ShortText())
		}
		return lines
	}
	for i, d := range c.Items {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, d.LongText()...)
	}
	return lines
}

// Embeds renders the collection as chat embeds: one per entry, or a
// single listing embed for big sets.
func (c Collection) Embeds() []Embed {
	if c.IsBigSet() {
		e := Embed{Footer: "Narrow the search to see full details."}
		for _, d := range c.Items {
			e.Fields = append(e.Fields, EmbedField{Name: d.Title, Value: shortValue(d)})
		}
		return []Embed{e}
	}
	embeds := make([]Embed, 0, len(c.Items))
	for _, d := range c.Items {
		embeds = append(embeds, d.Embed())
	}
	return embeds
}

func shortValue(d Details) string {
	if len(d.Short) == 0 {
		return "-"
	}
	return d.shortSummary()
}

// Result is the rendered answer to a details query.
type Result struct {
	Found  bool     `json:"found"`
	Lines  []string `json:"lines,omitempty"`
	Embeds []Embed  `json:"embeds,omitempty"`
}

// Render renders the collection as embeds or as text lines.
func (c Collection) Render(asEmbed bool) Result {
	if asEmbed {
		return Result{Found: true, Embeds: c.Embeds()}
	}
	return Result{Found: true, Lines: c.Text()}
}

// NotFound returns a result carrying only the not-found message.
func NotFound(message string) Result {
	return Result{Lines: []string{message}}
}
