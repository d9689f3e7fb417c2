package entity

import (
	"context"
	"fmt"
	"strings"
)

// Line is one rendered label/value pair.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Details is the rendered form of one design record.
type Details struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Long        []Line `json:"long"`
	Short       []Line `json:"short"`
}

// Layout is the fixed list of properties rendered for one entity kind.
type Layout struct {
	// KeyProperty names the design id field.
	KeyProperty string
	// SubtypeProperty names the field holding the entity subtype (RoomType).
	SubtypeProperty string
	Title           DetailProperty
	Description     DetailProperty
	Long            []DetailProperty
	Short           []DetailProperty
}

// Build renders info with the layout.
func (l *Layout) Build(ctx context.Context, info DesignInfo, related Related) Details {
	subtype := info.Get(l.SubtypeProperty)

	d := Details{ID: info.Get(l.KeyProperty)}
	if line, ok := l.Title.Evaluate(ctx, info, related, subtype); ok {
		d.Title = line.Value
	}
	if line, ok := l.Description.Evaluate(ctx, info, related, subtype); ok {
		d.Description = line.Value
	}
	d.Long = evaluateAll(ctx, l.Long, info, related, subtype)
	d.Short = evaluateAll(ctx, l.Short, info, related, subtype)
	return d
}

// BuildAll renders every record in order.
func (l *Layout) BuildAll(ctx context.Context, infos []DesignInfo, related Related) []Details {
	out := make([]Details, 0, len(infos))
	for _, info := range infos {
		out = append(out, l.Build(ctx, info, related))
	}
	return out
}

func evaluateAll(ctx context.Context, props []DetailProperty, info DesignInfo, related Related, subtype string) []Line {
	lines := make([]Line, 0, len(props))
	for i := range props {
		if line, ok := props[i].Evaluate(ctx, info, related, subtype); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// LongText renders the details as chat text lines.
func (d Details) LongText() []string {
	lines := []string{fmt.Sprintf("**%s**", d.Title)}
	if d.Description != "" {
		lines = append(lines, fmt.Sprintf("_%s_", d.Description))
	}
	for _, l := range d.Long {
		lines = append(lines, fmt.Sprintf("%s = %s", l.Label, l.Value))
	}
	return lines
}

// ShortText renders the details as a single line.
func (d Details) ShortText() string {
	if len(d.Short) == 0 {
		return d.Title
	}
	return fmt.Sprintf("%s (%s)", d.Title, d.shortSummary())
}

func (d Details) shortSummary() string {
	parts := make([]string, 0, len(d.Short))
	for _, l := range d.Short {
		parts = append(parts, fmt.Sprintf("%s: %s", l.Label, l.Value))
	}
	return strings.Join(parts, ", ")
}

// Embed renders the details as a chat embed.
func (d Details) Embed() Embed {
	e := Embed{Title: d.Title, Description: d.Description}
	for _, l := range d.Long {
		e.Fields = append(e.Fields, EmbedField{Name: l.Label, Value: l.Value, Inline: true})
	}
	return e
}
