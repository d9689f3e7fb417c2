package entity

import (
	"context"
	"slices"
)

// TransformFunc renders one detail value from a record. ok=false marks the
// value as absent.
type TransformFunc func(ctx context.Context, info DesignInfo, related Related) (value string, ok bool)

// DetailProperty describes how to render one line of entity details.
type DetailProperty struct {
	// Label is the static label, used when DisplayName is nil.
	Label string
	// DisplayName resolves a subtype dependent label.
	DisplayName *DisplayName
	// OmitIfNone drops the line when the transform reports an absent value.
	OmitIfNone bool
	// AllowedTypes restricts the property to these subtypes; empty allows all.
	AllowedTypes []string
	// Transform produces the value.
	Transform TransformFunc
}

// Allows reports whether the property applies to subtype.
func (p *DetailProperty) Allows(subtype string) bool {
	return len(p.AllowedTypes) == 0 || slices.Contains(p.AllowedTypes, subtype)
}

// ResolveLabel returns the label for subtype; ok is false when suppressed.
func (p *DetailProperty) ResolveLabel(subtype string) (string, bool) {
	if p.DisplayName != nil {
		return p.DisplayName.Resolve(subtype)
	}
	return p.Label, true
}

// Evaluate renders the property for a record. ok is false when the line
// must not be shown.
func (p *DetailProperty) Evaluate(ctx context.Context, info DesignInfo, related Related, subtype string) (Line, bool) {
	if !p.Allows(subtype) {
		return Line{}, false
	}
	label, ok := p.ResolveLabel(subtype)
	if !ok {
		return Line{}, false
	}

	var value string
	present := false
	if p.Transform != nil {
		value, present = p.Transform(ctx, info, related)
	}
	if !present {
		if p.OmitIfNone {
			return Line{}, false
		}
		value = ""
	}
	return Line{Label: label, Value: value}, true
}

// Value returns a transform that echoes the raw value of property.
func Value(property string) TransformFunc {
	return func(_ context.Context, info DesignInfo, _ Related) (string, bool) {
		return info.Lookup(property)
	}
}
