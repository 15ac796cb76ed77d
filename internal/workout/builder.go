package workout

// ElementBuilder accumulates a SimpleElement. Builders are single-use: set
// the fields, call Build, discard. Build fails with a ConstructionError
// naming every field that was never set.
type ElementBuilder struct {
	elementType   ElementType
	hasType       bool
	length        Length
	hasLength     bool
	steps         []Step
	normalizeTime bool
}

// NewElementBuilder returns an empty builder.
func NewElementBuilder() *ElementBuilder {
	return &ElementBuilder{}
}

// Type sets the element type.
func (b *ElementBuilder) Type(t ElementType) *ElementBuilder {
	b.elementType = t
	b.hasType = true
	return b
}

// Length sets the element length: declared duration for a step element,
// repeat count for a repetition element.
func (b *ElementBuilder) Length(l Length) *ElementBuilder {
	b.length = l
	b.hasLength = true
	return b
}

// Step appends one step.
func (b *ElementBuilder) Step(s Step) *ElementBuilder {
	b.steps = append(b.steps, s)
	return b
}

// Steps appends steps in order.
func (b *ElementBuilder) Steps(steps ...Step) *ElementBuilder {
	b.steps = append(b.steps, steps...)
	return b
}

// NormalizeTime converts minute- and hour-denominated lengths (the element's
// own length and every step's) to seconds at Build time. The timing engine
// reads Length.Value as seconds without converting, so authors working in
// minutes opt in here once instead of converting by hand.
func (b *ElementBuilder) NormalizeTime() *ElementBuilder {
	b.normalizeTime = true
	return b
}

// Build validates and produces the element.
func (b *ElementBuilder) Build() (SimpleElement, error) {
	var missing []string
	if !b.hasType {
		missing = append(missing, "type")
	}
	if !b.hasLength {
		missing = append(missing, "length")
	}
	if len(b.steps) == 0 {
		missing = append(missing, "steps")
	}
	if len(missing) > 0 {
		return SimpleElement{}, &ConstructionError{Missing: missing}
	}

	el := SimpleElement{
		Type:   b.elementType,
		Length: b.length,
		Steps:  append([]Step(nil), b.steps...),
	}
	if b.normalizeTime {
		el.Length = normalizeToSeconds(el.Length)
		for i, s := range el.Steps {
			el.Steps[i].Length = normalizeToSeconds(s.Length)
		}
	}
	return el, nil
}

func normalizeToSeconds(l Length) Length {
	if l.Unit == UnitMinute || l.Unit == UnitHour {
		secs, _ := l.ToSeconds()
		return Seconds(secs)
	}
	return l
}

// CompleteElementBuilder accumulates an Element with explicit timing. Unlike
// the simple builder it additionally requires begin and end; zero is a valid
// begin, so both are tracked as set/unset rather than compared to zero.
type CompleteElementBuilder struct {
	inner    ElementBuilder
	begin    float64
	hasBegin bool
	end      float64
	hasEnd   bool
	polyline [][]float64
}

// NewCompleteElementBuilder returns an empty builder.
func NewCompleteElementBuilder() *CompleteElementBuilder {
	return &CompleteElementBuilder{}
}

// Type sets the element type.
func (b *CompleteElementBuilder) Type(t ElementType) *CompleteElementBuilder {
	b.inner.Type(t)
	return b
}

// Length sets the element length.
func (b *CompleteElementBuilder) Length(l Length) *CompleteElementBuilder {
	b.inner.Length(l)
	return b
}

// Step appends one step.
func (b *CompleteElementBuilder) Step(s Step) *CompleteElementBuilder {
	b.inner.Step(s)
	return b
}

// Steps appends steps in order.
func (b *CompleteElementBuilder) Steps(steps ...Step) *CompleteElementBuilder {
	b.inner.Steps(steps...)
	return b
}

// Begin sets the absolute start offset in seconds.
func (b *CompleteElementBuilder) Begin(t float64) *CompleteElementBuilder {
	b.begin = t
	b.hasBegin = true
	return b
}

// End sets the absolute end offset in seconds.
func (b *CompleteElementBuilder) End(t float64) *CompleteElementBuilder {
	b.end = t
	b.hasEnd = true
	return b
}

// Polyline sets the element's visualization trace. Optional; when unset the
// built element carries a polyline generated from its duration.
func (b *CompleteElementBuilder) Polyline(points [][]float64) *CompleteElementBuilder {
	b.polyline = points
	return b
}

// Build validates and produces the timed element.
func (b *CompleteElementBuilder) Build() (Element, error) {
	simple, err := b.inner.Build()

	var missing []string
	if err != nil {
		missing = err.(*ConstructionError).Missing
	}
	if !b.hasBegin {
		missing = append(missing, "begin")
	}
	if !b.hasEnd {
		missing = append(missing, "end")
	}
	if len(missing) > 0 {
		return Element{}, &ConstructionError{Missing: missing}
	}

	polyline := b.polyline
	if polyline == nil {
		polyline = GeneratePolyline(b.end - b.begin)
	}
	return Element{
		Type:     simple.Type,
		Length:   simple.Length,
		Steps:    simple.Steps,
		Begin:    b.begin,
		End:      b.end,
		Polyline: polyline,
	}, nil
}
