package workout

// ElementType discriminates the two kinds of structure element.
type ElementType string

const (
	// TypeStep is a single pass through the element's steps.
	TypeStep ElementType = "step"
	// TypeRepetition repeats the element's steps Length.Value times.
	TypeRepetition ElementType = "repetition"
)

// LengthMetric is the structure-wide primary length metric.
type LengthMetric string

const (
	MetricDuration LengthMetric = "duration"
	MetricDistance LengthMetric = "distance"
)

// IntensityMetric is the structure-wide primary intensity metric.
type IntensityMetric string

const (
	MetricPercentOfThresholdPace  IntensityMetric = "percentOfThresholdPace"
	MetricPercentOfThresholdPower IntensityMetric = "percentOfThresholdPower"
	MetricHeartRate               IntensityMetric = "heartRate"
	MetricPower                   IntensityMetric = "power"
	MetricPace                    IntensityMetric = "pace"
	MetricSpeed                   IntensityMetric = "speed"
)

// TargetType says whether step targets are single values or ranges.
type TargetType string

const (
	TargetSingle TargetType = "target"
	TargetRange  TargetType = "range"
)

// SimpleElement is a structure element before timing: a step block or a
// repetition block with no absolute offsets yet.
//
// For a step element the length is the block's declared duration. For a
// repetition element the length is the repeat count (repetition unit) and
// the block duration comes from the steps themselves.
type SimpleElement struct {
	Type   ElementType `json:"type"`
	Length Length      `json:"length"`
	Steps  []Step      `json:"steps"`
}

// Element is a structure element with computed timing: begin/end are
// absolute second offsets from the start of the workout, and polyline is the
// element's visualization trace.
type Element struct {
	Type     ElementType `json:"type"`
	Length   Length      `json:"length"`
	Steps    []Step      `json:"steps"`
	Begin    float64     `json:"begin"`
	End      float64     `json:"end"`
	Polyline [][]float64 `json:"polyline"`
}

// Duration returns the element's timed duration in seconds.
func (e Element) Duration() float64 { return e.End - e.Begin }

// SimpleStructure is an ordered element sequence without timing, the input
// to ToCompleteStructure.
type SimpleStructure struct {
	Structure              []SimpleElement `json:"structure"`
	PrimaryLengthMetric    LengthMetric    `json:"primaryLengthMetric"`
	PrimaryIntensityMetric IntensityMetric `json:"primaryIntensityMetric"`
	IntensityTargetType    TargetType      `json:"intensityTargetType"`
}

// Structure is a complete workout structure: every element carries begin/end
// offsets and the whole workout has a polyline. This is the shape the
// structured-workout endpoint accepts.
//
// Note the field rename at the simple/complete boundary: the simple
// structure's intensityTargetType becomes primaryIntensityTargetOrRange here.
type Structure struct {
	Structure                     []Element       `json:"structure"`
	Polyline                      [][]float64     `json:"polyline"`
	PrimaryLengthMetric           LengthMetric    `json:"primaryLengthMetric"`
	PrimaryIntensityMetric        IntensityMetric `json:"primaryIntensityMetric"`
	PrimaryIntensityTargetOrRange TargetType      `json:"primaryIntensityTargetOrRange"`
}

// TotalDuration sums the timed duration of every element, in seconds.
func (s Structure) TotalDuration() float64 {
	var total float64
	for _, el := range s.Structure {
		total += el.End - el.Begin
	}
	return total
}

// AllSteps flattens the steps of every element, preserving element order and
// within-element step order.
func (s Structure) AllSteps() []Step {
	var steps []Step
	for _, el := range s.Structure {
		steps = append(steps, el.Steps...)
	}
	return steps
}

// ActiveSteps returns the steps with intensity class active.
func (s Structure) ActiveSteps() []Step {
	return s.stepsByClass(IntensityActive)
}

// RestSteps returns the steps with intensity class rest.
func (s Structure) RestSteps() []Step {
	return s.stepsByClass(IntensityRest)
}

func (s Structure) stepsByClass(class IntensityClass) []Step {
	var steps []Step
	for _, st := range s.AllSteps() {
		if st.IntensityClass == class {
			steps = append(steps, st)
		}
	}
	return steps
}

// Repetitions returns the top-level repetition elements.
func (s Structure) Repetitions() []Element {
	return s.elementsByType(TypeRepetition)
}

// StepElements returns the top-level step elements.
func (s Structure) StepElements() []Element {
	return s.elementsByType(TypeStep)
}

func (s Structure) elementsByType(t ElementType) []Element {
	var els []Element
	for _, el := range s.Structure {
		if el.Type == t {
			els = append(els, el)
		}
	}
	return els
}

// AverageIntensity returns the mean primary-target midpoint across all
// steps, or 0 when the structure has no steps.
func (s Structure) AverageIntensity() float64 {
	steps := s.AllSteps()
	if len(steps) == 0 {
		return 0
	}
	var sum float64
	for _, st := range steps {
		sum += st.PrimaryTarget().Midpoint()
	}
	return sum / float64(len(steps))
}
