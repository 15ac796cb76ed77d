package workout

import "math"

// The timing engine turns a SimpleStructure into a Structure by walking the
// element list once, accumulating elapsed seconds and expanding repetition
// blocks. It treats every Length.Value as seconds; unit normalization is the
// builder's job (see ElementBuilder.NormalizeTime).

// ElementDuration computes one element's block duration in seconds.
//
// A step element's duration is its declared length. A repetition element's
// duration is the per-cycle sum of its step lengths multiplied by the repeat
// count. A repetition element with no steps is unpriceable and fails.
func ElementDuration(el SimpleElement) (float64, error) {
	if el.Type == TypeRepetition {
		if len(el.Steps) == 0 {
			return 0, newComputationError(
				"Repetition element must have at least one step. Found %d steps.", len(el.Steps))
		}
		var perCycle float64
		for _, s := range el.Steps {
			perCycle += s.Length.Value
		}
		return perCycle * el.Length.Value, nil
	}
	return el.Length.Value, nil
}

// TotalDuration sums the durations of every element in the simple
// structure. An empty structure has duration 0.
func TotalDuration(s SimpleStructure) (float64, error) {
	var total float64
	for _, el := range s.Structure {
		d, err := ElementDuration(el)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// completeElement attaches timing and a polyline to one element. Everything
// else passes through unchanged.
func completeElement(el SimpleElement, start float64) (Element, error) {
	d, err := ElementDuration(el)
	if err != nil {
		return Element{}, err
	}
	return Element{
		Type:     el.Type,
		Length:   el.Length,
		Steps:    el.Steps,
		Begin:    start,
		End:      start + d,
		Polyline: GeneratePolyline(d),
	}, nil
}

// ToCompleteStructure computes absolute begin/end offsets for every element
// and synthesizes the workout polyline. Elements come out contiguous: the
// first begins at 0 and each end equals the next begin.
//
// Any element the engine cannot price aborts the whole conversion; there is
// no partial result.
func ToCompleteStructure(simple SimpleStructure) (Structure, error) {
	elements := make([]Element, 0, len(simple.Structure))
	var elapsed float64
	for _, el := range simple.Structure {
		complete, err := completeElement(el, elapsed)
		if err != nil {
			return Structure{}, err
		}
		elements = append(elements, complete)
		elapsed = complete.End
	}

	return Structure{
		Structure:                     elements,
		Polyline:                      GeneratePolyline(elapsed),
		PrimaryLengthMetric:           simple.PrimaryLengthMetric,
		PrimaryIntensityMetric:        simple.PrimaryIntensityMetric,
		PrimaryIntensityTargetOrRange: simple.IntensityTargetType,
	}, nil
}

// GeneratePolyline produces a deterministic placeholder trace for a duration
// in seconds: one point per minute, never fewer than two. The chart layer
// only depends on the shape, not the coordinates.
func GeneratePolyline(duration float64) [][]float64 {
	n := int(math.Floor(duration / 60))
	if n < 2 {
		n = 2
	}
	points := make([][]float64, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, []float64{
			40.7128 + float64(i)*0.001,
			-74.006 + float64(i)*0.001,
		})
	}
	return points
}
