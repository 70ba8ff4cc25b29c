package mos

import "math"

// AngleStd returns the tuning angle of the generator in the standard
// (depth-0) square: the inverse of g = 1 / (1 + tan((π/2)(1-θ·2/π))).
func (m *MOS) AngleStd() float64 {
	if m.generator <= 0 {
		return 0
	}
	return math.Pi/2 - math.Atan2(1/m.generator-1, 1)
}

// Angle folds the standard angle down the refinement path, yielding the
// angle in the structure's own step square.  Useful for tuning UIs that
// present the generator as a direction.
func (m *MOS) Angle() float64 {
	angle := m.AngleStd()
	for _, p := range m.path {
		if p {
			angle = math.Atan2(math.Tan(angle)-1, 1)
		} else {
			angle = math.Atan2(1, 1/math.Tan(angle)-1)
		}
	}
	return angle
}

// GFromAngle unfolds an angle in the structure's step square back through
// the path and converts it to a generator fraction.  Inverse of Angle.
func (m *MOS) GFromAngle(angle float64) float64 {
	for i := len(m.path) - 1; i >= 0; i-- {
		if m.path[i] {
			angle = math.Atan2(math.Tan(angle)+1, 1)
		} else {
			angle = math.Atan2(1, 1/math.Tan(angle)+1)
		}
	}
	return 1.0 / (1.0 + math.Tan(math.Pi/2-angle))
}
