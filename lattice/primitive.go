package lattice

import "math"

// template is a motion primitive sampled once for a given starting heading
// th0, relative to the origin (path[0] is always (0,0)).
type template struct {
	kind                   PrimitiveKind
	path                   [][2]float64
	endX, endY, endHeading float64
}

// buildTemplates samples the six motion primitives for starting heading th0,
// per the specification's per-primitive formulas. Forward primitives are
// sampled directly; reverse primitives are produced by reflecting a forward
// primitive's sample sequence about the origin (see makeBackward), honoring
// the reference's cross-wired convention: the backward-left primitive
// mirrors the right-arc geometry (arriving at the left arc's end heading),
// and the backward-right primitive mirrors the left-arc geometry (arriving
// at the right arc's end heading).
func buildTemplates(cfg Config, th0 float64) [6]template {
	n := cfg.SamplesPerPrimitive
	length := cfg.PrimitiveLength
	radius := cfg.TurningRadius

	straightPath := make([][2]float64, n)
	for i := 0; i < n; i++ {
		t := length * float64(i) / float64(n-1)
		straightPath[i] = [2]float64{t * math.Cos(th0), t * math.Sin(th0)}
	}
	straightEnd := straightPath[n-1]

	dth := length / radius

	leftPath := make([][2]float64, n)
	lcx, lcy := -radius*math.Sin(th0), radius*math.Cos(th0)
	for i := 0; i < n; i++ {
		t := dth * float64(i) / float64(n-1)
		leftPath[i] = [2]float64{lcx + radius*math.Sin(th0+t), lcy - radius*math.Cos(th0+t)}
	}
	leftEnd := leftPath[n-1]
	leftEndHeading := normalizeAngle(th0 + dth)

	rightPath := make([][2]float64, n)
	rcx, rcy := radius*math.Sin(th0), -radius*math.Cos(th0)
	for i := 0; i < n; i++ {
		t := dth * float64(i) / float64(n-1)
		rightPath[i] = [2]float64{rcx - radius*math.Sin(th0-t), rcy + radius*math.Cos(th0-t)}
	}
	rightEnd := rightPath[n-1]
	rightEndHeading := normalizeAngle(th0 - dth)

	bEnd, bPath := makeBackward(straightPath, straightEnd)
	lbEnd, lbPath := makeBackward(rightPath, rightEnd)
	rbEnd, rbPath := makeBackward(leftPath, leftEnd)

	return [6]template{
		{Straight, straightPath, straightEnd[0], straightEnd[1], th0},
		{Left, leftPath, leftEnd[0], leftEnd[1], leftEndHeading},
		{Right, rightPath, rightEnd[0], rightEnd[1], rightEndHeading},
		{StraightReverse, bPath, bEnd[0], bEnd[1], th0},
		{LeftReverse, lbPath, lbEnd[0], lbEnd[1], leftEndHeading},
		{RightReverse, rbPath, rbEnd[0], rbEnd[1], rightEndHeading},
	}
}

// makeBackward reverses forwardPath's sample order and shifts every sample
// by -forwardEnd, so the new first sample sits at (0,0) (the forward path's
// last sample, shifted onto the origin). It returns the new path's final
// sample (the backward primitive's relative endpoint).
func makeBackward(forwardPath [][2]float64, forwardEnd [2]float64) ([2]float64, [][2]float64) {
	n := len(forwardPath)
	out := make([][2]float64, n)
	for k := 0; k < n; k++ {
		src := forwardPath[n-1-k]
		out[k] = [2]float64{src[0] - forwardEnd[0], src[1] - forwardEnd[1]}
	}

	return out[n-1], out
}

// pathLength sums Euclidean segment lengths along path.
func pathLength(path [][2]float64) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		dx := path[i][0] - path[i-1][0]
		dy := path[i][1] - path[i-1][1]
		total += math.Hypot(dx, dy)
	}

	return total
}
