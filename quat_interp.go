package geom

import "github.com/chewxy/math32"

const (
	// interpScale is applied to both unit inputs before interpolating.
	interpScale = 100
	// slerpLerpCos is the cosine above which Slerp falls back to
	// LerpAndNormalize, where sin(φ) gets too small to divide by.
	slerpLerpCos = 1 - 0.001
)

// LerpAndNormalize interpolates linearly between start and end along the
// shortest path and normalizes the result.
func LerpAndNormalize(start, end Quat, t float32) Quat {
	return LerpAndNormalizePath(start, end, t, true)
}

// LerpAndNormalizePath is LerpAndNormalize with control over the path. When
// forceShortestPath is set and the inputs lie in opposite hemispheres end is
// negated first. It panics if either input is zero, or if the inputs are
// opposite without forceShortestPath, where the path crosses the zero
// quaternion at t=0.5.
func LerpAndNormalizePath(start, end Quat, t float32, forceShortestPath bool) Quat {
	s := start.Unit().Scale(interpScale)
	e := end.Unit().Scale(interpScale)
	if forceShortestPath && s.Dot(e) < 0 {
		e = e.Neg()
	}
	return s.Add(e.Sub(s).Scale(t)).Unit()
}

// Slerp interpolates spherically between start and end along the shortest path.
func Slerp(start, end Quat, t float32) Quat {
	return SlerpPath(start, end, t, true)
}

// SlerpPath is Slerp with control over the path. Nearly parallel inputs,
// with |cos φ| above 0.999, are interpolated with LerpAndNormalizePath.
// It panics if either input is zero, and for exactly opposite inputs without
// forceShortestPath, as LerpAndNormalizePath does.
func SlerpPath(start, end Quat, t float32, forceShortestPath bool) Quat {
	s := start.Unit().Scale(interpScale)
	e := end.Unit().Scale(interpScale)
	cos := s.Dot(e) / (interpScale * interpScale)
	if math32.Abs(cos) > slerpLerpCos {
		return LerpAndNormalizePath(start, end, t, forceShortestPath)
	}
	endSign := float32(1)
	if forceShortestPath && cos < 0 {
		cos = -cos
		endSign = -1
	}
	phi := math32.Acos(cos)
	sinPhi := math32.Sin(phi)
	ws := math32.Sin((1-t)*phi) / sinPhi
	we := endSign * math32.Sin(t*phi) / sinPhi
	return s.Scale(ws).Add(e.Scale(we)).Unit()
}
