package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat is wrapped by every error returned from the Parse functions.
var ErrFormat = errors.New("geom: malformed input")

// String returns v in the form "[x, y]" using the shortest representation
// that parses back to the same value.
func (v Vec2) String() string { return formatElems(-1, v.X, v.Y) }

// Format returns v in the form "[x, y]" with the given number of decimals.
func (v Vec2) Format(decimals int) string { return formatElems(decimals, v.X, v.Y) }

func (v Vec3) String() string { return formatElems(-1, v.X, v.Y, v.Z) }

// Format returns v in the form "[x, y, z]" with the given number of decimals.
func (v Vec3) Format(decimals int) string { return formatElems(decimals, v.X, v.Y, v.Z) }

func (v Vec4) String() string { return formatElems(-1, v.X, v.Y, v.Z, v.W) }

// Format returns v in the form "[x, y, z, w]" with the given number of decimals.
func (v Vec4) Format(decimals int) string { return formatElems(decimals, v.X, v.Y, v.Z, v.W) }

// String returns q in the form "<[x, y, z] ~ w>".
func (q Quat) String() string { return q.Format(-1) }

// Format returns q in the form "<[x, y, z] ~ w>" with the given number of decimals.
func (q Quat) Format(decimals int) string {
	return "<" + formatElems(decimals, q.X, q.Y, q.Z) + " ~ " + formatFloat(q.W, decimals) + ">"
}

// String returns the rows of m as "[[a, b, c, d], ...]".
func (m Mat4) String() string { return m.Format(-1) }

// Format returns the rows of m with the given number of decimals.
// A negative count selects the shortest representation.
func (m Mat4) Format(decimals int) string {
	return "[" + m.RowA.Format(decimals) + ", " + m.RowB.Format(decimals) + ", " +
		m.RowC.Format(decimals) + ", " + m.RowD.Format(decimals) + "]"
}

// formatFloat prints values that round to zero without a sign.
func formatFloat(f float32, decimals int) string {
	if f == 0 {
		f = 0
	}
	if decimals < 0 {
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	s := strconv.FormatFloat(float64(f), 'f', decimals, 32)
	if s[0] == '-' && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}

func formatElems(decimals int, elems ...float32) string {
	b := make([]byte, 0, 16*len(elems))
	b = append(b, '[')
	for i, f := range elems {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, formatFloat(f, decimals)...)
	}
	return string(append(b, ']'))
}

// ParseVec2 parses the "[x, y]" form. Surrounding whitespace and brackets are optional.
func ParseVec2(s string) (Vec2, error) {
	var e [2]float32
	err := parseElems("Vec2", s, e[:])
	return Vec2{e[0], e[1]}, err
}

// ParseVec3 parses the "[x, y, z]" form. Surrounding whitespace and brackets are optional.
func ParseVec3(s string) (Vec3, error) {
	var e [3]float32
	err := parseElems("Vec3", s, e[:])
	return Vec3{e[0], e[1], e[2]}, err
}

// ParseVec4 parses the "[x, y, z, w]" form. Surrounding whitespace and brackets are optional.
func ParseVec4(s string) (Vec4, error) {
	var e [4]float32
	err := parseElems("Vec4", s, e[:])
	return Vec4{e[0], e[1], e[2], e[3]}, err
}

// ParseQuat parses the "<[x, y, z] ~ w>" form.
func ParseQuat(s string) (Quat, error) {
	body := strings.TrimSpace(s)
	body = strings.TrimSuffix(strings.TrimPrefix(body, "<"), ">")
	vec, scalar, ok := strings.Cut(body, "~")
	if !ok {
		return Quat{}, fmt.Errorf("%w: Quat %q: missing '~' separator", ErrFormat, s)
	}
	v, err := ParseVec3(vec)
	if err != nil {
		return Quat{}, fmt.Errorf("Quat %q: %w", s, err)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(scalar), 32)
	if err != nil {
		return Quat{}, fmt.Errorf("%w: Quat %q: %w", ErrFormat, s, err)
	}
	return Quat{v.X, v.Y, v.Z, float32(w)}, nil
}

func parseElems(typ, s string, dst []float32) error {
	body := strings.TrimSpace(s)
	body = strings.TrimSuffix(strings.TrimPrefix(body, "["), "]")
	fields := strings.Split(body, ",")
	if len(fields) != len(dst) {
		return fmt.Errorf("%w: %s %q: want %d components, got %d", ErrFormat, typ, s, len(dst), len(fields))
	}
	for i, field := range fields {
		f, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
		if err != nil {
			for j := range dst {
				dst[j] = 0
			}
			return fmt.Errorf("%w: %s %q: %w", ErrFormat, typ, s, err)
		}
		dst[i] = float32(f)
	}
	return nil
}
