// internal/measure/classify.go
package measure

// Glyphs produced by Classify.
const (
	GlyphNone = ' '
	GlyphDit  = '.'
	GlyphDah  = '-'
)

// tolerance is the accepted deviation from a dit, in percent.
const tolerance = 10

// Classify maps one on-interval to a glyph. A dit is an interval within
// ±10% of half the dit period (integer percent); anything longer or
// shorter is a dah; an unmeasured interval is blank.
func Classify(v, ditTotal int) byte {
	if v < 0 {
		return GlyphNone
	}

	t := ditTotal / 2
	if t <= 0 {
		return GlyphDah
	}

	d := (v - t) * 100 / t
	if d >= -tolerance && d <= tolerance {
		return GlyphDit
	}
	return GlyphDah
}

// glyphs classifies the even (on) intervals of u.
func glyphs(u []int, ditTotal int) string {
	out := make([]byte, 0, len(u)/2)
	for i := 0; i+1 < len(u); i += 2 {
		out = append(out, Classify(u[i], ditTotal))
	}
	return string(out)
}
