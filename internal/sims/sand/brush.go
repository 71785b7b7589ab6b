package sand

const (
	brushInitialHue = 200
	brushHueStep    = 0.5
	brushMaxHue     = 360
)

// Brush is the hue cursor used for painting. Every spawn call shifts the hue a
// little so successive strokes form a rainbow.
type Brush struct {
	hue float64
}

// NewBrush returns a brush at the initial hue.
func NewBrush() Brush { return Brush{hue: brushInitialHue} }

// Hue returns the hue the next spawn will use.
func (b *Brush) Hue() float64 { return b.hue }

// Advance moves to the next hue, wrapping past 360 back to 1.
func (b *Brush) Advance() {
	b.hue += brushHueStep
	if b.hue > brushMaxHue {
		b.hue = 1
	}
}

// Reset returns the cursor to the initial hue.
func (b *Brush) Reset() { b.hue = brushInitialHue }
