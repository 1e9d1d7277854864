package canvas

// Point is a device-space (post-transform) or user-space (pre-transform)
// coordinate pair, per spec §3 Point; which space it lives in is
// determined by context, never tagged on the value itself.
type Point struct {
	X, Y float64
}

// FillRule selects the winding predicate used by the rasterizer.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// LineCap is the terminator style for open subpath endpoints.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin is the connector style at interior stroke vertices.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinBevel
	JoinRound
)

// RepeatMode controls how a Pattern paint wraps outside its image extent.
type RepeatMode int

const (
	RepeatBoth RepeatMode = iota
	RepeatX
	RepeatY
	RepeatNone
)

// Operator is a Porter-Duff compositing operator, spec §3/§4.5.
type Operator int

const (
	SourceOver Operator = iota
	DestinationOver
	SourceIn
	DestinationIn
	SourceOut
	DestinationOut
	SourceAtop
	DestinationAtop
	XOR
	Copy
	Lighter
)

// wholeSurface reports whether an operator's definition must be realized
// over the full clip-bounded region rather than just the source shape's
// own coverage footprint (spec §4.5).
func (op Operator) wholeSurface() bool {
	switch op {
	case SourceIn, DestinationIn, SourceOut, DestinationAtop, Copy:
		return true
	default:
		return false
	}
}

// String names match the Canvas2D globalCompositeOperation strings.
func (op Operator) String() string {
	switch op {
	case SourceOver:
		return "source-over"
	case DestinationOver:
		return "destination-over"
	case SourceIn:
		return "source-in"
	case DestinationIn:
		return "destination-in"
	case SourceOut:
		return "source-out"
	case DestinationOut:
		return "destination-out"
	case SourceAtop:
		return "source-atop"
	case DestinationAtop:
		return "destination-atop"
	case XOR:
		return "xor"
	case Copy:
		return "copy"
	case Lighter:
		return "lighter"
	default:
		return "unknown"
	}
}

// ParseOperator resolves a Canvas2D operator name. An unrecognized name
// returns (SourceOver, false); spec §7 UnsupportedOperator: fall back to
// source-over and report once.
func ParseOperator(name string) (Operator, bool) {
	switch name {
	case "source-over":
		return SourceOver, true
	case "destination-over":
		return DestinationOver, true
	case "source-in":
		return SourceIn, true
	case "destination-in":
		return DestinationIn, true
	case "source-out":
		return SourceOut, true
	case "destination-out":
		return DestinationOut, true
	case "source-atop":
		return SourceAtop, true
	case "destination-atop":
		return DestinationAtop, true
	case "xor":
		return XOR, true
	case "copy":
		return Copy, true
	case "lighter":
		return Lighter, true
	default:
		return SourceOver, false
	}
}
