package canvas

// ShadowState groups the shadow parameters snapshotted with the rest of
// the graphics state, spec §3/§4 component 9.
type ShadowState struct {
	Color   RGBA
	OffsetX float64
	OffsetY float64
	Blur    float64
}

// LineState groups the stroke-affecting parameters of spec §3.
type LineState struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       []float64
	DashOffset float64
}

// GraphicsState is the snapshot unit of spec §4.7: everything save()
// pushes and restore() pops except the current path and the surface
// pixels. Grounded on the teacher's graphics_state.go GraphicsState.
type GraphicsState struct {
	Transform   Matrix
	Clip        *ClipMask
	FillPaint   Paint
	StrokePaint Paint
	Line        LineState
	GlobalAlpha float64
	CompositeOp Operator
	Shadow      ShadowState
}

// defaultGraphicsState matches Canvas2D's initial state: identity
// transform, no clip, black fill/stroke, 1px butt/miter lines,
// opaque, source-over, no shadow.
func defaultGraphicsState() GraphicsState {
	return GraphicsState{
		Transform:   Identity(),
		Clip:        nil,
		FillPaint:   SolidPaint{Color: RGBA{A: 255}},
		StrokePaint: SolidPaint{Color: RGBA{A: 255}},
		Line: LineState{
			Width:      1,
			Cap:        CapButt,
			Join:       JoinMiter,
			MiterLimit: 10,
		},
		GlobalAlpha: 1,
		CompositeOp: SourceOver,
	}
}

// Clone returns a value copy suitable for push onto the stack. The clip
// mask pointer is shared (copy-on-write, see clip.go); the dash slice
// is shared too since SetLineDash always installs a new slice rather
// than mutating one in place.
func (g GraphicsState) Clone() GraphicsState {
	return g
}

// StateStack is spec §4.7's depth-bounded graphics-state stack.
// Grounded on the teacher's GraphicsStateStack: Push clones and
// appends, Pop never removes the last remaining state (this project's
// literal reading of "pop on an empty stack is a no-op", DESIGN.md
// Open Question 2 — the stack is simply never observably empty).
type StateStack struct {
	states []GraphicsState
}

// maxStackDepth is the implementation-defined limit spec §4.7 requires
// to be >= 32.
const maxStackDepth = 256

func newStateStack() *StateStack {
	return &StateStack{states: []GraphicsState{defaultGraphicsState()}}
}

func (s *StateStack) Current() *GraphicsState {
	return &s.states[len(s.states)-1]
}

// Save pushes a snapshot of the current state. Beyond maxStackDepth,
// Save is a no-op (implementation-defined limit, spec §4.7).
func (s *StateStack) Save() {
	if len(s.states) >= maxStackDepth {
		return
	}
	s.states = append(s.states, s.Current().Clone())
}

// Restore pops the most recent snapshot; a no-op when only the initial
// state remains, implementing spec §7's silent StateUnderflowError.
func (s *StateStack) Restore() {
	if len(s.states) <= 1 {
		return
	}
	s.states = s.states[:len(s.states)-1]
}

func (s *StateStack) Depth() int { return len(s.states) }
