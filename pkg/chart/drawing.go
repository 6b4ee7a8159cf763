package chart

import (
	log "github.com/sirupsen/logrus"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

type Tool string

const (
	ToolHorizontal Tool = "horizontal"
	ToolVertical   Tool = "vertical"
	ToolTrendLine  Tool = "trendline"
)

type DrawingState string

const (
	StateIdle            DrawingState = "idle"
	StateArmedHorizontal DrawingState = "armed-horizontal"
	StateArmedVertical   DrawingState = "armed-vertical"
	StateArmedTrendFirst DrawingState = "armed-trend-first"

	// StateArmedTrendSecond holds the first trend point in the session and
	// waits for the closing click.
	StateArmedTrendSecond DrawingState = "armed-trend-second"
)

var toolStates = map[Tool]DrawingState{
	ToolHorizontal: StateArmedHorizontal,
	ToolVertical:   StateArmedVertical,
	ToolTrendLine:  StateArmedTrendFirst,
}

var toolColors = map[Tool]string{
	ToolHorizontal: "#2962ff",
	ToolVertical:   "#787b86",
	ToolTrendLine:  "#f7525f",
}

func stateTool(s DrawingState) (Tool, bool) {
	switch s {
	case StateArmedHorizontal:
		return ToolHorizontal, true
	case StateArmedVertical:
		return ToolVertical, true
	case StateArmedTrendFirst, StateArmedTrendSecond:
		return ToolTrendLine, true
	}
	return "", false
}

// DrawingEngine drives annotation creation: tool selection arms a state,
// clicks resolve through the coordinate mapper into finalized annotations.
// A click whose mapping fails is a no-op that keeps the current state.
//
//go:generate callbackgen -type DrawingEngine
type DrawingEngine struct {
	state      DrawingState
	firstPoint *types.Point

	annotations []types.Annotation
	nextID      types.AnnotationID

	mapper *CoordinateMapper

	stateChangedCallbacks []func(state DrawingState)

	annotationsChangedCallbacks []func(annotations []types.Annotation)
}

func NewDrawingEngine() *DrawingEngine {
	return &DrawingEngine{
		state:  StateIdle,
		nextID: 1,
	}
}

// SetMapper swaps in the mapper derived from the current series and
// viewport. A nil mapper makes every click a no-op.
func (e *DrawingEngine) SetMapper(m *CoordinateMapper) {
	e.mapper = m
}

func (e *DrawingEngine) State() DrawingState {
	return e.state
}

// Session returns the pending first trend point while one is held.
func (e *DrawingEngine) Session() (types.Point, bool) {
	if e.firstPoint == nil {
		return types.Point{}, false
	}
	return *e.firstPoint, true
}

// Annotations returns the store in insertion order, which is both z-order
// and undo order.
func (e *DrawingEngine) Annotations() []types.Annotation {
	out := make([]types.Annotation, len(e.annotations))
	copy(out, e.annotations)
	return out
}

// SelectTool arms the drawing state for the given tool. Selecting the tool
// that is already armed toggles it off; switching tools drops any pending
// session.
func (e *DrawingEngine) SelectTool(tool Tool) {
	next, ok := toolStates[tool]
	if !ok {
		log.Warnf("[drawing]: unknown tool %q", tool)
		return
	}

	if current, armed := stateTool(e.state); armed && current == tool {
		e.clearSession()
		e.setState(StateIdle)
		return
	}

	e.clearSession()
	e.setState(next)
}

// Click feeds a chart-local pixel position into the state machine.
func (e *DrawingEngine) Click(x, y float64) {
	if e.mapper == nil {
		return
	}

	switch e.state {
	case StateArmedHorizontal:
		price, ok := e.mapper.PixelToPrice(y)
		if !ok {
			return
		}
		e.append(types.NewHorizontalLine(e.takeID(), price, toolColors[ToolHorizontal]))
		e.setState(StateIdle)

	case StateArmedVertical:
		t, ok := e.mapper.PixelToTime(x)
		if !ok {
			return
		}
		e.append(types.NewVerticalLine(e.takeID(), t, toolColors[ToolVertical]))
		e.setState(StateIdle)

	case StateArmedTrendFirst:
		point, ok := e.mapper.PixelToPoint(x, y)
		if !ok {
			return
		}
		e.firstPoint = &point
		e.setState(StateArmedTrendSecond)

	case StateArmedTrendSecond:
		point, ok := e.mapper.PixelToPoint(x, y)
		if !ok {
			return
		}
		e.append(types.NewTrendLine(e.takeID(), *e.firstPoint, point, toolColors[ToolTrendLine]))
		e.clearSession()
		e.setState(StateIdle)
	}
}

// Escape cancels any armed state and drops the session.
func (e *DrawingEngine) Escape() {
	if e.state == StateIdle {
		return
	}
	e.clearSession()
	e.setState(StateIdle)
}

// ResetSession drops the mid-entry session, used on timeframe changes. The
// annotation store survives.
func (e *DrawingEngine) ResetSession() {
	e.clearSession()
	if e.state != StateIdle {
		e.setState(StateIdle)
	}
}

// DeleteLast removes the most recent annotation; no-op on an empty store.
// The drawing state is unchanged.
func (e *DrawingEngine) DeleteLast() {
	if len(e.annotations) == 0 {
		return
	}
	e.annotations = e.annotations[:len(e.annotations)-1]
	e.EmitAnnotationsChanged(e.Annotations())
}

// ClearAll removes every annotation, drops the session, and leaves any
// armed state.
func (e *DrawingEngine) ClearAll() {
	changed := len(e.annotations) > 0
	e.annotations = nil
	e.clearSession()
	if e.state != StateIdle {
		e.setState(StateIdle)
	}
	if changed {
		e.EmitAnnotationsChanged(e.Annotations())
	}
}

func (e *DrawingEngine) append(a types.Annotation) {
	e.annotations = append(e.annotations, a)
	e.EmitAnnotationsChanged(e.Annotations())
}

func (e *DrawingEngine) takeID() types.AnnotationID {
	id := e.nextID
	e.nextID++
	return id
}

func (e *DrawingEngine) clearSession() {
	e.firstPoint = nil
}

func (e *DrawingEngine) setState(s DrawingState) {
	if e.state == s {
		return
	}
	log.Debugf("[drawing]: transiting state from %s -> %s", e.state, s)
	e.state = s
	e.EmitStateChanged(s)
}
