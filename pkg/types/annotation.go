package types

// AnnotationID is assigned by the drawing engine, monotonically increasing
// within one chart mount. Insertion order is z-order and undo order.
type AnnotationID int64

type AnnotationType string

const (
	AnnotationHorizontal AnnotationType = "horizontal"
	AnnotationVertical   AnnotationType = "vertical"
	AnnotationTrendLine  AnnotationType = "trendline"
)

// Point is a chart coordinate: unix seconds on the time axis, price on the
// value axis.
type Point struct {
	Time  int64   `json:"time"`
	Price float64 `json:"price"`
}

// Annotation is a finalized user drawing. The concrete types form a closed
// set; consumers switch exhaustively on the variant.
type Annotation interface {
	ID() AnnotationID
	Type() AnnotationType
	Color() string
}

type annotationMeta struct {
	id    AnnotationID
	color string
}

func (m annotationMeta) ID() AnnotationID { return m.id }
func (m annotationMeta) Color() string    { return m.color }

// HorizontalLine marks a price level across the whole chart width.
type HorizontalLine struct {
	annotationMeta

	Price float64
}

func NewHorizontalLine(id AnnotationID, price float64, color string) HorizontalLine {
	return HorizontalLine{annotationMeta: annotationMeta{id: id, color: color}, Price: price}
}

func (HorizontalLine) Type() AnnotationType { return AnnotationHorizontal }

// VerticalLine marks a point in time across the whole chart height.
type VerticalLine struct {
	annotationMeta

	Time int64
}

func NewVerticalLine(id AnnotationID, t int64, color string) VerticalLine {
	return VerticalLine{annotationMeta: annotationMeta{id: id, color: color}, Time: t}
}

func (VerticalLine) Type() AnnotationType { return AnnotationVertical }

// TrendLine is a segment between two chart points.
type TrendLine struct {
	annotationMeta

	P1 Point
	P2 Point
}

func NewTrendLine(id AnnotationID, p1, p2 Point, color string) TrendLine {
	return TrendLine{annotationMeta: annotationMeta{id: id, color: color}, P1: p1, P2: p2}
}

func (TrendLine) Type() AnnotationType { return AnnotationTrendLine }
