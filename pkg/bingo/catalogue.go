package bingo

// Pattern is one entry in the reference catalogue: a response key and the
// shape its value must have to count as a match.
type Pattern struct {
	Name  string
	Shape Shape
}

// catalogue is the fixed reference table of API error conventions. Order
// matters only for determinism: Check reports matches in this order.
var catalogue = []Pattern{
	{Name: "error", Shape: TypeShape{Kind: KindString}},
	{Name: "error_message", Shape: TypeShape{Kind: KindString}},
	{Name: "err", Shape: TypeShape{Kind: KindString}},
	{Name: "message", Shape: TypeShape{Kind: KindString}},
	{Name: "status", Shape: LiteralShape{Value: "error"}},
	{Name: "result", Shape: LiteralShape{Value: "failure"}},
	{Name: "success", Shape: LiteralShape{Value: false}},
	{Name: "code", Shape: LiteralShape{Value: float64(500)}},
	{Name: "data", Shape: LiteralShape{Value: nil}},
	{Name: "details", Shape: LiteralShape{Value: ""}},
	{Name: "trace", Shape: LiteralShape{Value: "stack"}},
	{Name: "fault", Shape: NestedFaultShape{}},
}

// Catalogue returns a copy of the reference table. The table itself is
// fixed for the lifetime of the process.
func Catalogue() []Pattern {
	out := make([]Pattern, len(catalogue))
	copy(out, catalogue)
	return out
}
