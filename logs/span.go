package logs

// Span identifies one logical operation across log records. Records emitted
// with a context carrying a Span get a logs.span attribute.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
