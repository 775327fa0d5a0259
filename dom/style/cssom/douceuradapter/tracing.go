package douceuradapter

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'tyse.frame.tree'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.frame.tree")
}
