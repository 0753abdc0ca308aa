// Package harness drives the fuzzing session: the per-iteration runner that
// shapes inputs and fault-isolates target invocations, and the controller
// that loops it and produces the end-of-run artifacts.
package harness

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"rattle/internal/gen"
	"rattle/internal/record"
	"rattle/internal/target"
	"rattle/internal/trace"
)

// Runner executes every resolved target once per iteration. Targets are
// independently fault-isolated: one failing never prevents the others from
// being tried in the same iteration.
type Runner struct {
	Table  target.Table
	Gen    *gen.Source
	Rec    *record.Recorder
	Tracer trace.Tracer
}

// RunIteration runs all resolved targets for iteration index i.
func (r *Runner) RunIteration(i int) {
	for _, cap := range target.Capabilities {
		res := r.Table[cap]
		if res == nil {
			continue
		}
		r.runTarget(i, cap, res)
	}
}

func (r *Runner) runTarget(i int, cap target.Capability, res *target.Resolved) {
	in, cleanup, err := r.shapeInput(cap)
	if err != nil {
		// generator trouble (temp dir unavailable etc.) is not a target
		// failure; skip this target for the iteration
		trace.Debug(r.Tracer, "input", err.Error(), map[string]string{"capability": string(cap)})
		return
	}
	if cleanup != nil {
		defer cleanup()
	}

	invokeErr := invoke(res.Handle, in)
	if invokeErr == nil {
		return
	}

	// A class target may reject the first input shape; retry exactly once
	// with the alternate shape before treating anything further as genuine.
	if res.Handle.Kind == target.KindClass && errors.Is(invokeErr, target.ErrShapeMismatch) {
		alt, altCleanup, altErr := r.alternateInput()
		if altErr != nil {
			trace.Debug(r.Tracer, "input", altErr.Error(), map[string]string{"capability": string(cap)})
			return
		}
		if altCleanup != nil {
			defer altCleanup()
		}
		in = alt
		invokeErr = invoke(res.Handle, in)
		if invokeErr == nil {
			return
		}
	}

	r.Rec.Record(record.Failure{
		Iteration: i,
		Time:      time.Now(),
		Module:    res.Source.Namespace,
		Function:  res.Source.Attr,
		Args:      []string{in.Describe()},
		Error:     invokeErr.Error(),
		Traceback: tracebackOf(invokeErr),
	})
}

// shapeInput builds the first-choice input for a capability. The returned
// cleanup removes any file materialized for this single invocation.
func (r *Runner) shapeInput(cap target.Capability) (target.Input, func(), error) {
	switch cap {
	case target.CapParser:
		// sometimes a real file with pseudo-source, sometimes a missing path
		if r.Gen.Intn(2) == 0 {
			p, err := r.Gen.Path(gen.PathOptions{Ext: ".py", Materialize: true, Content: r.Gen.Pseudocode(40)})
			if err != nil {
				return target.Input{}, nil, err
			}
			return target.PathInput(p), func() { _ = os.Remove(p) }, nil
		}
		p, err := r.Gen.Path(gen.PathOptions{Ext: ".py"})
		if err != nil {
			return target.Input{}, nil, err
		}
		return target.PathInput(p), nil, nil
	case target.CapLinter:
		return target.TextInput(r.Gen.Pseudocode(30)), nil, nil
	case target.CapFrequency:
		return target.BytesInput(r.Gen.ByteText(10 + r.Gen.Intn(491))), nil, nil
	case target.CapReport:
		return target.StatsInput(r.Gen.Stats()), nil, nil
	case target.CapMiner:
		p, err := r.Gen.Path(gen.PathOptions{})
		if err != nil {
			return target.Input{}, nil, err
		}
		return target.PathInput(p), nil, nil
	default:
		return target.Input{}, nil, fmt.Errorf("no input shape for capability %q", cap)
	}
}

// alternateInput is the single permitted retry shape: a materialized source
// file instead of raw text.
func (r *Runner) alternateInput() (target.Input, func(), error) {
	p, err := r.Gen.Path(gen.PathOptions{Ext: ".py", Materialize: true, Content: r.Gen.Pseudocode(10)})
	if err != nil {
		return target.Input{}, nil, err
	}
	return target.PathInput(p), func() { _ = os.Remove(p) }, nil
}

// invoke calls the handle with one input inside a panic boundary.
func invoke(h target.Handle, in target.Input) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &panicError{value: p, stack: debug.Stack()}
		}
	}()
	switch h.Kind {
	case target.KindClass:
		return h.New().Invoke(h.Method, in)
	default:
		return h.Func(in)
	}
}

// panicError converts a recovered panic into an error that carries the stack
// captured at the recovery point.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// tracebackOf renders the full stack for panics and the wrapped error chain
// for plain errors.
func tracebackOf(err error) string {
	var pe *panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return fmt.Sprintf("%+v", err)
}
