// Package form provides named field bindings over a shared form controller.
//
// This package is the state layer of a form: each input is described by an
// immutable [Field] configuration and driven at runtime through a
// [FieldState], which registers itself under its name with a [Controller].
// The controller owns the committed-value map, the initial-value map, and
// the global read-only flag; fields own their current value, dirty flag,
// validation error text, and (optionally) a lazily created focus handle.
//
// The package is render-agnostic. The host UI supplies a Builder callback
// that turns a FieldState into whatever its widget tree needs, and may hook
// render notifications to schedule rebuilds. All state mutations are applied
// synchronously before any render notification fires, so observers never
// read a stale value after a change returns.
//
// # Lifecycle
//
// A field moves through three phases: unbound after [New], bound (pristine,
// then dirty after the first edit) after [FieldState.Bind], and disposed
// after [FieldState.Teardown]. Disposal is terminal; a torn-down field
// rejects further edits and saves.
//
// Example:
//
//	ctrl := form.NewController()
//	age, err := form.New(form.Field[string]{
//	    Name:        "age",
//	    Validator:   form.Numeric("must be a number"),
//	    Transformer: func(v string) any { n, _ := strconv.Atoi(v); return n },
//	    Builder:     func(s *form.FieldState[string]) any { return renderInput(s) },
//	})
//	if err != nil {
//	    // missing name or builder
//	}
//	age.Bind(ctrl)
//	age.DidChange("25")
//	if ctrl.Validate() {
//	    ctrl.Save()
//	}
package form
