package form

import "github.com/go-drift/formbind/pkg/focus"

// FieldState is the live, observable instance of one [Field]. It holds the
// current value, dirty flag, effective read-only flag, validation error
// text, and the field's focus handle.
//
// A FieldState binds to at most one [Controller] for its entire lifetime:
// it registers under its name in [FieldState.Bind] and deregisters in
// [FieldState.Teardown]. All methods must be called from the host's UI
// thread; the single-threaded event model is the concurrency contract.
type FieldState[T any] struct {
	cfg        Field[T]
	controller *Controller

	value     T
	initial   T
	dirty     bool
	readOnly  bool
	errorText string

	ownedFocus *focus.Node
	renderHook func()
	bound      bool
	disposed   bool
}

// Bind resolves the field's initial value, registers it with ctrl, and
// captures the effective read-only flag. Initial value precedence is the
// explicit config value, then the controller's stored initial value for
// this name, then the zero value of T.
//
// A nil ctrl leaves the field standalone: registration and committed-value
// writes become no-ops while validation and local state keep working.
// Bind is one-shot; calls after the first, or after teardown, are no-ops.
//
// The read-only flag is fixed here and not re-derived if the controller's
// global flag changes later.
func (s *FieldState[T]) Bind(ctrl *Controller) {
	if s.bound || s.disposed {
		return
	}
	s.bound = true
	s.controller = ctrl

	var initial T
	switch {
	case s.cfg.InitialValue != nil:
		initial = *s.cfg.InitialValue
	case ctrl != nil:
		if raw, ok := ctrl.InitialValue(s.cfg.Name); ok {
			if typed, ok := raw.(T); ok {
				initial = typed
			}
		}
	}
	s.initial = initial
	s.SetValue(initial)

	s.readOnly = s.cfg.ReadOnly
	if ctrl != nil {
		s.readOnly = s.readOnly || ctrl.GlobalReadOnly()
		ctrl.RegisterField(s.cfg.Name, s)
	}
}

// Name returns the field's unique key.
func (s *FieldState[T]) Name() string {
	return s.cfg.Name
}

// FieldName implements [BoundField].
func (s *FieldState[T]) FieldName() string {
	return s.cfg.Name
}

// Value returns the current value.
func (s *FieldState[T]) Value() T {
	return s.value
}

// InitialValue returns the resolved initial value.
func (s *FieldState[T]) InitialValue() T {
	return s.initial
}

// Dirty reports whether the value changed since initialization. Reset
// restores the value but deliberately leaves this flag set.
func (s *FieldState[T]) Dirty() bool {
	return s.dirty
}

// Pristine reports the inverse of Dirty.
func (s *FieldState[T]) Pristine() bool {
	return !s.dirty
}

// ReadOnly returns the effective read-only flag captured at bind time.
func (s *FieldState[T]) ReadOnly() bool {
	return s.readOnly
}

// ErrorText returns the current validation error message, or the externally
// supplied decoration error when no validator message is set.
func (s *FieldState[T]) ErrorText() string {
	if s.errorText != "" {
		return s.errorText
	}
	return s.cfg.Decoration.ErrorText
}

// HasError reports whether the field currently surfaces an error.
func (s *FieldState[T]) HasError() bool {
	return s.ErrorText() != ""
}

// Decoration returns the field's display metadata.
func (s *FieldState[T]) Decoration() Decoration {
	return s.cfg.Decoration
}

// Disposed reports whether Teardown has run.
func (s *FieldState[T]) Disposed() bool {
	return s.disposed
}

// SetValue assigns the value without marking the field dirty and without
// firing callbacks. It is the low-level path used for programmatic seeding
// and reset.
func (s *FieldState[T]) SetValue(v T) {
	if s.disposed {
		return
	}
	s.value = v
}

// DidChange records a user-driven edit: it marks the field dirty, assigns
// the value, invokes OnChanged once, notifies the controller, and schedules
// a re-render. When field or form autovalidation is enabled, the validator
// runs as part of the change.
func (s *FieldState[T]) DidChange(v T) {
	if s.disposed {
		return
	}
	s.dirty = true
	s.value = v
	if s.cfg.OnChanged != nil {
		s.cfg.OnChanged(v)
	}
	if s.controller != nil {
		s.controller.NotifyChanged()
	}

	if s.cfg.AutoValidate || (s.controller != nil && s.controller.autoValidate) {
		s.Validate()
		return
	}
	s.markNeedsRender()
}

// PatchValue applies a programmatic value update that behaves like user
// input: it delegates to DidChange, so it marks the field dirty and fires
// OnChanged.
func (s *FieldState[T]) PatchValue(v T) {
	s.DidChange(v)
}

// Save commits the field's value to the controller: the transformed value
// when a Transformer is configured, the current value otherwise. OnSaved
// receives the untransformed value. Disabled and disposed fields skip the
// save; without a controller the committed write is a no-op.
func (s *FieldState[T]) Save() {
	if s.disposed || s.cfg.Disabled {
		return
	}
	if s.cfg.OnSaved != nil {
		s.cfg.OnSaved(s.value)
	}
	committed := any(s.value)
	if s.cfg.Transformer != nil {
		committed = s.cfg.Transformer(s.value)
	}
	if s.controller != nil {
		s.controller.SetCommittedValue(s.cfg.Name, committed)
	}
}

// Reset restores the value to the resolved initial value via SetValue,
// clears any validator error, and invokes OnReset. It does not clear the
// dirty flag.
func (s *FieldState[T]) Reset() {
	if s.disposed {
		return
	}
	s.SetValue(s.initial)
	s.errorText = ""
	if s.cfg.OnReset != nil {
		s.cfg.OnReset()
	}
	s.markNeedsRender()
}

// Validate runs the configured validator against the current value. It
// returns true only when the validator accepts the value and no external
// decoration error is present. Disabled fields always validate clean;
// torn-down fields fail without mutating state. Validation never mutates
// the value or dirty state.
func (s *FieldState[T]) Validate() bool {
	if s.disposed {
		return false
	}
	valid := true
	if s.cfg.Disabled {
		s.errorText = ""
	} else {
		if s.cfg.Validator != nil {
			if message := s.cfg.Validator(s.value); message != "" {
				s.errorText = message
				valid = false
			} else {
				s.errorText = ""
			}
		} else {
			s.errorText = ""
		}
		if s.cfg.Decoration.ErrorText != "" {
			valid = false
		}
	}
	s.markNeedsRender()
	return valid
}

// RequestFocus directs the focus system at this field's handle, creating
// an owned handle on first use when none was supplied.
func (s *FieldState[T]) RequestFocus() {
	if s.disposed {
		return
	}
	s.FocusNode().RequestFocus()
}

// FocusNode returns the effective focus handle: the externally supplied
// node when configured, otherwise a lazily created node owned by this
// field. Returns nil after teardown when no external node exists.
func (s *FieldState[T]) FocusNode() *focus.Node {
	if s.cfg.FocusNode != nil {
		return s.cfg.FocusNode
	}
	if s.ownedFocus == nil && !s.disposed {
		s.ownedFocus = focus.NewNode(s.cfg.Name)
	}
	return s.ownedFocus
}

// Render invokes the configured builder with this state.
func (s *FieldState[T]) Render() any {
	return s.cfg.Builder(s)
}

// OnRenderNeeded registers the host's rebuild hook. State mutations are
// always applied before the hook fires.
func (s *FieldState[T]) OnRenderNeeded(fn func()) {
	s.renderHook = fn
}

// Teardown deregisters the field from its controller and releases the
// owned focus handle, if one was created. It is idempotent; a torn-down
// field ignores further edits, saves, and focus requests.
//
// When a replacement field has already re-registered under the same name
// (hosts often init the new instance before disposing the old), the stale
// instance leaves the replacement's registration intact.
func (s *FieldState[T]) Teardown() {
	if s.disposed {
		return
	}
	s.disposed = true
	if s.controller != nil {
		if s.controller.Field(s.cfg.Name) == BoundField(s) {
			s.controller.UnregisterField(s.cfg.Name)
		}
		s.controller = nil
	}
	if s.ownedFocus != nil {
		focus.GetManager().Detach(s.ownedFocus)
		s.ownedFocus = nil
	}
}

func (s *FieldState[T]) markNeedsRender() {
	if s.disposed || s.renderHook == nil {
		return
	}
	s.renderHook()
}
