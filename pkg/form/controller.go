package form

import "sort"

// BoundField is the per-name view a [Controller] keeps of a registered
// field. *FieldState[T] implements it for every T.
type BoundField interface {
	FieldName() string
	Validate() bool
	Save()
	Reset()
}

// Controller is the aggregate owner of a form: the name-keyed field
// registry, the initial-value and committed-value maps, and the global
// read-only flag. Fields register themselves on bind and deregister on
// teardown; each field touches only its own key.
//
// A generation counter increments on field changes, validation, and reset
// so hosts can decide when dependent UI must rebuild.
type Controller struct {
	fields         map[string]BoundField
	initialValues  map[string]any
	committed      map[string]any
	globalReadOnly bool
	autoValidate   bool
	onChanged      func()
	renderHook     func()
	generation     int
}

// NewController returns an empty form controller.
func NewController() *Controller {
	return &Controller{
		fields:        make(map[string]BoundField),
		initialValues: make(map[string]any),
		committed:     make(map[string]any),
	}
}

// RegisterField registers a field under name, replacing any previous
// registration for the same name.
func (c *Controller) RegisterField(name string, field BoundField) {
	if field == nil {
		return
	}
	c.fields[name] = field
}

// UnregisterField removes the registration for name.
func (c *Controller) UnregisterField(name string) {
	delete(c.fields, name)
}

// Field returns the registered field for name, or nil.
func (c *Controller) Field(name string) BoundField {
	return c.fields[name]
}

// Len returns the number of registered fields.
func (c *Controller) Len() int {
	return len(c.fields)
}

// Names returns the registered field names in sorted order.
func (c *Controller) Names() []string {
	names := make([]string, 0, len(c.fields))
	for name := range c.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GlobalReadOnly reports the form-wide read-only flag.
func (c *Controller) GlobalReadOnly() bool {
	return c.globalReadOnly
}

// SetGlobalReadOnly sets the form-wide read-only flag. Fields capture the
// flag when they bind; changing it later does not affect already-bound
// fields.
func (c *Controller) SetGlobalReadOnly(readOnly bool) {
	c.globalReadOnly = readOnly
}

// SetAutoValidate enables per-field validation whenever any field changes.
// As with the field-level flag, this validates only the changing field, so
// untouched fields never show premature errors.
func (c *Controller) SetAutoValidate(autoValidate bool) {
	c.autoValidate = autoValidate
}

// SetOnChanged registers a callback invoked when any field changes.
func (c *Controller) SetOnChanged(fn func()) {
	c.onChanged = fn
}

// OnRenderNeeded registers the host's rebuild hook, fired after every
// generation bump.
func (c *Controller) OnRenderNeeded(fn func()) {
	c.renderHook = fn
}

// Generation returns the current rebuild generation.
func (c *Controller) Generation() int {
	return c.generation
}

// SetInitialValue stores an initial value for name, consulted by fields
// without an explicit initial value when they bind.
func (c *Controller) SetInitialValue(name string, value any) {
	c.initialValues[name] = value
}

// SetInitialValues stores initial values for multiple names.
func (c *Controller) SetInitialValues(values map[string]any) {
	for name, value := range values {
		c.initialValues[name] = value
	}
}

// InitialValue returns the stored initial value for name.
func (c *Controller) InitialValue(name string) (any, bool) {
	value, ok := c.initialValues[name]
	return value, ok
}

// SetCommittedValue writes a committed value under name. Fields call this
// from Save with their (possibly transformed) value.
func (c *Controller) SetCommittedValue(name string, value any) {
	c.committed[name] = value
}

// CommittedValue returns the committed value for name.
func (c *Controller) CommittedValue(name string) (any, bool) {
	value, ok := c.committed[name]
	return value, ok
}

// CommittedValues returns a copy of the committed-value map.
func (c *Controller) CommittedValues() map[string]any {
	out := make(map[string]any, len(c.committed))
	for name, value := range c.committed {
		out[name] = value
	}
	return out
}

// Validate runs validators on all registered fields and reports whether
// every field passed.
func (c *Controller) Validate() bool {
	valid := true
	for _, field := range c.fields {
		if !field.Validate() {
			valid = false
		}
	}
	c.bumpGeneration()
	return valid
}

// Save commits all registered fields.
func (c *Controller) Save() {
	for _, field := range c.fields {
		field.Save()
	}
}

// Reset restores all registered fields to their initial values.
func (c *Controller) Reset() {
	for _, field := range c.fields {
		field.Reset()
	}
	c.bumpGeneration()
}

// NotifyChanged informs the controller that a field changed. The changing
// field validates itself when autovalidation is enabled; the controller
// only fans out the change notification and bumps the generation.
func (c *Controller) NotifyChanged() {
	if c.onChanged != nil {
		c.onChanged()
	}
	c.bumpGeneration()
}

func (c *Controller) bumpGeneration() {
	c.generation++
	if c.renderHook != nil {
		c.renderHook()
	}
}
