package form

import (
	"github.com/go-drift/formbind/pkg/errors"
	"github.com/go-drift/formbind/pkg/focus"
)

// Decoration carries display metadata for a field. The binding layer treats
// it as opaque except for ErrorText, which makes Validate fail while present.
type Decoration struct {
	// Label is shown alongside the field.
	Label string
	// Placeholder text shown when the field is empty.
	Placeholder string
	// HelperText is shown below the field when there is no error.
	HelperText string
	// ErrorText is an externally supplied error message. A non-empty
	// ErrorText fails validation until the supplier clears it.
	ErrorText string
}

// Field describes one named input bound to a form.
//
// Name and Builder are required; [New] rejects configurations missing
// either. All other entries are optional.
type Field[T any] struct {
	// Name is the field's unique key within a form.
	Name string

	// InitialValue is the field's starting value. When nil, the value is
	// resolved from the controller's initial values for Name, falling back
	// to the zero value of T.
	InitialValue *T

	// Builder renders the field using its state. The host rendering system
	// invokes it whenever the field must redraw.
	Builder func(*FieldState[T]) any

	// Validator returns an error message or empty string if valid.
	Validator func(T) string

	// Transformer converts the current value into the committed value on
	// save. When nil, the current value is committed unchanged.
	Transformer func(T) any

	// OnChanged is called when the field value changes.
	OnChanged func(T)

	// OnSaved is called with the current (untransformed) value when the
	// field is saved.
	OnSaved func(T)

	// OnReset is called after the field value is restored on reset.
	OnReset func()

	// AutoValidate runs the validator whenever the value changes.
	AutoValidate bool

	// Disabled excludes the field from validation and save.
	Disabled bool

	// ReadOnly marks the field read-only. The effective flag also honors
	// the controller's global read-only flag at bind time.
	ReadOnly bool

	// Decoration carries display metadata.
	Decoration Decoration

	// FocusNode is an externally supplied focus handle. The field never
	// owns or releases it. When nil, a handle is created lazily on the
	// first focus request and released at teardown.
	FocusNode *focus.Node
}

// New validates the configuration and returns an unbound FieldState.
// It fails with a *errors.FormError of KindConfig when Name or Builder
// is missing.
func New[T any](cfg Field[T]) (*FieldState[T], error) {
	if cfg.Name == "" {
		return nil, configError(cfg.Name, "Name")
	}
	if cfg.Builder == nil {
		return nil, configError(cfg.Name, "Builder")
	}
	return &FieldState[T]{cfg: cfg}, nil
}

func configError(field, missing string) error {
	return &errors.FormError{
		Op:    "form.New",
		Kind:  errors.KindConfig,
		Field: field,
		Err:   &errors.ConfigError{Field: field, Missing: missing},
	}
}
