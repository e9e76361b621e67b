package form_test

import (
	"fmt"
	"strconv"

	"github.com/go-drift/formbind/pkg/form"
)

// This example wires a single field into a controller, edits it like a
// user would, and saves the transformed value back into the form.
func ExampleFieldState() {
	ctrl := form.NewController()

	age, err := form.New(form.Field[string]{
		Name:        "age",
		Validator:   form.Numeric("must be a number"),
		Transformer: func(v string) any { n, _ := strconv.Atoi(v); return n },
		Builder: func(s *form.FieldState[string]) any {
			return fmt.Sprintf("<input name=%q value=%q>", s.Name(), s.Value())
		},
	})
	if err != nil {
		panic(err)
	}
	age.Bind(ctrl)

	age.DidChange("25")
	fmt.Println("dirty:", age.Dirty())

	if ctrl.Validate() {
		ctrl.Save()
	}
	committed, _ := ctrl.CommittedValue("age")
	fmt.Printf("committed: %v (%T)\n", committed, committed)

	age.Teardown()

	// Output:
	// dirty: true
	// committed: 25 (int)
}

// This example seeds initial values on the controller and lets fields
// without an explicit initial value pick them up when they bind.
func ExampleController_initialValues() {
	ctrl := form.NewController()
	ctrl.SetInitialValues(map[string]any{"country": "Norway"})

	country, err := form.New(form.Field[string]{
		Name:    "country",
		Builder: func(s *form.FieldState[string]) any { return s.Value() },
	})
	if err != nil {
		panic(err)
	}
	country.Bind(ctrl)

	fmt.Println(country.Value())

	// Output:
	// Norway
}
