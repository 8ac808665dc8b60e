package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AmbitiousRealism2025/codename-agent-smith-sub000/types"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks catalog authoring rules: at least one template, unique
// slug ids, required names, non-nil capability tags and use cases.
func Validate(templates []types.AgentTemplate) error {
	if len(templates) == 0 {
		return types.NewError(types.ErrInvalidCatalog, "catalog has no templates")
	}

	seen := make(map[string]bool, len(templates))
	for i := range templates {
		t := &templates[i]
		if err := CheckTemplate(t); err != nil {
			return err
		}
		if err := validate.Struct(t); err != nil {
			return types.NewError(types.ErrInvalidCatalog,
				fmt.Sprintf("template %d (%q) is invalid: %s", i, t.ID, describe(err)))
		}
		if seen[t.ID] {
			return types.NewError(types.ErrInvalidCatalog, fmt.Sprintf("duplicate template id %q", t.ID))
		}
		seen[t.ID] = true
	}
	return nil
}

// CheckTemplate reports templates whose list fields were never set.
// An empty list is fine; a nil one means the entry was authored incorrectly.
func CheckTemplate(t *types.AgentTemplate) error {
	switch {
	case t == nil:
		return types.NewError(types.ErrMalformedTemplate, "template is nil")
	case t.CapabilityTags == nil:
		return types.NewError(types.ErrMalformedTemplate,
			fmt.Sprintf("template %q: capability_tags is not set", t.ID))
	case t.IdealFor == nil:
		return types.NewError(types.ErrMalformedTemplate,
			fmt.Sprintf("template %q: ideal_for is not set", t.ID))
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s'", e.StructNamespace(), e.Tag()))
	}
	return strings.Join(msgs, "; ")
}
