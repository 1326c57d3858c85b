package persona

import (
	"fmt"
	"strings"
)

// Validate checks that p is complete enough to hand to the framework.
func Validate(p Persona) error {
	if strings.TrimSpace(p.Name) == "" {
		return &FieldError{Field: "name", Reason: "is required"}
	}

	if strings.TrimSpace(p.System) == "" {
		return &FieldError{Field: "system", Reason: "is required"}
	}

	if err := validateLines("bio", p.Bio); err != nil {
		return err
	}
	if err := validateLines("knowledge", p.Knowledge); err != nil {
		return err
	}
	if err := validateLines("style.all", p.Style.All); err != nil {
		return err
	}
	if err := validateLines("style.chat", p.Style.Chat); err != nil {
		return err
	}

	seen := make(map[string]bool, len(p.Topics))
	for i, topic := range p.Topics {
		key := strings.ToLower(strings.TrimSpace(topic))
		if key == "" {
			return &FieldError{Field: fmt.Sprintf("topics[%d]", i), Reason: "is blank"}
		}
		if seen[key] {
			return &FieldError{Field: fmt.Sprintf("topics[%d]", i), Reason: fmt.Sprintf("duplicates %q", topic)}
		}
		seen[key] = true
	}

	for i, conv := range p.Examples {
		if len(conv) == 0 {
			return &FieldError{Field: fmt.Sprintf("examples[%d]", i), Reason: "has no messages"}
		}
		for j, m := range conv {
			if strings.TrimSpace(m.Speaker) == "" {
				return &FieldError{Field: fmt.Sprintf("examples[%d].messages[%d].name", i, j), Reason: "is required"}
			}
			if strings.TrimSpace(m.Text) == "" {
				return &FieldError{Field: fmt.Sprintf("examples[%d].messages[%d].text", i, j), Reason: "is required"}
			}
		}
	}

	return nil
}

func validateLines(field string, lines []string) error {
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			return &FieldError{Field: fmt.Sprintf("%s[%d]", field, i), Reason: "is blank"}
		}
	}
	return nil
}

type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("persona %s %s", e.Field, e.Reason)
}
