package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// violationMessages maps "Field.tag" of a failed validator rule to the text
// sent back to the caller.
type violationMessages map[string]string

// message renders the first failed rule, or fallback when the rule is not listed.
func (m violationMessages) message(err error, fallback string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := m[verrs[0].Field()+"."+verrs[0].Tag()]; ok {
			return msg
		}
	}
	return fallback
}
