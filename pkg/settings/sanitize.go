package settings

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-aspectplus/pkg/model"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// LabelSanitizer strips unsafe markup from option labels and help text, which
// hosts render as HTML. Text without markup is left untouched.
func LabelSanitizer() model.Decorator {
	return model.DecoratorFunc(func(_ string, spec *model.OptionSpec) error {
		if spec == nil {
			return nil
		}
		spec.Label = sanitizeMarkup(spec.Label)
		spec.Help = sanitizeMarkup(spec.Help)
		return nil
	})
}

func sanitizeMarkup(raw string) string {
	if !strings.Contains(raw, "<") {
		return raw
	}
	return strings.TrimSpace(labelSanitizer().Sanitize(raw))
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "strong", "i", "em", "code", "br")
		labelPolicy = policy
	})
	return labelPolicy
}
