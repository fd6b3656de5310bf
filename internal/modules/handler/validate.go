package handler

import (
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{6,19}$`)

// stateCodes are the two-letter codes offered by the state select.
var stateCodes = map[string]struct{}{}

func init() {
	for _, s := range strings.Fields(`AL AK AZ AR CA CO CT DE DC FL GA HI ID IL IN IA KS KY LA ME MT NE NV NH NJ
		NM NY NC ND OH OK OR MD MA MI MN MS MO PA RI SC SD TN TX UT VT VA WA WV WI WY`) {
		stateCodes[s] = struct{}{}
	}
}

// StateCodes returns the selectable states in display order.
func StateCodes() []string {
	out := make([]string, 0, len(stateCodes))
	for s := range stateCodes {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

var registerOnce sync.Once

// RegisterValidators adds the form validators to gin's default validator.
// It is safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("statecode", func(fl validator.FieldLevel) bool {
			_, ok := stateCodes[strings.ToUpper(fl.Field().String())]
			return ok
		})
	})
}
