package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/mrraghuvarun/talent/internal/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct validates any request type carrying `validate` tags and converts the
// first failure into a field-scoped validation error.
func Struct(v any) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.ValidationField(fe.Field(), fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag()))
	}
	return apperrors.Wrap(err, apperrors.ErrCodeValidation, "validate request")
}

// Validate checks the invite email.
func (r InviteRequest) Validate() error { return Struct(r) }

// Validate checks that the target role is one of the two assignable roles.
func (r RoleChangeRequest) Validate() error { return Struct(r) }

// Validate checks the personal fields.
func (p PersonalDetails) Validate() error { return Struct(p) }

// Validate rejects empty skill entries.
func (r SkillsUpdate) Validate() error { return Struct(r) }

// Validate rejects empty certification entries.
func (r CertificationsUpdate) Validate() error { return Struct(r) }
