package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// fieldMessages maps "<StructField>.<tag>" to the client-facing message.
var fieldMessages = map[string]string{
	"ID.notblank":                 MsgIDBlank,
	"ID.region_id":                MsgIDInvalid,
	"Name.notblank":               MsgNameBlank,
	"Name.region_name":            MsgNameInvalid,
	"ShortName.region_short_name": MsgShortNameInvalid,
}

// patternRules are the shape checks behind the custom binding tags
var patternRules = map[string]func(string) bool{
	"region_id":         IsValidID,
	"region_name":       IsValidName,
	"region_short_name": IsValidShortName,
}

const tagName = "binding"

// StructValidator implements gin's binding.StructValidator with the region
// rules registered. Field failures come back as Errors in declaration order;
// a blank field reports its blank message followed by any pattern it breaks.
type StructValidator struct {
	once     sync.Once
	validate *validator.Validate
}

var _ binding.StructValidator = (*StructValidator)(nil)

// Default is the validator installed into gin by Install
var Default = &StructValidator{}

// Install makes gin's ShouldBind* methods validate with Default
func Install() {
	binding.Validator = Default
}

// Struct validates obj with Default
func Struct(obj any) error {
	return Default.ValidateStruct(obj)
}

// ValidateStruct validates structs and pointers to structs; anything else passes.
func (v *StructValidator) ValidateStruct(obj any) error {
	if obj == nil {
		return nil
	}

	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}

	v.lazyinit()
	err := v.validate.Struct(value.Interface())
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	typ := value.Type()
	messages := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe.StructField(), fe.Tag(), fe.Field()))
		if fe.Tag() != "notblank" {
			continue
		}

		// validator stops at the first failing tag; a blank field still
		// reports every pattern it breaks
		field, ok := typ.FieldByName(fe.StructField())
		if !ok {
			continue
		}
		blank, _ := fe.Value().(string)
		for _, tag := range strings.Split(field.Tag.Get(tagName), ",") {
			if match, ok := patternRules[tag]; ok && !match(blank) {
				messages = append(messages, fieldMessage(fe.StructField(), tag, fe.Field()))
			}
		}
	}
	return messages
}

func fieldMessage(structField, tag, field string) string {
	if msg, ok := fieldMessages[structField+"."+tag]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", field)
}

// Engine returns the underlying validator instance
func (v *StructValidator) Engine() any {
	v.lazyinit()
	return v.validate
}

func (v *StructValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New(validator.WithRequiredStructEnabled())
		v.validate.SetTagName(tagName)

		register := func(tag string, match func(string) bool) {
			// Registration only fails on empty tags or nil funcs
			_ = v.validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return match(fl.Field().String())
			})
		}
		register("notblank", func(s string) bool { return !isBlank(s) })
		for tag, match := range patternRules {
			register(tag, match)
		}
	})
}
