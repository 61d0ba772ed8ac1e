package validation

import (
	"errors"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

// ID validates a region id taken from the request path
func ID(id string) error {
	return single(id,
		ozzo.Required.Error(MsgIDInvalid),
		ozzo.Match(idPattern).Error(MsgIDInvalid),
	)
}

// Name validates the name query parameter
func Name(name string) error {
	return single(name,
		notBlank(MsgNameParamBlank),
		ozzo.RuneLength(0, MaxNameLength).Error(MsgNameParamTooLong),
		ozzo.Match(namePattern).Error(MsgNameInvalid),
	)
}

// NameBeginning validates the name-beginning query parameter
func NameBeginning(prefix string) error {
	return single(prefix,
		ozzo.Required.Error(MsgNameBeginningInvalid),
		ozzo.RuneLength(0, MaxNameLength).Error(MsgNameBeginningTooLong),
		ozzo.Match(nameBeginningPattern).Error(MsgNameBeginningInvalid),
	)
}

// ShortName validates the short-name query parameter
func ShortName(shortName string) error {
	return single(shortName,
		ozzo.Required.Error(MsgShortNameParamInvalid),
		ozzo.Match(shortNamePattern).Error(MsgShortNameParamInvalid),
	)
}

// single runs rules in order and reports the first failure only.
func single(value string, rules ...ozzo.Rule) error {
	if err := ozzo.Validate(value, rules...); err != nil {
		return Errors{err.Error()}
	}
	return nil
}

func notBlank(message string) ozzo.Rule {
	return ozzo.By(func(value interface{}) error {
		s, _ := value.(string)
		if isBlank(s) {
			return errors.New(message)
		}
		return nil
	})
}
