// Package validation holds the field rules for regions and their error messages.
//
// Request bodies are checked through gin's binding engine (go-playground/validator
// with the rules registered below); single query and path parameters are checked
// with ozzo-validation. Both report failures as Errors.
package validation

import (
	"regexp"
	"strings"
)

// Messages reported to API clients.
const (
	MsgIDBlank   = "Region code cannot be blank"
	MsgIDInvalid = "Region id must be 2 or 3 digits and mustn't contain only zeros"

	MsgNameBlank   = "Region name cannot be blank"
	MsgNameInvalid = "Region name must contain only Cyrillic, spaces, dashes and brackets"

	MsgShortNameInvalid = "Region short name must be 3 capital Cyrillic letters"

	MsgNameParamBlank   = "Region name can't be blank"
	MsgNameParamTooLong = "Region name can't be longer than 255 characters"

	MsgNameBeginningInvalid = "Beginning of region name can't be blank, must contain only Cyrillic letters and begins with Capital one"
	MsgNameBeginningTooLong = "Beginning of region name can't be longer than 255 characters"

	MsgShortNameParamInvalid = "Region short name can't be blank and must be 3 Capital Cyrillic letters"
)

// MaxNameLength bounds name and name-beginning query parameters, in characters.
const MaxNameLength = 255

var (
	// 2 or 3 digits, not all zeros
	idPattern = regexp.MustCompile(`^(?:[0-9]{2}[1-9]|[0-9][1-9][0-9]|[1-9][0-9]{2}|[0-9][1-9]|[1-9][0-9])$`)

	namePattern          = regexp.MustCompile(`^[а-яА-Я() -]+$`)
	shortNamePattern     = regexp.MustCompile(`^[А-Я]{3}$`)
	nameBeginningPattern = regexp.MustCompile(`^[А-Я][а-я]*$`)
)

// Errors is an ordered list of validation messages.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

// IsValidID reports whether id is a 2-3 digit region code that is not all zeros
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}

// IsValidName reports whether name contains only Cyrillic letters, spaces, dashes and brackets
func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

// IsValidShortName reports whether shortName is exactly 3 capital Cyrillic letters
func IsValidShortName(shortName string) bool {
	return shortNamePattern.MatchString(shortName)
}

// IsValidNameBeginning reports whether prefix is a capitalised run of Cyrillic letters
func IsValidNameBeginning(prefix string) bool {
	return nameBeginningPattern.MatchString(prefix)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
