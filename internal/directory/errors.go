package directory

import "fmt"

// RecordNotFoundError reports that a lookup matched nothing. Criteria
// describes the lookup, e.g. "id = '78'"; it is empty for full listings.
type RecordNotFoundError struct {
	Criteria string
}

func (e *RecordNotFoundError) Error() string {
	if e.Criteria == "" {
		return "There are no records"
	}
	return "No records found by " + e.Criteria
}

// DuplicateUniqueValuesError reports a write rejected by a uniqueness
// constraint. ViolatedFields maps each offending field to its value.
type DuplicateUniqueValuesError struct {
	ViolatedFields map[string]any
}

func (e *DuplicateUniqueValuesError) Error() string {
	return "Duplicate primary key or unique index"
}

func notFoundBy(field, value string) *RecordNotFoundError {
	return &RecordNotFoundError{Criteria: fmt.Sprintf("%s = '%s'", field, value)}
}

func duplicateID(id string) *DuplicateUniqueValuesError {
	return &DuplicateUniqueValuesError{ViolatedFields: map[string]any{"id": id}}
}
