package pathtidy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorReason classifies why a name or path failed validation. Validators
// report the first violated rule only, so a single reason is attached to
// every error.
type ErrorReason int

const (
	// ReasonNullName marks an empty (or, under Windows rules,
	// whitespace-only) input.
	ReasonNullName ErrorReason = iota + 1
	// ReasonInvalidCharacter marks a character the platform forbids.
	ReasonInvalidCharacter
	// ReasonInvalidLength marks a value outside the configured length bounds.
	ReasonInvalidLength
	// ReasonReservedName marks a name the platform reserves (e.g. CON on
	// Windows).
	ReasonReservedName
	// ReasonMalformedAbsPath marks an absolute-path style that does not
	// match the configured platform.
	ReasonMalformedAbsPath
)

func (r ErrorReason) String() string {
	switch r {
	case ReasonNullName:
		return "NULL_NAME"
	case ReasonInvalidCharacter:
		return "INVALID_CHARACTER"
	case ReasonInvalidLength:
		return "INVALID_LENGTH"
	case ReasonReservedName:
		return "RESERVED_NAME"
	case ReasonMalformedAbsPath:
		return "MALFORMED_ABS_PATH"
	}
	return fmt.Sprintf("ErrorReason(%d)", int(r))
}

// ValidationError reports a single violated naming rule.
type ValidationError struct {
	Reason      ErrorReason
	Platform    Platform
	Description string

	// InvalidChars holds the offending characters in order of first
	// occurrence when Reason is ReasonInvalidCharacter.
	InvalidChars []rune
	// ReservedName holds the matched reserved name, in its original case,
	// when Reason is ReasonReservedName.
	ReservedName string
	// Value is the input that failed validation.
	Value string
}

func (e *ValidationError) Error() string {
	if e.Description == "" {
		return e.Reason.String()
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Description)
}

// AsValidationError unwraps err into a *ValidationError if one is present.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// ReasonOf returns the ErrorReason carried by err, or zero when err is not a
// validation error.
func ReasonOf(err error) ErrorReason {
	if verr, ok := AsValidationError(err); ok {
		return verr.Reason
	}
	return 0
}

func newNullNameError(platform Platform) *ValidationError {
	return &ValidationError{
		Reason:      ReasonNullName,
		Platform:    platform,
		Description: "the value must not be an empty string",
	}
}

func newInvalidCharError(invalid []rune, value string, platform Platform) *ValidationError {
	quoted := make([]string, len(invalid))
	for i, r := range invalid {
		quoted[i] = fmt.Sprintf("%q", r)
	}
	return &ValidationError{
		Reason:       ReasonInvalidCharacter,
		Platform:     platform,
		Description:  fmt.Sprintf("invalid characters found: invalids=%s, value=%q", strings.Join(quoted, ", "), value),
		InvalidChars: invalid,
		Value:        value,
	}
}

func newInvalidLengthError(description string, platform Platform) *ValidationError {
	return &ValidationError{
		Reason:      ReasonInvalidLength,
		Platform:    platform,
		Description: description,
	}
}

func newReservedNameError(name string, platform Platform) *ValidationError {
	return &ValidationError{
		Reason:       ReasonReservedName,
		Platform:     platform,
		Description:  fmt.Sprintf("%q is a reserved name on the %s platform", name, platform),
		ReservedName: name,
	}
}

func newMalformedAbsPathError(found string, value string, platform Platform) *ValidationError {
	return &ValidationError{
		Reason:   ReasonMalformedAbsPath,
		Platform: platform,
		Description: fmt.Sprintf(
			"%s absolute path found in %q: not valid for the %s platform", found, value, platform),
		Value: value,
	}
}
