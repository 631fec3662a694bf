package pathtidy

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FileNameValidator validates a single path component (no separators)
// against a platform's rules. Instances are immutable and safe for
// concurrent use.
type FileNameValidator struct {
	platform      Platform
	minLen        int
	maxLen        int
	checkReserved bool
	invalidChars  string
	reserved      map[string]bool
}

// NewFileNameValidator builds a validator for single path components.
func NewFileNameValidator(opts ...Option) (*FileNameValidator, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	pr := profileFor(s.platform)
	return &FileNameValidator{
		platform:      s.platform,
		minLen:        s.minLen,
		maxLen:        s.maxLen,
		checkReserved: s.checkReserved,
		invalidChars:  pr.invalidNameChars,
		reserved:      pr.reservedNames,
	}, nil
}

// Validate reports the first rule the name violates, in a fixed order:
// emptiness, length bounds, reserved names, then the character set.
func (v *FileNameValidator) Validate(name string) error {
	if verr := checkNotNull(name, v.platform); verr != nil {
		return verr
	}

	length := utf8.RuneCountInString(name)
	if length > v.maxLen {
		return newInvalidLengthError(
			fmt.Sprintf("filename is too long: expected<=%d, actual=%d", v.maxLen, length), v.platform)
	}
	if length < v.minLen {
		return newInvalidLengthError(
			fmt.Sprintf("filename is too short: expected>=%d, actual=%d", v.minLen, length), v.platform)
	}

	if v.checkReserved {
		if err := v.validateReservedName(name); err != nil {
			return err
		}
	}

	if invalid := findInvalidChars(name, v.invalidChars); len(invalid) > 0 {
		return newInvalidCharError(invalid, name, v.platform)
	}
	return nil
}

// IsValid reports whether the name passes Validate.
func (v *FileNameValidator) IsValid(name string) bool {
	return v.Validate(name) == nil
}

// validateReservedName matches the component's stem, case-insensitively,
// against the platform's reserved names. The extension is stripped first so
// "LPT9.txt" is caught on Windows.
func (v *FileNameValidator) validateReservedName(name string) error {
	stem, _ := splitExt(lastComponent(name, windowsRules(v.platform)))
	if v.reserved[strings.ToUpper(stem)] {
		return newReservedNameError(stem, v.platform)
	}
	return nil
}

// FileNameSanitizer rewrites a single path component into a form that
// satisfies FileNameValidator. Instances are immutable and safe for
// concurrent use.
type FileNameSanitizer struct {
	platform      Platform
	maxLen        int
	checkReserved bool
	invalidChars  string
	reserved      map[string]bool
	nullHandler   NullValueHandler
	validateAfter bool
	validator     *FileNameValidator
}

// NewFileNameSanitizer builds a sanitizer for single path components.
func NewFileNameSanitizer(opts ...Option) (*FileNameSanitizer, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	validator, err := NewFileNameValidator(opts...)
	if err != nil {
		return nil, err
	}
	pr := profileFor(s.platform)
	return &FileNameSanitizer{
		platform:      s.platform,
		maxLen:        s.maxLen,
		checkReserved: s.checkReserved,
		invalidChars:  pr.invalidNameChars,
		reserved:      pr.reservedNames,
		nullHandler:   s.nullHandler,
		validateAfter: s.validateAfter,
		validator:     validator,
	}, nil
}

// Sanitize replaces every invalid character with the replacement text,
// truncates to the maximum length, and disambiguates reserved names with a
// trailing underscore on the stem. An empty input or result is delegated to
// the configured null-value handler.
func (s *FileNameSanitizer) Sanitize(name, replacement string) (string, error) {
	if verr := checkNotNull(name, s.platform); verr != nil {
		return s.nullHandler(verr)
	}

	sanitized := replaceInvalidChars(name, s.invalidChars, replacement)
	sanitized = truncateRunes(sanitized, s.maxLen)

	if s.checkReserved {
		stem, ext := splitExt(sanitized)
		if s.reserved[strings.ToUpper(stem)] {
			sanitized = stem + "_" + ext
		}
	}

	if sanitized == "" {
		return s.nullHandler(newNullNameError(s.platform))
	}

	if s.validateAfter {
		// The replacement text is not itself sanitized, so it can
		// reintroduce invalid characters.
		if err := s.validator.Validate(sanitized); err != nil {
			return sanitized, err
		}
	}
	return sanitized, nil
}
