package pathtidy

// ValidateFilename checks a single path component against the configured
// platform's rules and returns the first violated rule as a
// *ValidationError, or nil when the name is legal.
func ValidateFilename(name string, opts ...Option) error {
	v, err := NewFileNameValidator(opts...)
	if err != nil {
		return err
	}
	return v.Validate(name)
}

// IsValidFilename reports whether the name is a legal path component on the
// configured platform. Construction errors (inconsistent length bounds)
// report false.
func IsValidFilename(name string, opts ...Option) bool {
	v, err := NewFileNameValidator(opts...)
	if err != nil {
		return false
	}
	return v.IsValid(name)
}

// SanitizeFilename rewrites a single path component into a legal form,
// replacing every invalid character with the replacement text.
func SanitizeFilename(name, replacement string, opts ...Option) (string, error) {
	s, err := NewFileNameSanitizer(opts...)
	if err != nil {
		return "", err
	}
	return s.Sanitize(name, replacement)
}

// ValidateFilepath checks a whole file path against the configured
// platform's rules and returns the first violated rule as a
// *ValidationError, or nil when the path is legal.
func ValidateFilepath(path string, opts ...Option) error {
	v, err := NewFilePathValidator(opts...)
	if err != nil {
		return err
	}
	return v.Validate(path)
}

// IsValidFilepath reports whether the path is legal on the configured
// platform. Construction errors report false.
func IsValidFilepath(path string, opts ...Option) bool {
	v, err := NewFilePathValidator(opts...)
	if err != nil {
		return false
	}
	return v.IsValid(path)
}

// SanitizeFilepath rewrites a whole file path into a legal form, replacing
// invalid characters, normalizing dot and separator redundancy (unless
// disabled), and reassembling with the platform separator.
func SanitizeFilepath(path, replacement string, opts ...Option) (string, error) {
	s, err := NewFilePathSanitizer(opts...)
	if err != nil {
		return "", err
	}
	return s.Sanitize(path, replacement)
}
