package pathtidy

import (
	"fmt"
	"path"
	"strings"
	"unicode/utf8"
)

// FilePathValidator validates a whole file path: absolute-path style,
// aggregate length, reserved names, and the platform character set.
// Instances are immutable and safe for concurrent use.
type FilePathValidator struct {
	platform       Platform
	minLen         int
	maxLen         int
	checkReserved  bool
	invalidChars   string
	reservedTokens map[string]bool
	nameValidator  *FileNameValidator
}

// NewFilePathValidator builds a validator for whole file paths.
func NewFilePathValidator(opts ...Option) (*FilePathValidator, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	nameValidator, err := NewFileNameValidator(opts...)
	if err != nil {
		return nil, err
	}
	pr := profileFor(s.platform)
	return &FilePathValidator{
		platform:       s.platform,
		minLen:         s.minLen,
		maxLen:         s.maxLen,
		checkReserved:  s.checkReserved,
		invalidChars:   pr.invalidPathChars,
		reservedTokens: pr.reservedPathTokens,
		nameValidator:  nameValidator,
	}, nil
}

// Validate reports the first rule the path violates: emptiness,
// absolute-path style, tail length, reserved names (whole tail, then per
// component), and finally the platform character set. A bare drive/root with
// an empty tail is valid.
func (v *FilePathValidator) Validate(p string) error {
	if verr := checkNotNull(p, v.platform); verr != nil {
		return verr
	}
	if err := v.validateAbsPath(p); err != nil {
		return err
	}

	_, tail := splitDrive(p, windowsRules(v.platform))
	if tail == "" {
		return nil
	}

	length := utf8.RuneCountInString(tail)
	if length > v.maxLen {
		return newInvalidLengthError(
			fmt.Sprintf("file path is too long: expected<=%d, actual=%d", v.maxLen, length), v.platform)
	}
	if length < v.minLen {
		return newInvalidLengthError(
			fmt.Sprintf("file path is too short: expected>=%d, actual=%d", v.minLen, length), v.platform)
	}

	if v.checkReserved {
		if err := v.validateReservedTokens(tail); err != nil {
			return err
		}
	}

	normalized := strings.ReplaceAll(tail, "\\", "/")
	if v.checkReserved {
		for _, entry := range strings.Split(normalized, "/") {
			if entry == "" || entry == "." || entry == ".." {
				continue
			}
			// Character checks are handled on the whole tail below, so only
			// the reserved-name rule runs per component.
			if err := v.nameValidator.validateReservedName(entry); err != nil {
				return err
			}
		}
	}

	if invalid := findInvalidChars(normalized, v.invalidChars); len(invalid) > 0 {
		return newInvalidCharError(invalid, tail, v.platform)
	}

	if windowsRules(v.platform) {
		if err := v.validateNTFSReserved(normalized); err != nil {
			return err
		}
	}
	return nil
}

// IsValid reports whether the path passes Validate.
func (v *FilePathValidator) IsValid(p string) bool {
	return v.Validate(p) == nil
}

// validateAbsPath rejects absolute-path styles that do not belong to the
// configured platform: Windows rejects POSIX-rooted input, POSIX-style
// platforms reject drive-absolute input, and universal rejects both since
// neither style is portable.
func (v *FilePathValidator) validateAbsPath(p string) error {
	posixAbs := strings.HasPrefix(p, "/")
	drive, rest := ntSplitDrive(p)
	ntAbs := len(rest) > 0 && isPathSep(rest[0])
	driveAbs := drive != "" && ntAbs

	switch v.platform {
	case PlatformWindows:
		if posixAbs {
			return newMalformedAbsPathError("POSIX style", p, v.platform)
		}
	case PlatformUniversal:
		if posixAbs {
			return newMalformedAbsPathError("POSIX style", p, v.platform)
		}
		if ntAbs {
			return newMalformedAbsPathError("NT style", p, v.platform)
		}
	default:
		if driveAbs {
			return newMalformedAbsPathError("NT style", p, v.platform)
		}
	}
	return nil
}

// validateReservedTokens runs the whole-tail reserved-keyword check against
// the platform-level reserved tokens.
func (v *FilePathValidator) validateReservedTokens(tail string) error {
	stem, _ := splitExt(lastComponent(tail, windowsRules(v.platform)))
	if v.reservedTokens[strings.ToUpper(stem)] {
		return newReservedNameError(stem, v.platform)
	}
	return nil
}

// validateNTFSReserved rejects a tail that names an NTFS metadata file
// directly under the volume root, e.g. "/$Mft".
func (v *FilePathValidator) validateNTFSReserved(normalized string) error {
	if !strings.HasPrefix(normalized, "/") {
		return nil
	}
	for _, name := range ntfsReservedNames {
		if strings.EqualFold(normalized, "/"+name) {
			return newReservedNameError(normalized[1:], v.platform)
		}
	}
	return nil
}

// FilePathSanitizer rewrites a whole file path into a form that satisfies
// FilePathValidator: drive/root splitting, character substitution, optional
// normalization, per-component sanitization, and reassembly with the
// platform separator. Instances are immutable and safe for concurrent use.
type FilePathSanitizer struct {
	platform      Platform
	invalidChars  string
	nullHandler   NullValueHandler
	normalize     bool
	validateAfter bool
	validator     *FilePathValidator
	nameSanitizer *FileNameSanitizer
}

// NewFilePathSanitizer builds a sanitizer for whole file paths.
func NewFilePathSanitizer(opts ...Option) (*FilePathSanitizer, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	validator, err := NewFilePathValidator(opts...)
	if err != nil {
		return nil, err
	}
	// Components that sanitize to nothing are dropped during reassembly, so
	// the inner sanitizer always uses the empty-string handler; the
	// configured handler applies to the whole path only.
	nameOpts := append(append([]Option{}, opts...), WithNullValueHandler(ReturnEmptyString))
	nameSanitizer, err := NewFileNameSanitizer(nameOpts...)
	if err != nil {
		return nil, err
	}
	pr := profileFor(s.platform)
	return &FilePathSanitizer{
		platform:      s.platform,
		invalidChars:  pr.invalidPathChars,
		nullHandler:   s.nullHandler,
		normalize:     s.normalize,
		validateAfter: s.validateAfter,
		validator:     validator,
		nameSanitizer: nameSanitizer,
	}, nil
}

// Sanitize rewrites the path so it passes validation on the configured
// platform. A mismatched absolute-path style cannot be rewritten and is
// returned as an error.
func (s *FilePathSanitizer) Sanitize(p, replacement string) (string, error) {
	if verr := checkNotNull(p, s.platform); verr != nil {
		return s.nullHandler(verr)
	}
	if err := s.validator.validateAbsPath(p); err != nil {
		return "", err
	}

	drive, tail := splitDrive(p, windowsRules(s.platform))
	tail = replaceInvalidChars(tail, s.invalidChars, replacement)
	if s.normalize && tail != "" {
		tail = normalizePath(tail, windowsRules(s.platform))
	}

	var entries []string
	if drive != "" {
		entries = append(entries, drive)
	}
	for _, entry := range strings.Split(strings.ReplaceAll(tail, "\\", "/"), "/") {
		if isNTFSReserved(entry) {
			entries = append(entries, entry+"_")
			continue
		}
		sanitized, err := s.nameSanitizer.Sanitize(entry, replacement)
		if err != nil {
			return "", err
		}
		if sanitized == "" {
			// Keep a single leading empty entry so a root marker survives
			// the join; drop every other empty component.
			if len(entries) == 0 {
				entries = append(entries, "")
			}
			continue
		}
		entries = append(entries, sanitized)
	}

	result := strings.Join(entries, s.separator())

	if err := s.validator.Validate(result); err != nil {
		verr, ok := AsValidationError(err)
		if !ok || verr.Reason != ReasonNullName {
			return "", err
		}
		result, err = s.nullHandler(verr)
		if err != nil {
			return "", err
		}
	}

	if s.validateAfter {
		if err := s.validator.Validate(result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (s *FilePathSanitizer) separator() string {
	if s.platform == PlatformWindows {
		return "\\"
	}
	return "/"
}

// normalizePath collapses `.`, `..`, and redundant separators. Normalization
// only removes separators and dots, never introduces characters, so the
// per-component character checks need not re-run afterwards.
func normalizePath(tail string, windowsRules bool) string {
	if windowsRules {
		tail = strings.ReplaceAll(tail, "\\", "/")
	}
	return path.Clean(tail)
}

func isNTFSReserved(entry string) bool {
	for _, name := range ntfsReservedNames {
		if entry == name {
			return true
		}
	}
	return false
}
