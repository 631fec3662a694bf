package pathtidy

import "fmt"

// defaultMinLen is the minimum length applied when none is configured.
const defaultMinLen = 1

// Option configures a validator or sanitizer during construction.
type Option func(*settings)

// settings collects the configuration shared by every engine. It is frozen
// into the engine at construction; nothing mutates it afterwards.
type settings struct {
	platform      Platform
	minLen        int
	maxLen        int
	checkReserved bool
	nullHandler   NullValueHandler
	normalize     bool
	validateAfter bool
}

// WithPlatform selects the target platform. PlatformAuto resolves to the
// host platform; the default is PlatformUniversal.
func WithPlatform(p Platform) Option {
	return func(s *settings) { s.platform = p }
}

// WithMinLength sets the minimum accepted length in characters. Values below
// one fall back to the default of one.
func WithMinLength(n int) Option {
	return func(s *settings) { s.minLen = n }
}

// WithMaxLength sets the maximum accepted length in characters. Zero or
// negative values fall back to the platform default (Linux 4096, macOS and
// POSIX 1024, Windows and universal 260). Larger values are clamped to the
// platform ceiling.
func WithMaxLength(n int) Option {
	return func(s *settings) { s.maxLen = n }
}

// WithReservedNameCheck toggles reserved-name checking. Enabled by default.
func WithReservedNameCheck(enabled bool) Option {
	return func(s *settings) { s.checkReserved = enabled }
}

// WithNullValueHandler installs the strategy used when sanitization produces
// an empty string. The default is ReturnEmptyString.
func WithNullValueHandler(h NullValueHandler) Option {
	return func(s *settings) {
		if h != nil {
			s.nullHandler = h
		}
	}
}

// WithNormalize toggles `.`/`..`/redundant-separator collapsing during path
// sanitization. Enabled by default; ignored outside FilePathSanitizer.
func WithNormalize(enabled bool) Option {
	return func(s *settings) { s.normalize = enabled }
}

// WithValidateAfterSanitize re-validates the sanitized result and surfaces
// any residual failure. This matters when the replacement text itself
// contains characters the platform forbids.
func WithValidateAfterSanitize(enabled bool) Option {
	return func(s *settings) { s.validateAfter = enabled }
}

// newSettings applies options over the defaults, resolves the platform, and
// enforces the length invariants. Invalid combinations fail here so engines
// never exist in a bad state.
func newSettings(opts []Option) (settings, error) {
	s := settings{
		platform:      PlatformUniversal,
		minLen:        defaultMinLen,
		checkReserved: true,
		nullHandler:   ReturnEmptyString,
		normalize:     true,
	}
	for _, opt := range opts {
		opt(&s)
	}

	s.platform = s.platform.resolve()

	if s.minLen < 1 {
		s.minLen = defaultMinLen
	}
	ceiling := s.platform.defaultMaxLen()
	if s.maxLen <= 0 || s.maxLen > ceiling {
		s.maxLen = ceiling
	}
	if s.minLen > s.maxLen {
		return settings{}, fmt.Errorf("min length %d must not exceed max length %d", s.minLen, s.maxLen)
	}
	return s, nil
}
