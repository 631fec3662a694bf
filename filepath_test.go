package pathtidy

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateFilepathAbsStyles(t *testing.T) {
	t.Parallel()
	tests := []struct {
		path       string
		platform   Platform
		wantReason ErrorReason
	}{
		{`C:\a\b`, PlatformWindows, 0},
		{`C:\a\b`, PlatformLinux, ReasonMalformedAbsPath},
		{`C:\a\b`, PlatformMacOS, ReasonMalformedAbsPath},
		{`C:\a\b`, PlatformUniversal, ReasonMalformedAbsPath},
		{"C:/a/b", PlatformLinux, ReasonMalformedAbsPath},
		{"/a/b", PlatformLinux, 0},
		{"/a/b", PlatformPOSIX, 0},
		{"/a/b", PlatformWindows, ReasonMalformedAbsPath},
		{"/a/b", PlatformUniversal, ReasonMalformedAbsPath},
		{`\a\b`, PlatformUniversal, ReasonMalformedAbsPath},
		{"a/b", PlatformUniversal, 0},
		{"a/b", PlatformWindows, 0},
		{"a/b", PlatformLinux, 0},
		// A drive-relative path has no rooted tail, so it is not an
		// NT-style absolute path.
		{"C:a", PlatformLinux, 0},
		{`\\host\share\x`, PlatformWindows, 0},
		{`\\host\share\x`, PlatformLinux, ReasonMalformedAbsPath},
	}
	for _, tc := range tests {
		err := ValidateFilepath(tc.path, WithPlatform(tc.platform))
		if ReasonOf(err) != tc.wantReason {
			t.Errorf("ValidateFilepath(%q, %v) = %v, want reason %v", tc.path, tc.platform, err, tc.wantReason)
		}
	}
}

func TestValidateFilepathBareRoot(t *testing.T) {
	t.Parallel()
	// A bare drive with an empty tail is trivially valid.
	if err := ValidateFilepath("C:", WithPlatform(PlatformWindows)); err != nil {
		t.Errorf("ValidateFilepath(C:, windows) = %v, want nil", err)
	}
	if err := ValidateFilepath("/", WithPlatform(PlatformLinux)); err != nil {
		t.Errorf("ValidateFilepath(/, linux) = %v, want nil", err)
	}
}

func TestValidateFilepathLengthBounds(t *testing.T) {
	t.Parallel()
	long := "a/" + strings.Repeat("b", 300)
	if got := ReasonOf(ValidateFilepath(long, WithPlatform(PlatformWindows))); got != ReasonInvalidLength {
		t.Errorf("ValidateFilepath(long, windows) reason = %v, want INVALID_LENGTH", got)
	}
	if err := ValidateFilepath(long, WithPlatform(PlatformLinux)); err != nil {
		t.Errorf("ValidateFilepath(long, linux) = %v, want nil", err)
	}
	// The drive prefix does not count against the tail length.
	tail := strings.Repeat("b", 259)
	if err := ValidateFilepath(`C:\`+tail, WithPlatform(PlatformWindows)); err != nil {
		t.Errorf("ValidateFilepath(drive + 260 char tail) = %v, want nil", err)
	}
	if got := ReasonOf(ValidateFilepath(`C:\`+tail+"b", WithPlatform(PlatformWindows))); got != ReasonInvalidLength {
		t.Errorf("ValidateFilepath(drive + 261 char tail) reason = %v, want INVALID_LENGTH", got)
	}
	if got := ReasonOf(ValidateFilepath("ab", WithMinLength(5))); got != ReasonInvalidLength {
		t.Errorf("ValidateFilepath(short, min=5) reason = %v, want INVALID_LENGTH", got)
	}
}

func TestValidateFilepathReservedComponents(t *testing.T) {
	t.Parallel()
	tests := []struct {
		path       string
		platform   Platform
		wantReason ErrorReason
	}{
		{"a/CON/b", PlatformUniversal, ReasonReservedName},
		{"a/con.txt/b", PlatformWindows, ReasonReservedName},
		{`dir\lpt1`, PlatformWindows, ReasonReservedName},
		{"a/CON/b", PlatformLinux, 0},
		{"a/./CON/../b", PlatformLinux, 0},
		{"a/b.txt", PlatformUniversal, 0},
	}
	for _, tc := range tests {
		err := ValidateFilepath(tc.path, WithPlatform(tc.platform))
		if ReasonOf(err) != tc.wantReason {
			t.Errorf("ValidateFilepath(%q, %v) = %v, want reason %v", tc.path, tc.platform, err, tc.wantReason)
		}
	}
}

func TestValidateFilepathReservedCheckDisabled(t *testing.T) {
	t.Parallel()
	err := ValidateFilepath("a/CON/b", WithPlatform(PlatformWindows), WithReservedNameCheck(false))
	if err != nil {
		t.Errorf("ValidateFilepath(a/CON/b, reserved check off) = %v, want nil", err)
	}
}

func TestValidateFilepathNTFSReserved(t *testing.T) {
	t.Parallel()
	tests := []struct {
		path       string
		platform   Platform
		wantReason ErrorReason
	}{
		{`C:\$Mft`, PlatformWindows, ReasonReservedName},
		{`C:\$mft`, PlatformWindows, ReasonReservedName},
		{`C:\$Mft\sub`, PlatformWindows, 0},
		{`C:\data\$Mft`, PlatformWindows, 0},
		{`C:\$NotReserved`, PlatformWindows, 0},
	}
	for _, tc := range tests {
		err := ValidateFilepath(tc.path, WithPlatform(tc.platform))
		if ReasonOf(err) != tc.wantReason {
			t.Errorf("ValidateFilepath(%q, %v) = %v, want reason %v", tc.path, tc.platform, err, tc.wantReason)
		}
	}
}

func TestValidateFilepathInvalidCharacters(t *testing.T) {
	t.Parallel()
	tests := []struct {
		path       string
		platform   Platform
		wantReason ErrorReason
	}{
		{"a<b/c", PlatformWindows, ReasonInvalidCharacter},
		{"a<b/c", PlatformLinux, 0},
		{"a\x00b/c", PlatformLinux, ReasonInvalidCharacter},
		{"a\tb/c", PlatformUniversal, ReasonInvalidCharacter},
		{"a\tb/c", PlatformPOSIX, 0},
	}
	for _, tc := range tests {
		err := ValidateFilepath(tc.path, WithPlatform(tc.platform))
		if ReasonOf(err) != tc.wantReason {
			t.Errorf("ValidateFilepath(%q, %v) = %v, want reason %v", tc.path, tc.platform, err, tc.wantReason)
		}
	}
}

func TestValidateFilepathInvalidCharsFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()
	err := ValidateFilepath("x|y<z|w", WithPlatform(PlatformWindows))
	verr, ok := AsValidationError(err)
	if !ok || verr.Reason != ReasonInvalidCharacter {
		t.Fatalf("ValidateFilepath = %v, want INVALID_CHARACTER", err)
	}
	if diff := cmp.Diff([]rune{'|', '<'}, verr.InvalidChars); diff != "" {
		t.Errorf("InvalidChars mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateFilepathNull(t *testing.T) {
	t.Parallel()
	if got := ReasonOf(ValidateFilepath("")); got != ReasonNullName {
		t.Errorf("ValidateFilepath(\"\") reason = %v, want NULL_NAME", got)
	}
	if got := ReasonOf(ValidateFilepath("  ", WithPlatform(PlatformUniversal))); got != ReasonNullName {
		t.Errorf("ValidateFilepath(whitespace, universal) reason = %v, want NULL_NAME", got)
	}
	if err := ValidateFilepath("  ", WithPlatform(PlatformPOSIX)); err != nil {
		t.Errorf("ValidateFilepath(whitespace, posix) = %v, want nil", err)
	}
}

func TestIsValidFilepath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		path     string
		platform Platform
		want     bool
	}{
		{"a/b/c.txt", PlatformUniversal, true},
		{"/var/log/app.log", PlatformLinux, true},
		{`C:\Users\me\file.txt`, PlatformWindows, true},
		{"/a/b", PlatformWindows, false},
		{"a<b", PlatformWindows, false},
		{"", PlatformUniversal, false},
	}
	for _, tc := range tests {
		if got := IsValidFilepath(tc.path, WithPlatform(tc.platform)); got != tc.want {
			t.Errorf("IsValidFilepath(%q, %v) = %v, want %v", tc.path, tc.platform, got, tc.want)
		}
	}
}

func TestSanitizeFilepath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		path        string
		replacement string
		platform    Platform
		opts        []Option
		want        string
	}{
		{
			name:     "strips windows specials",
			path:     "fi:l*e/p\"a?t>h|.t<xt",
			platform: PlatformUniversal,
			want:     "file/path.txt",
		},
		{
			name:     "windows separator join",
			path:     "fi:l*e/p\"a?t>h|.t<xt",
			platform: PlatformWindows,
			want:     `file\path.txt`,
		},
		{
			name:     "posix keeps windows specials",
			path:     "fi:l*e/path.txt",
			platform: PlatformLinux,
			want:     "fi:l*e/path.txt",
		},
		{
			name:     "absolute posix path is preserved",
			path:     "/var/log/app.log",
			platform: PlatformLinux,
			want:     "/var/log/app.log",
		},
		{
			name:     "normalizes dots and separators",
			path:     "a/./b/../c//d",
			platform: PlatformUniversal,
			want:     "a/c/d",
		},
		{
			name:     "normalization disabled",
			path:     "a/./b/../c",
			platform: PlatformUniversal,
			opts:     []Option{WithNormalize(false)},
			want:     "a/./b/../c",
		},
		{
			name:     "reserved component suffixed",
			path:     `C:\CON\file.txt`,
			platform: PlatformWindows,
			want:     `C:\CON_\file.txt`,
		},
		{
			name:     "ntfs metadata name suffixed anywhere",
			path:     "data/$Mft/x",
			platform: PlatformWindows,
			opts:     []Option{WithNormalize(false)},
			want:     `data\$Mft_\x`,
		},
		{
			name:        "control chars replaced",
			path:        "a\x00b/c",
			replacement: "_",
			platform:    PlatformLinux,
			want:        "a_b/c",
		},
		{
			name:     "empty interior components dropped",
			path:     "a//b",
			platform: PlatformPOSIX,
			opts:     []Option{WithNormalize(false)},
			want:     "a/b",
		},
	}
	for _, tc := range tests {
		opts := append([]Option{WithPlatform(tc.platform)}, tc.opts...)
		got, err := SanitizeFilepath(tc.path, tc.replacement, opts...)
		if err != nil {
			t.Errorf("%s: SanitizeFilepath(%q) error = %v", tc.name, tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: SanitizeFilepath(%q) = %q, want %q", tc.name, tc.path, got, tc.want)
		}
	}
}

func TestSanitizeFilepathAbsStyleMismatch(t *testing.T) {
	t.Parallel()
	// A foreign absolute-path style cannot be rewritten into a legal local
	// path, so the sanitizer reports it instead of guessing.
	_, err := SanitizeFilepath(`C:\a\b`, "", WithPlatform(PlatformLinux))
	if ReasonOf(err) != ReasonMalformedAbsPath {
		t.Errorf("SanitizeFilepath(C:\\a\\b, linux) error = %v, want MALFORMED_ABS_PATH", err)
	}
	_, err = SanitizeFilepath("/a/b", "", WithPlatform(PlatformWindows))
	if ReasonOf(err) != ReasonMalformedAbsPath {
		t.Errorf("SanitizeFilepath(/a/b, windows) error = %v, want MALFORMED_ABS_PATH", err)
	}
}

func TestSanitizeFilepathNullHandlers(t *testing.T) {
	t.Parallel()

	got, err := SanitizeFilepath("", "")
	if err != nil || got != "" {
		t.Errorf("SanitizeFilepath(\"\") = (%q, %v), want (\"\", nil)", got, err)
	}

	_, err = SanitizeFilepath("", "", WithNullValueHandler(RaiseError))
	if ReasonOf(err) != ReasonNullName {
		t.Errorf("SanitizeFilepath(\"\", RaiseError) error = %v, want NULL_NAME", err)
	}

	// A path of only invalid characters collapses to nothing.
	got, err = SanitizeFilepath("\x00\x01", "", WithPlatform(PlatformLinux))
	if err != nil || got != "" {
		t.Errorf("SanitizeFilepath(control chars) = (%q, %v), want (\"\", nil)", got, err)
	}
}

func TestSanitizeFilepathValidateAfter(t *testing.T) {
	t.Parallel()
	_, err := SanitizeFilepath("a\x00b", "<", WithPlatform(PlatformWindows), WithValidateAfterSanitize(true))
	if ReasonOf(err) != ReasonInvalidCharacter {
		t.Errorf("SanitizeFilepath with invalid replacement error = %v, want INVALID_CHARACTER", err)
	}
}

func TestSanitizeFilepathIdempotentAndValid(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"fi:l*e/p\"a?t>h|.t<xt",
		"a//b/./c/../d",
		"CON/com1.txt/x",
		"a\x00b/c",
		"plain/path/file.txt",
		`dir\sub\file`,
		"C:data/file",
		"..",
		"a b/c d",
	}
	platforms := []Platform{PlatformUniversal, PlatformLinux, PlatformWindows, PlatformPOSIX, PlatformMacOS}
	for _, platform := range platforms {
		for _, in := range inputs {
			once, err := SanitizeFilepath(in, "", WithPlatform(platform))
			if err != nil {
				if ReasonOf(err) == ReasonMalformedAbsPath {
					continue
				}
				t.Errorf("SanitizeFilepath(%q, %v) error = %v", in, platform, err)
				continue
			}
			twice, err := SanitizeFilepath(once, "", WithPlatform(platform))
			if err != nil {
				t.Errorf("SanitizeFilepath(%q, %v) second pass error = %v", once, platform, err)
				continue
			}
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("SanitizeFilepath(%q, %v) not idempotent (-once +twice):\n%s", in, platform, diff)
			}
			if once != "" && !IsValidFilepath(once, WithPlatform(platform)) {
				t.Errorf("IsValidFilepath(SanitizeFilepath(%q) = %q, %v) = false, want true", in, once, platform)
			}
		}
	}
}
