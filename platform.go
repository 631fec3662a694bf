package pathtidy

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform identifies the operating system whose naming rules are enforced.
type Platform int

const (
	// PlatformUniversal enforces the union of every platform's rules so the
	// result is portable. It is the default.
	PlatformUniversal Platform = iota
	// PlatformAuto resolves to the running environment's native platform at
	// construction time.
	PlatformAuto
	PlatformPOSIX
	PlatformLinux
	PlatformWindows
	PlatformMacOS
)

// String returns the canonical platform tag.
func (p Platform) String() string {
	switch p {
	case PlatformUniversal:
		return "universal"
	case PlatformAuto:
		return "auto"
	case PlatformPOSIX:
		return "POSIX"
	case PlatformLinux:
		return "Linux"
	case PlatformWindows:
		return "Windows"
	case PlatformMacOS:
		return "macOS"
	}
	return fmt.Sprintf("Platform(%d)", int(p))
}

// ParsePlatform converts a platform tag into a Platform. Matching is
// case-insensitive and accepts common aliases ("win", "mac", "darwin").
// An empty tag resolves to PlatformUniversal.
func ParsePlatform(tag string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "", "universal":
		return PlatformUniversal, nil
	case "auto":
		return PlatformAuto, nil
	case "posix":
		return PlatformPOSIX, nil
	case "linux":
		return PlatformLinux, nil
	case "windows", "win":
		return PlatformWindows, nil
	case "macos", "mac", "darwin", "osx":
		return PlatformMacOS, nil
	}
	return PlatformUniversal, fmt.Errorf("unknown platform %q", tag)
}

// resolve maps PlatformAuto to the host platform. All other values pass
// through unchanged.
func (p Platform) resolve() Platform {
	if p != PlatformAuto {
		return p
	}
	switch runtime.GOOS {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformMacOS
	case "linux":
		return PlatformLinux
	}
	return PlatformPOSIX
}

// windowsRules reports whether Windows naming rules apply. Universal enforces
// the union of all platforms, so it carries the Windows rules too.
func windowsRules(p Platform) bool {
	return p == PlatformWindows || p == PlatformUniversal
}

// defaultMaxLen returns the platform's default maximum length for a filename
// or file path.
func (p Platform) defaultMaxLen() int {
	switch p {
	case PlatformLinux:
		return 4096
	case PlatformPOSIX, PlatformMacOS:
		return 1024
	}
	// Windows and universal
	return 260
}

// unprintableASCII builds the set of ASCII control characters that are never
// legal in a name: everything below 0x20 except horizontal/vertical
// whitespace, plus DEL.
func unprintableASCII() string {
	var b strings.Builder
	for c := byte(0); c < 0x20; c++ {
		switch c {
		case '\t', '\n', '\v', '\f', '\r':
			continue
		}
		b.WriteByte(c)
	}
	b.WriteByte(0x7f)
	return b.String()
}

var (
	invalidPathChars        = unprintableASCII()
	invalidFilenameChars    = invalidPathChars + "/"
	invalidWinPathChars     = invalidPathChars + ":*?\"<>|\t\n\r\v\f"
	invalidWinFilenameChars = invalidFilenameChars + ":*?\"<>|\t\n\r\v\f\\"
)

// Windows device names are reserved regardless of extension or case.
var windowsReservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true, "CLOCK$": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// NTFS metadata files are reserved only directly under the volume root.
var ntfsReservedNames = []string{
	"$Mft", "$MftMirr", "$LogFile", "$Volume", "$AttrDef", "$Bitmap",
	"$Boot", "$BadClus", "$Secure", "$Upcase", "$Extend", "$Quota",
	"$ObjId", "$Reparse",
}

// profile captures every platform-derived rule table. It is computed once at
// engine construction and never mutated afterwards.
type profile struct {
	invalidNameChars   string
	invalidPathChars   string
	reservedNames      map[string]bool // filename-level, uppercase keys
	reservedPathTokens map[string]bool // whole-path level, uppercase keys
}

func profileFor(p Platform) profile {
	pr := profile{
		invalidNameChars:   invalidFilenameChars,
		invalidPathChars:   invalidPathChars,
		reservedNames:      map[string]bool{},
		reservedPathTokens: map[string]bool{},
	}
	if windowsRules(p) {
		pr.invalidNameChars = invalidWinFilenameChars
		pr.invalidPathChars = invalidWinPathChars
		for name := range windowsReservedNames {
			pr.reservedNames[name] = true
		}
	}
	switch p {
	case PlatformUniversal:
		pr.reservedNames[":"] = true
		pr.reservedPathTokens["/"] = true
		pr.reservedPathTokens[":"] = true
	case PlatformPOSIX, PlatformMacOS:
		pr.reservedNames[":"] = true
		pr.reservedPathTokens["/"] = true
		pr.reservedPathTokens[":"] = true
	case PlatformLinux:
		pr.reservedPathTokens["/"] = true
	}
	return pr
}
