/*
Package pathtidy validates and sanitizes filenames and file paths against the
naming rules of a target operating system.

A candidate name or path is checked against the platform's invalid-character
set, length limits, and reserved names. Validation reports the first violated
rule as a *ValidationError; sanitization rewrites the input into a form that
satisfies every rule.

Basic flow:
  - validate a single path component (`ValidateFilename` / `IsValidFilename`)
  - validate a whole path (`ValidateFilepath` / `IsValidFilepath`)
  - rewrite a component or path into a legal form (`SanitizeFilename` /
    `SanitizeFilepath`)

Each helper accepts options selecting the target platform (PlatformWindows,
PlatformLinux, PlatformMacOS, PlatformPOSIX, or the conservative
PlatformUniversal default that enforces the union of all rules), length
bounds, and reserved-name checking. For repeated use, construct a validator
or sanitizer once with the New* constructors; instances are immutable after
construction and safe for concurrent use.

No filesystem I/O is performed: the package never checks whether a path
exists or is writable, and it does not resolve symlinks.
*/
package pathtidy
