package pathtidy

// splitDrive separates the drive/root prefix from the remaining path tail.
// Engines carrying Windows rules recognize drive letters ("C:") and UNC
// roots ("\\host\share", forward slashes accepted); other platforms have no
// drive concept and always return an empty prefix.
func splitDrive(p string, windowsRules bool) (drive, tail string) {
	if !windowsRules {
		return "", p
	}
	return ntSplitDrive(p)
}

func ntSplitDrive(p string) (drive, tail string) {
	if len(p) >= 2 && isDriveLetter(p[0]) && p[1] == ':' {
		return p[:2], p[2:]
	}
	// UNC root: two leading separators, then host, then share.
	if len(p) >= 3 && isPathSep(p[0]) && isPathSep(p[1]) && !isPathSep(p[2]) {
		hostEnd := -1
		for i := 2; i < len(p); i++ {
			if isPathSep(p[i]) {
				hostEnd = i
				break
			}
		}
		if hostEnd < 0 {
			return "", p
		}
		if hostEnd+1 < len(p) && isPathSep(p[hostEnd+1]) {
			return "", p
		}
		shareEnd := len(p)
		for i := hostEnd + 1; i < len(p); i++ {
			if isPathSep(p[i]) {
				shareEnd = i
				break
			}
		}
		return p[:shareEnd], p[shareEnd:]
	}
	return "", p
}

func isPathSep(c byte) bool {
	return c == '/' || c == '\\'
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
