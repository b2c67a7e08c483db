package main

import (
	"os"
	"strings"

	"mapping-generator/internal/errors"
)

const replayPerm = 0o755

// replayPath is where the replay script of a mapping file lives.
func replayPath(mappingFile string) string {
	return mappingFile + ".run.sh"
}

// writeReplay records args as a shell script next to the mapping file, so
// the discovery can be repeated after the sources change.
func writeReplay(mappingFile string, args []string) error {
	quoted := make([]string, 0, len(args))
	for _, a := range args {
		quoted = append(quoted, shellQuote(a))
	}

	script := "#!/bin/sh\n" + strings.Join(quoted, " ") + " \"$@\"\n"

	if err := os.WriteFile(replayPath(mappingFile), []byte(script), replayPerm); err != nil {
		return errors.Wrapf(err, "writing %s", replayPath(mappingFile))
	}

	// WriteFile keeps the mode of an existing file.
	return os.Chmod(replayPath(mappingFile), replayPerm)
}

func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, unsafeShellRune) < 0 {
		return s
	}

	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func unsafeShellRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("-_./=:,+@%", r):
		return false
	default:
		return true
	}
}
