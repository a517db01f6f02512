package inventory

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// shebangReadLimit caps how much of the first line is inspected.
const shebangReadLimit = 200

// detectShebangLanguage peeks at a file's first line and maps a
// recognized interpreter to a language tag. It returns "" for files
// without a shebang or with an unrecognized interpreter, and an error
// only when the file cannot be opened or read.
func detectShebangLanguage(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, shebangReadLimit)
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	line = strings.ToLower(strings.TrimSpace(line))
	if len(line) > shebangReadLimit {
		line = line[:shebangReadLimit]
	}
	if !strings.HasPrefix(line, "#!") {
		return "", nil
	}

	switch {
	case strings.Contains(line, "python"):
		return "python", nil
	case strings.Contains(line, "bash"), strings.Contains(line, "sh"):
		return "bash", nil
	case strings.Contains(line, "node"):
		return "javascript", nil
	case strings.Contains(line, "ruby"):
		return "ruby", nil
	case strings.Contains(line, "perl"):
		return "perl", nil
	}
	return "", nil
}
