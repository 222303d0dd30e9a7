package feed

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/yanun0323/errors"
)

var ErrBadRecord = errors.New("malformed feed record")

// ForEachRecord scans comma-separated lines from r and invokes fn once
// per non-empty line. The first error from fn aborts the scan.
func ForEachRecord(r io.Reader, fn func(cells []string) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := fn(strings.Split(text, ",")); err != nil {
			return errors.Wrap(err, "line "+strconv.Itoa(line))
		}
	}
	return sc.Err()
}

// ParseQuantity parses a non-negative integer quantity field.
func ParseQuantity(s string) (int64, error) {
	q, err := strconv.ParseInt(s, 10, 64)
	if err != nil || q < 0 {
		return 0, errors.Wrap(ErrBadRecord, "quantity "+s)
	}
	return q, nil
}
