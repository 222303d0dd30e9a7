package feedgen

import (
	"bufio"
	"os"
	"strings"

	"github.com/yanun0323/errors"
)

// Generator is any record source with a stable emission order.
type Generator interface {
	Next() []string
}

// WriteFile writes count records from the generator to path, one
// comma-separated record per line.
func WriteFile(path string, g Generator, count int) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create feed file")
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	for i := 0; i < count; i++ {
		if _, err := buf.WriteString(strings.Join(g.Next(), ",")); err != nil {
			return errors.Wrap(err, "write feed record")
		}
		if err := buf.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "write feed record")
		}
	}
	if err := buf.Flush(); err != nil {
		return errors.Wrap(err, "flush feed file")
	}
	return nil
}
