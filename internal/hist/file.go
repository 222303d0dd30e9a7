package hist

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"
)

const timestampLayout = "2006-01-02 15:04:05.000"

// FileAppender writes timestamped comma-separated rows to one file.
type FileAppender struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
	now  func() time.Time
}

// NewFileAppender opens (or creates) the file for appending.
func NewFileAppender(path string) (*FileAppender, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open sink file")
	}
	return &FileAppender{
		file: file,
		buf:  bufio.NewWriter(file),
		now:  time.Now,
	}, nil
}

// Append writes one row: timestamp followed by the record fields.
func (a *FileAppender) Append(fields []string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.buf.WriteString(a.now().Format(timestampLayout)); err != nil {
		return err
	}
	for _, f := range fields {
		if err := a.buf.WriteByte(','); err != nil {
			return err
		}
		if _, err := a.buf.WriteString(f); err != nil {
			return err
		}
	}
	return a.buf.WriteByte('\n')
}

// Close flushes buffered rows and closes the file.
func (a *FileAppender) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.buf.Flush(); err != nil {
		_ = a.file.Close()
		return err
	}
	return a.file.Close()
}

// FileSink adapts a FileAppender to one record kind.
type FileSink[V Record] struct {
	appender *FileAppender
}

func NewFileSink[V Record](appender *FileAppender) *FileSink[V] {
	return &FileSink[V]{appender: appender}
}

// Publish appends the record; a write failure drops this record only.
func (s *FileSink[V]) Publish(v V) {
	if err := s.appender.Append(v.Fields()); err != nil {
		logs.Errorf("append record %s, err: %+v", strings.Join(v.Fields(), ","), err)
	}
}
