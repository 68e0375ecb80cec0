package logout

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// FileWriter appends log lines to a file on disk. The file is opened
// lazily on first write so constructing a logger never touches the
// filesystem; writes are buffered and flushed on Flush or Close.
//
// Not safe for concurrent use on its own: the Adapter serializes access.
type FileWriter struct {
	path string

	fp *os.File
	bw *bufio.Writer
}

// NewFileWriter creates a writer appending to path, creating the file
// when missing.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

func (w *FileWriter) Write(p []byte) (int, error) {
	if w.bw == nil {
		fp, err := os.OpenFile(w.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o664)
		if err != nil {
			return 0, errors.Wrapf(err, "logout: open log file %s", w.path)
		}
		w.fp = fp
		w.bw = bufio.NewWriterSize(fp, 64*1024)
	}
	return w.bw.Write(p)
}

func (w *FileWriter) Flush() error {
	if w.bw == nil {
		return nil
	}
	return w.bw.Flush()
}

func (w *FileWriter) Close() error {
	if w.fp == nil {
		return nil
	}
	err := w.bw.Flush()
	if cerr := w.fp.Close(); err == nil {
		err = cerr
	}
	w.fp = nil
	w.bw = nil
	return err
}
