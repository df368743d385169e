package cli

import (
	"io"
	"os"
)

// nopCloser wraps a writer we must not close, such as the command's stdout.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns w for an empty path, or the created file.
func openOutput(path string, w io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{w}, nil
	}
	return os.Create(path)
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(path string, w io.Writer, data []byte) error {
	out, err := openOutput(path, w)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
