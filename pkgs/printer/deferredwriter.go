package printer

import (
	"bytes"
	"io"
)

// DeferredWriter buffers console output until Flush so that it is not
// interleaved with log lines written while a command runs.
type DeferredWriter struct {
	buff   bytes.Buffer
	writer io.Writer
}

func NewDeferredWriter(w io.Writer) *DeferredWriter {
	return &DeferredWriter{writer: w}
}

func (dw *DeferredWriter) Write(p []byte) (int, error) {
	return dw.buff.Write(p)
}

func (dw *DeferredWriter) Flush() error {
	_, err := dw.buff.WriteTo(dw.writer)
	return err
}
