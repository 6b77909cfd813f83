package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// record is one JSON line of output. Combination lines leave Summary false;
// in "all" mode each target ends with a summary line whose Count is the total.
type record struct {
	Target   uint64   `json:"target"`
	Status   string   `json:"status"`
	Indices  []int    `json:"indices,omitempty"`
	Values   []uint64 `json:"values,omitempty"`
	Count    int      `json:"count"`
	Summary  bool     `json:"summary,omitempty"`
	Nodes    uint64   `json:"nodes,omitempty"`
	Progress float64  `json:"progress,omitempty"`
}

// resultWriter serializes records from concurrent workers onto one stream,
// optionally zstd-compressed.
type resultWriter struct {
	mu  sync.Mutex
	buf *bufio.Writer
	zw  *zstd.Encoder
	enc *json.Encoder
}

func newResultWriter(w io.Writer, compress bool) (*resultWriter, error) {
	rw := &resultWriter{}
	if compress {
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("creating zstd writer: %w", err)
		}
		rw.zw = zw
		w = zw
	}
	rw.buf = bufio.NewWriter(w)
	rw.enc = json.NewEncoder(rw.buf)

	return rw, nil
}

// Write appends one record as a JSON line.
func (w *resultWriter) Write(r record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.enc.Encode(r)
}

// Close flushes buffered lines and finishes the zstd frame. It does not close
// the underlying writer.
func (w *resultWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	if w.zw != nil {
		if err := w.zw.Close(); err != nil {
			return fmt.Errorf("closing zstd writer: %w", err)
		}
	}

	return nil
}
