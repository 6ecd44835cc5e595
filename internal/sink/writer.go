package sink

import (
	"io"

	"github.com/rs/zerolog"
)

// levelWriter applies a per-sink minimum level. The engine attaches a single
// level to a whole logger, so the file and console sinks each wrap their
// writer with their own floor.
type levelWriter struct {
	io.Writer
	min zerolog.Level
}

func (w *levelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < w.min {
		return len(p), nil
	}
	return w.Writer.Write(p)
}
