package logex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/logex-dev/logex/internal/config"
)

const maxTracebackFrames = 8

// Exception reports err at error level with enriched location information and
// returns the rendered body. The innermost stack frame comes from a
// pkg/errors stack carried by err when present, otherwise from the call site.
// Formatting is best-effort and never panics; total failure degrades the
// record to "Type: message".
func (l *Logger) Exception(err error, context map[string]any) string {
	return l.ExceptionAt("ERROR", err, context)
}

// ExceptionAt is Exception with a caller-chosen level. Unknown level names
// degrade to error.
func (l *Logger) ExceptionAt(level string, err error, context map[string]any) string {
	if err == nil {
		return ""
	}
	body := formatException(err, context)
	lvl, lvlErr := config.ParseLevel(level)
	if lvlErr != nil {
		lvl = zerolog.ErrorLevel
	}
	zl := l.engine()
	zl.WithLevel(lvl).Msg(body)
	return body
}

// Recover is a defer helper that reports a recovered panic through the
// exception path. The panic is swallowed after reporting.
func (l *Logger) Recover(context map[string]any) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if ok {
		err = pkgerrors.WithStack(err)
	} else {
		err = pkgerrors.Errorf("panic: %v", r)
	}
	l.Exception(err, context)
}

type frameInfo struct {
	file     string
	line     int
	function string
	source   string
}

func formatException(err error, context map[string]any) (body string) {
	defer func() {
		if recover() != nil {
			body = minimalException(err)
		}
	}()

	frames := extractFrames(err)

	var b strings.Builder
	b.WriteString(minimalException(err))

	if len(frames) > 0 {
		top := frames[0]
		fmt.Fprintf(&b, "\nLocation: %s:%s:%d", filepath.Base(top.file), top.function, top.line)
		if top.source != "" {
			fmt.Fprintf(&b, "\nCode: %s", top.source)
		}
		b.WriteString("\n\nTraceback (most recent call first):")
		for _, f := range frames {
			fmt.Fprintf(&b, "\n  %s:%d in %s", f.file, f.line, f.function)
			if f.source != "" {
				fmt.Fprintf(&b, "\n    %s", f.source)
			}
		}
	}

	if len(context) > 0 {
		b.WriteString("\n\nContext:")
		keys := make([]string, 0, len(context))
		for k := range context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "\n  %s: %v", k, context[k])
		}
	}
	return b.String()
}

func minimalException(err error) string {
	return fmt.Sprintf("%s: %s", exceptionType(err), err.Error())
}

// exceptionType names the concrete type of the root cause.
func exceptionType(err error) string {
	cause := err
	for {
		next := errors.Unwrap(cause)
		if next == nil {
			break
		}
		cause = next
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", cause), "*")
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

func extractFrames(err error) []frameInfo {
	if st := deepestStack(err); len(st) > 0 {
		return framesFromStack(st)
	}
	return framesFromCallers()
}

// deepestStack returns the stack captured closest to the raise site: the last
// stack-carrying error in the unwrap chain.
func deepestStack(err error) pkgerrors.StackTrace {
	var st pkgerrors.StackTrace
	for e := err; e != nil; e = errors.Unwrap(e) {
		if tracer, ok := e.(stackTracer); ok {
			st = tracer.StackTrace()
		}
	}
	return st
}

func framesFromStack(st pkgerrors.StackTrace) []frameInfo {
	frames := make([]frameInfo, 0, maxTracebackFrames)
	for _, f := range st {
		pc := uintptr(f) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		name := fn.Name()
		if skipFrame(name) {
			continue
		}
		file, line := fn.FileLine(pc)
		frames = append(frames, newFrame(file, line, name))
		if len(frames) >= maxTracebackFrames {
			break
		}
	}
	return frames
}

func framesFromCallers() []frameInfo {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return nil
	}
	iter := runtime.CallersFrames(pcs[:n])
	var frames []frameInfo
	for {
		f, more := iter.Next()
		if f.Function != "" && !skipFrame(f.Function) {
			frames = append(frames, newFrame(f.File, f.Line, f.Function))
			if len(frames) >= maxTracebackFrames {
				break
			}
		}
		if !more {
			break
		}
	}
	return frames
}

// skipFrame drops runtime internals and this package's own plumbing so the
// reported raise site is the caller's code.
func skipFrame(function string) bool {
	return strings.HasPrefix(function, "runtime.") ||
		strings.HasPrefix(function, "github.com/logex-dev/logex.")
}

func newFrame(file string, line int, function string) frameInfo {
	return frameInfo{
		file:     file,
		line:     line,
		function: funcBaseName(function),
		source:   sourceLine(file, line),
	}
}

// funcBaseName trims the package path from a fully-qualified function name.
func funcBaseName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// sourceLine reads the literal source text of the failing line. Best-effort:
// binaries deployed without sources simply omit the Code line.
func sourceLine(file string, line int) string {
	if file == "" || line <= 0 {
		return ""
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return ""
	}
	lines := strings.Split(string(data), "\n")
	if line > len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[line-1])
}
