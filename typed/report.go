package typed

import (
	"errors"
	"log/slog"
)

// Reporter receives the diagnostic of a failed read.
type Reporter interface {
	Report(err error)
}

type ReporterFunc func(err error)

func (f ReporterFunc) Report(err error) {
	f(err)
}

// LogReporter reports failures as warnings on l, or on slog.Default when l
// is nil.
func LogReporter(l *slog.Logger) Reporter {
	if l == nil {
		l = slog.Default()
	}
	return ReporterFunc(func(err error) {
		var e *Error
		if !errors.As(err, &e) {
			l.Warn(err.Error())
			return
		}
		attrs := []any{
			slog.String("kind", e.Kind.String()),
			slog.String("type", e.Type),
			slog.String("path", e.Path),
		}
		if e.Key != "" {
			attrs = append(attrs, slog.String("key", e.Key))
		}
		l.Warn(e.Error(), attrs...)
	})
}

// Collector keeps every reported error.
type Collector struct {
	Errs []error
}

func (c *Collector) Report(err error) {
	c.Errs = append(c.Errs, err)
}

// Err joins the collected errors, nil if there are none.
func (c *Collector) Err() error {
	return errors.Join(c.Errs...)
}

func (c *Collector) Reset() {
	c.Errs = nil
}
