package canvas

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newSilentLogger returns a logrus.Logger discarding all output, the
// default every Context is constructed with. There is no package-level
// logger: each Context owns its own, so two contexts never contend on
// shared log state.
func newSilentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithLogger overrides the context's logger, e.g. to surface
// unsupported-operator fallbacks during development; those are the only
// events the package logs.
func WithLogger(l *logrus.Logger) ContextOption {
	return func(c *Context) {
		if l != nil {
			c.log = l
		}
	}
}

// ContextOption configures a Context at construction time.
type ContextOption func(*Context)
