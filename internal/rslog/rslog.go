// Package rslog provides the CLI's structured logging: one named
// logrus.Logger per subsystem, all switchable together via SetLevel. The
// core library packages (field, polynomial, matrix, rs, chunker, shamir)
// never import this package; logging is strictly a cmd/shamir concern.
package rslog

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// loggers is the runtime registry of every logger created via New, so
// SetLevel can adjust them all together.
var loggers = make(map[string]*logrus.Logger)

// prefixFormatter wraps logrus's TextFormatter to prepend the logger's
// name, the way a multi-component CLI tags which subsystem emitted a
// line.
type prefixFormatter struct {
	name string
	logrus.TextFormatter
}

func (f *prefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b, err := f.TextFormatter.Format(entry)
	return []byte(fmt.Sprintf("[%s] %s", f.name, b)), err
}

// New returns a logger named name, registered for SetLevel. Defaults to
// WarnLevel so a plain run of the CLI stays quiet.
func New(name string) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	log.Formatter = &prefixFormatter{name: name}
	loggers[name] = log
	return log
}

// SetLevel adjusts every logger created so far via New, the mechanism
// behind the CLI's --verbose flag.
func SetLevel(level logrus.Level) {
	for _, log := range loggers {
		log.SetLevel(level)
	}
}
