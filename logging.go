package symexpr

import "github.com/sirupsen/logrus"

// log is the package-wide diagnostic logger. The kernel never logs to
// stdout directly; the only message it emits is the driver's Warn-level
// notice when Simplify detects a rewrite cycle. Running out of fuel is
// reported through Simplify's returned error, not logged.
var log = logrus.New()

func init() {
	log.SetLevel(logrus.WarnLevel)
}

// SetLogger lets an embedding application route kernel diagnostics into
// its own logrus instance (shared formatter, output, hooks) instead of the
// package default.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}
