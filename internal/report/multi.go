package report

import (
	"time"

	"tsr/suite"
)

// MultiListener fans every notification out to each listener in order.
type MultiListener []suite.Listener

func (m MultiListener) Start(c *suite.Case) {
	for _, l := range m {
		l.Start(c)
	}
}

func (m MultiListener) Ignore(c *suite.Case) {
	for _, l := range m {
		l.Ignore(c)
	}
}

func (m MultiListener) Pass(c *suite.Case, elapsed time.Duration) {
	for _, l := range m {
		l.Pass(c, elapsed)
	}
}

func (m MultiListener) Fail(c *suite.Case, err error, elapsed time.Duration) {
	for _, l := range m {
		l.Fail(c, err, elapsed)
	}
}
