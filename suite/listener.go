package suite

import "time"

// Listener receives lifecycle notifications while a suite runs. All four
// callbacks are invoked synchronously from Run; for a non-ignored case
// exactly one of Pass or Fail follows exactly one Start.
type Listener interface {
	Start(c *Case)
	Ignore(c *Case)
	Pass(c *Case, elapsed time.Duration)
	Fail(c *Case, err error, elapsed time.Duration)
}
