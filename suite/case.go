package suite

import "fmt"

// Case identifies one unit of work inside a suite. Cases are created by
// their owning suite and immutable afterwards; the suite's case map holds
// the only reference that matters.
type Case struct {
	name    string
	ignored bool
	owner   Suite
	invoke  func() error
}

// Name returns the case name, unique within its owning suite.
func (c *Case) Name() string { return c.name }

// Ignored reports whether the case is skipped during a run.
func (c *Case) Ignored() bool { return c.ignored }

// Suite returns the owning suite.
func (c *Case) Suite() Suite { return c.owner }

func (c *Case) String() string {
	return fmt.Sprintf("%s (%s)", c.name, c.owner.Name())
}
