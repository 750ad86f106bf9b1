package negotiate

import (
	"github.com/sirupsen/logrus"
)

// Stage is the state of a Composite negotiation.
type Stage int

//go:generate go tool stringer -type=Stage
const (
	TryingPrimary  = Stage(0) // Polling the primary mechanism.
	TryingFallback = Stage(1) // Primary failed recoverably; polling the fallback.
	Done           = Stage(2) // Result available.
)

// Composite tries a primary mechanism and falls back to a second one when
// the primary fails recoverably. Both run as nested generators on clones
// of one channel, so their suspensions surface through whichever
// generator polls the composite.
type Composite struct {
	Verbose bool // If set, enables verbose logging.
	Id      string

	ch       Channel
	stage    Stage
	primary  *Generator
	fallback Mechanism
	second   *Generator
	result   Result
	failures []error
}

// NewComposite builds the primary mechanism's generator on ch; the
// fallback generator is only built if it is needed.
func NewComposite(ch Channel, primary Mechanism, fallback Mechanism) (c *Composite) {
	c = &Composite{
		ch:       ch,
		primary:  primary.Begin(ch.Clone()),
		fallback: fallback,
	}
	return
}

// Stage returns the current stage.
func (c *Composite) Stage() Stage {
	return c.stage
}

// Failures lists the recoverable failures that caused a fallback.
func (c *Composite) Failures() []error {
	return c.failures
}

// Poll advances whichever mechanism is active.
func (c *Composite) Poll() (res Result, done bool) {
	for {
		switch c.stage {
		case TryingPrimary:
			res, done = c.primary.Poll()
			if !done {
				return
			}
			if !res.Recoverable() {
				c.finish(res)
				continue
			}
			c.failures = append(c.failures, res.Err)
			c.second = c.fallback.Begin(c.ch.Clone())
			c.stage = TryingFallback
			if c.Verbose {
				c.logger().WithError(res.Err).Printf("negotiate: falling back to %v", c.fallback.Name())
			}
		case TryingFallback:
			res, done = c.second.Poll()
			if !done {
				return
			}
			c.finish(res)
		case Done:
			return c.result, true
		}
	}
}

// Close releases the generators of an abandoned negotiation.
func (c *Composite) Close() (err error) {
	err = c.primary.Close()
	if c.second != nil {
		if cerr := c.second.Close(); err == nil {
			err = cerr
		}
	}
	return
}

func (c *Composite) finish(res Result) {
	c.result = res
	c.stage = Done
	if c.Verbose {
		c.logger().Printf("negotiate: done %v", res)
	}
}

func (c *Composite) logger() *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"negotiation": c.Id,
		"stage":       c.stage,
	})
}
