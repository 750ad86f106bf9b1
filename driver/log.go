package driver

import (
	"github.com/sirupsen/logrus"
)

// Log receives verbose tracing of driven sessions.
var Log = logrus.New()
