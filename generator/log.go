package generator

import (
	"github.com/sirupsen/logrus"
)

// Log receives verbose tracing from generators with Verbose set.
var Log = logrus.New()
