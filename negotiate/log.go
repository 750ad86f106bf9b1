package negotiate

import (
	"github.com/sirupsen/logrus"
)

// Log receives verbose tracing of negotiation stages.
var Log = logrus.New()
