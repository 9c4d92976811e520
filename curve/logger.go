package curve

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "curve")
