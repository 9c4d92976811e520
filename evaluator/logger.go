package evaluator

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "evaluator")
