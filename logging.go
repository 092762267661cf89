package p2pclient

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "p2pclient")
