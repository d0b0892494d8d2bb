package service

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Clock returns the current time. Services stamp records with it.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

func methodLogger(log logrus.FieldLogger, service, method string) logrus.FieldLogger {
	return log.WithFields(logrus.Fields{
		"service": service,
		"method":  method,
	})
}
