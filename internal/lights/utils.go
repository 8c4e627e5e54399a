package lights

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func iif[T any](cond bool, ifTrue T, ifFalse T) T {
	if cond {
		return ifTrue
	}
	return ifFalse
}
