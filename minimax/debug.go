// +build debug

package minimax

import (
	"bytes"
	"fmt"
)

type lumberjack struct {
	*bytes.Buffer
}

func makeLumberJack() lumberjack {
	return lumberjack{Buffer: new(bytes.Buffer)}
}

func (l lumberjack) log(msg string, args ...interface{}) {
	fmt.Fprintf(l.Buffer, msg, args...)
	l.WriteByte('\n')
}

func (l lumberjack) Reset() { l.Buffer.Reset() }

func (l lumberjack) Log() string { return l.String() }
