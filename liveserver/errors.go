package liveserver

import "fmt"

// ConnLoop codes direct the session's read/write loop, generalizing the
// teacher's connection.ConnLoop* constants.
const (
	ConnLoopBreak uint8 = iota
	ConnLoopRetry
	ConnLoopAbnormalClosureRetry
	ConnLoopContinue
)

type ConnErr struct {
	code uint8
	desc string
}

func NewConnErr(code uint8) ConnErr {
	return ConnErr{code: code}
}

func (c ConnErr) AddDesc(desc string) ConnErr {
	c.desc = desc
	return c
}

func (c ConnErr) Error() string {
	return fmt.Sprintf("liveserver connection error - code: %d desc: %s", c.code, c.desc)
}

func (c ConnErr) Code() uint8 {
	return c.code
}
