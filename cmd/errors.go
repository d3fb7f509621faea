package cmd

import "fmt"

const (
	ExitOK       = 0
	ExitArg      = 2
	ExitInput    = 3
	ExitInternal = 4
)

type ExitError struct {
	Code int
	Msg  string
	// HintCode 选择写到 stderr 的下一步提示，为空时不输出提示。
	HintCode string
}

func (e *ExitError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Msg
}
