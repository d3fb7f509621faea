package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"minigrep/internal/app"
)

const (
	hintArgMissing    = "arg_missing"
	hintInvalidFormat = "invalid_output_format"
	hintBadFlag       = "bad_flag"
)

type cliErrorHint struct {
	NextAction string
	FixExample string
}

// writeCLIError 把错误和下一步提示写到 w（stderr），不碰 stdout。
func writeCLIError(w io.Writer, ee *ExitError) {
	if ee.Msg == "" {
		return
	}
	errLabel(w).Fprint(w, "error:")
	fmt.Fprintf(w, " %s\n", ee.Msg)
	if ee.HintCode == "" {
		return
	}
	h := cliHintByCode(ee.HintCode)
	fmt.Fprintf(w, "hint: %s\n", h.NextAction)
	fmt.Fprintf(w, "  e.g. %s\n", h.FixExample)
}

// errLabel 按 w 自身是否为终端决定是否着色；color.NoColor 只看 stdout。
func errLabel(w io.Writer) *color.Color {
	c := color.New(color.FgRed, color.Bold)
	if colorTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func colorTerminal(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func cliHintByCode(code string) cliErrorHint {
	switch code {
	case hintArgMissing:
		return cliErrorHint{
			NextAction: "至少传查询串和文件路径两个参数",
			FixExample: "minigrep nobody ./poem.txt",
		}
	case hintInvalidFormat:
		return cliErrorHint{
			NextAction: "把 --format 改为 text、ndjson 或 json",
			FixExample: "minigrep --format ndjson nobody ./poem.txt",
		}
	case hintBadFlag:
		return cliErrorHint{
			NextAction: "检查参数拼写；以 - 开头的查询串请放在 -- 之后",
			FixExample: "minigrep -- -x ./poem.txt",
		}
	default:
		h := app.HintByCode(code)
		return cliErrorHint{NextAction: h.NextAction, FixExample: h.FixExample}
	}
}
