package app

import (
	"errors"
	"fmt"
	"io/fs"
)

const (
	CodeFileNotFound   = "file_not_found"
	CodeFilePermission = "file_permission_denied"
	CodeFileReadFailed = "file_read_failed"
	CodeDecodeFailed   = "decode_failed"
	CodeOutputFailed   = "output_write_failed"
)

// InputErr 包装读取或解码目标文件时的失败，Unwrap 返回原始错误，
// 可用 errors.Is(err, fs.ErrNotExist) 区分原因。
type InputErr struct {
	Code string
	Path string
	Err  error
}

func (e *InputErr) Error() string {
	if e.Code == CodeDecodeFailed {
		return fmt.Sprintf("解码文件失败：%s：%v", e.Path, e.Err)
	}
	return fmt.Sprintf("读取文件失败：%v", e.Err)
}

func (e *InputErr) Unwrap() error { return e.Err }

type OutputErr struct{ Err error }

func (e *OutputErr) Error() string { return fmt.Sprintf("输出结果失败：%v", e.Err) }

func (e *OutputErr) Unwrap() error { return e.Err }

func readErrCode(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return CodeFileNotFound
	case errors.Is(err, fs.ErrPermission):
		return CodeFilePermission
	default:
		return CodeFileReadFailed
	}
}

type ErrorHint struct {
	NextAction string
	FixExample string
}

func HintByCode(code string) ErrorHint {
	switch code {
	case CodeFileNotFound:
		return ErrorHint{
			NextAction: "确认文件路径存在且拼写正确，再重试",
			FixExample: "minigrep nobody ./poem.txt",
		}
	case CodeFilePermission:
		return ErrorHint{
			NextAction: "检查文件读权限",
			FixExample: "chmod +r ./poem.txt && minigrep nobody ./poem.txt",
		}
	case CodeFileReadFailed:
		return ErrorHint{
			NextAction: "确认路径是可读的普通文件而不是目录",
			FixExample: "minigrep nobody ./poem.txt",
		}
	case CodeDecodeFailed:
		return ErrorHint{
			NextAction: "先把文件转成 utf-8/gbk/gb18030 之一，再执行",
			FixExample: "iconv -f latin1 -t utf-8 input.txt -o output.txt && minigrep nobody output.txt",
		}
	case CodeOutputFailed:
		return ErrorHint{
			NextAction: "检查输出管道或重定向目标是否可写",
			FixExample: "minigrep nobody ./poem.txt > result.txt",
		}
	default:
		return ErrorHint{
			NextAction: "根据错误信息修正参数后重试",
			FixExample: "minigrep --help",
		}
	}
}
