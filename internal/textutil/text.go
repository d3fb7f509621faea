package textutil

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

var ErrUndecodable = errors.New("无法识别文本编码（支持 utf-8/gbk/gb18030）")

type Decoded struct {
	Text     string
	Encoding string
}

func Decode(data []byte) (Decoded, error) {
	if utf8.Valid(data) {
		return Decoded{Text: string(data), Encoding: "utf-8"}, nil
	}
	if out, err := simplifiedchinese.GB18030.NewDecoder().Bytes(data); err == nil && cleanDecode(out) {
		return Decoded{Text: string(out), Encoding: "gb18030"}, nil
	}
	if out, err := simplifiedchinese.GBK.NewDecoder().Bytes(data); err == nil && cleanDecode(out) {
		return Decoded{Text: string(out), Encoding: "gbk"}, nil
	}
	return Decoded{}, ErrUndecodable
}

// 解码器遇到非法字节会写入 U+FFFD 而不是报错。
func cleanDecode(out []byte) bool {
	return utf8.Valid(out) && !bytes.ContainsRune(out, utf8.RuneError)
}

// Lines 按 \n 切行，去掉行尾的一个 \r；末尾的换行不产生空行。
// 返回的每一行都是 text 的子串。
func Lines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}

// LineCount 与 len(Lines(text)) 相同，但不分配切片。
func LineCount(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
