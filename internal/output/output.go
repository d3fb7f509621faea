package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

const (
	FormatText   = "text"
	FormatNDJSON = "ndjson"
	FormatJSON   = "json"
)

func ValidateFormat(v string) error {
	switch v {
	case FormatText, FormatNDJSON, FormatJSON:
		return nil
	}
	return fmt.Errorf("不支持的输出格式：%s（仅支持 text/ndjson/json）", v)
}

// WriteLines 逐行原样输出，每行以 \n 结尾。
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, ln := range lines {
		if _, err := bw.WriteString(ln); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func Write(w io.Writer, format string, events []map[string]any) error {
	switch format {
	case FormatNDJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, e := range events {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		obj := map[string]any{"events": events}
		b, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	default:
		return fmt.Errorf("不支持的输出格式：%s", format)
	}
}
