package app

import (
	"context"
	"io"
	"os"

	"minigrep/internal/ctxlog"
	"minigrep/internal/output"
	"minigrep/internal/search"
	"minigrep/internal/textutil"
)

// Run 读取 opts.Config.FilePath，按配置的大小写模式过滤，把匹配行写到 opts.Stdout。
// 没有匹配不是错误。
func Run(ctx context.Context, opts Options) (Result, error) {
	log := ctxlog.FromContext(ctx)
	cfg := opts.Config
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Format == "" {
		opts.Format = output.FormatText
	}
	log.Debug("resolved config", "query", cfg.Query, "path", cfg.FilePath, "mode", cfg.Mode(), "case_source", string(cfg.CaseSource))

	data, err := readFile(cfg.FilePath)
	if err != nil {
		return Result{}, err
	}
	decoded, err := textutil.Decode(data)
	if err != nil {
		return Result{}, &InputErr{Code: CodeDecodeFailed, Path: cfg.FilePath, Err: err}
	}

	res := Result{
		Matches:      search.Search(cfg.Query, decoded.Text, cfg.CaseSensitive),
		LinesScanned: textutil.LineCount(decoded.Text),
		Bytes:        len(data),
		Encoding:     decoded.Encoding,
	}
	log.Debug("search done", "bytes", res.Bytes, "encoding", res.Encoding, "lines", res.LinesScanned, "matches", len(res.Matches))

	if err := writeResult(opts, res); err != nil {
		return res, &OutputErr{Err: err}
	}
	return res, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputErr{Code: readErrCode(err), Path: path, Err: err}
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &InputErr{Code: readErrCode(err), Path: path, Err: err}
	}
	return data, nil
}

func writeResult(opts Options, res Result) error {
	if opts.Format == output.FormatText {
		return output.WriteLines(opts.Stdout, res.Matches)
	}
	cfg := opts.Config
	events := make([]map[string]any, 0, len(res.Matches)+2)
	events = append(events, map[string]any{
		"type":        "meta",
		"tool":        "minigrep",
		"version":     opts.Version,
		"query":       cfg.Query,
		"path":        cfg.FilePath,
		"mode":        cfg.Mode(),
		"case_source": string(cfg.CaseSource),
		"encoding":    res.Encoding,
	})
	for _, m := range res.Matches {
		events = append(events, map[string]any{
			"type": "match",
			"text": m,
		})
	}
	events = append(events, map[string]any{
		"type":          "summary",
		"match_count":   len(res.Matches),
		"lines_scanned": res.LinesScanned,
		"exit_code":     0,
	})
	return output.Write(opts.Stdout, opts.Format, events)
}
