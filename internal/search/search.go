// Package search 实现按行的子串过滤。
package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"minigrep/internal/textutil"
)

// Search 按 caseSensitive 选择匹配方式，返回 contents 中包含 query 的行，保持原顺序。
// 返回的行是 contents 的子串，与 contents 共享底层内存。
func Search(query, contents string, caseSensitive bool) []string {
	if caseSensitive {
		return SearchCaseSensitive(query, contents)
	}
	return SearchCaseInsensitive(query, contents)
}

func SearchCaseSensitive(query, contents string) []string {
	return filterLines(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchCaseInsensitive 两边都做完整的 Unicode 小写转换后再比较，返回原始行文本。
func SearchCaseInsensitive(query, contents string) []string {
	lower := cases.Lower(language.Und)
	q := lower.String(query)
	return filterLines(contents, func(line string) bool {
		return strings.Contains(lower.String(line), q)
	})
}

func filterLines(contents string, keep func(string) bool) []string {
	out := make([]string, 0)
	for _, ln := range textutil.Lines(contents) {
		if keep(ln) {
			out = append(out, ln)
		}
	}
	return out
}
