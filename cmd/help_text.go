package cmd

import "strings"

func rootLongHelp() string {
	return strings.TrimSpace(`
在单个文本文件中查找包含查询串的行，按原顺序逐行输出。

用法：
- 命令：minigrep <query> <file_path> [case-override]
- 输出：每个匹配行原样一行，不带行号、文件名或表头

大小写规则（优先级从高到低）：
1. 第 4 个参数存在时：非空则不区分大小写；空串 "" 则区分大小写
2. 否则看环境变量 CASE_INSENSITIVE：只要设置了（哪怕为空）就不区分大小写
3. 都没有时区分大小写

匹配说明：
- 普通子串匹配，不支持正则
- 不区分大小写时两边都做完整 Unicode 小写转换，输出仍是原始行
- 空查询串匹配所有行
- 没有匹配不算错误，退出码仍为 0
- 以 - 开头的查询串请放在 -- 之后
- flag 必须写在查询串之前；查询串之后的内容一律按位置参数处理

输入：
- 整个文件读入内存
- 支持 utf-8，其他编码尝试按 gb18030/gbk 解码
- 行分隔符为 \n，行尾的 \r 会被去掉

输出格式（--format）：
- text：默认，逐行原样输出
- ndjson / json：meta、match、summary 事件

退出码：
- 0 成功（包括没有匹配）
- 2 参数错误
- 3 输入错误（文件不存在、不可读、无法解码）
- 4 内部错误
`)
}

func rootExampleHelp() string {
	return strings.TrimSpace(`
  # 区分大小写
  minigrep nobody poem.txt

  # 第 4 个参数非空：不区分大小写
  minigrep to poem.txt 1

  # 用环境变量切换为不区分大小写
  CASE_INSENSITIVE=1 minigrep to poem.txt

  # 环境变量已设置，但用空的第 4 个参数强制区分大小写
  CASE_INSENSITIVE=1 minigrep To poem.txt ""

  # 查询串以 - 开头
  minigrep -- "- don't" poem.txt

  # NDJSON 输出，附带调试日志
  minigrep --format ndjson --verbose nobody poem.txt
`)
}
