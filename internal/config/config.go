package config

// CaseSource 记录大小写模式由哪个输入决定。
type CaseSource string

const (
	CaseFromArgument CaseSource = "argument"
	CaseFromEnv      CaseSource = "env"
	CaseFromDefault  CaseSource = "default"
)

type Config struct {
	Query         string
	FilePath      string
	CaseSensitive bool
	CaseSource    CaseSource
}

// ArgError 表示参数不足等调用错误，发生时不会访问文件。
type ArgError struct {
	Msg string
}

func (e *ArgError) Error() string { return e.Msg }

// Resolve 从参数列表构造 Config。
// args[0] 是调用名（忽略），args[1] 是查询串，args[2] 是文件路径。
// 若给出 args[3]：非空则不区分大小写，空串则区分大小写；
// 否则看 CASE_INSENSITIVE 环境变量，只要存在（哪怕为空）就不区分大小写。
func Resolve(args []string, lookup LookupEnvFunc) (Config, error) {
	if len(args) < 3 {
		return Config{}, &ArgError{Msg: "not enough arguments"}
	}
	cfg := Config{
		Query:    args[1],
		FilePath: args[2],
	}
	switch {
	case len(args) > 3:
		cfg.CaseSensitive = args[3] == ""
		cfg.CaseSource = CaseFromArgument
	case envSet(lookup, EnvCaseInsensitive):
		cfg.CaseSensitive = false
		cfg.CaseSource = CaseFromEnv
	default:
		cfg.CaseSensitive = true
		cfg.CaseSource = CaseFromDefault
	}
	return cfg, nil
}

func (c Config) Mode() string {
	if c.CaseSensitive {
		return "case-sensitive"
	}
	return "case-insensitive"
}
