package cmd

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"minigrep/internal/app"
	"minigrep/internal/config"
	"minigrep/internal/ctxlog"
	"minigrep/internal/output"
)

const searchCmdName = "__search"

type rootFlags struct {
	Format      string
	Verbose     bool
	ShowVersion bool
}

func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr, config.OSEnv)
	root.SetArgs(normalizeArgs(os.Args[1:]))
	return exitCode(os.Stderr, root.Execute())
}

func exitCode(stderr io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		writeCLIError(stderr, ee)
		return ee.Code
	}
	// 其余都是 cobra 的参数解析错误
	writeCLIError(stderr, &ExitError{Code: ExitArg, Msg: err.Error(), HintCode: hintBadFlag})
	return ExitArg
}

func NewRootCmd(stdout, stderr io.Writer, lookup config.LookupEnvFunc) *cobra.Command {
	flags := &rootFlags{}
	run := func(cmd *cobra.Command, args []string) error {
		if flags.ShowVersion {
			printVersion(stdout)
			return nil
		}
		return runSearch(cmd, stdout, stderr, lookup, flags, args)
	}
	root := &cobra.Command{
		Use:           "minigrep <query> <file_path> [case-override]",
		Short:         "在文本文件中查找包含查询串的行",
		Long:          rootLongHelp(),
		Example:       rootExampleHelp(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&flags.Format, "format", output.FormatText, "输出格式：text/ndjson/json")
	root.PersistentFlags().BoolVar(&flags.Verbose, "verbose", false, "把调试日志写到 stderr")
	root.PersistentFlags().BoolVarP(&flags.ShowVersion, "version", "v", false, "显示版本信息")

	// 第一个位置参数之后的内容都按位置参数处理，
	// 例如 minigrep nobody poem.txt -v 中的 -v 是大小写参数而不是 flag。
	root.Flags().SetInterspersed(false)

	searchCmd := &cobra.Command{
		Use:           searchCmdName + " <query> <file_path> [case-override]",
		Short:         "internal search entry",
		Hidden:        true,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	searchCmd.Flags().SetInterspersed(false)
	root.AddCommand(searchCmd)
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "显示版本信息",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(stdout)
		},
	})
	return root
}

func runSearch(cmd *cobra.Command, stdout, stderr io.Writer, lookup config.LookupEnvFunc, flags *rootFlags, args []string) error {
	if err := output.ValidateFormat(flags.Format); err != nil {
		return &ExitError{Code: ExitArg, Msg: err.Error(), HintCode: hintInvalidFormat}
	}
	cfg, err := config.Resolve(append([]string{"minigrep"}, args...), lookup)
	if err != nil {
		return &ExitError{Code: ExitArg, Msg: err.Error(), HintCode: hintArgMissing}
	}

	logger := ctxlog.New(stderr, flags.Verbose)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)
	_, err = app.Run(ctx, app.Options{
		Config:  cfg,
		Format:  flags.Format,
		Stdout:  stdout,
		Version: Version,
	})
	if err == nil {
		return nil
	}
	var ie *app.InputErr
	if errors.As(err, &ie) {
		return &ExitError{Code: ExitInput, Msg: err.Error(), HintCode: ie.Code}
	}
	var oe *app.OutputErr
	if errors.As(err, &oe) {
		return &ExitError{Code: ExitInternal, Msg: err.Error(), HintCode: app.CodeOutputFailed}
	}
	return &ExitError{Code: ExitInternal, Msg: err.Error()}
}

// normalizeArgs 把位置参数路由到隐藏的 __search 子命令，
// 这样查询串恰好叫 version/help/__search 时也能正常搜索。
// 只有单独一个 version/help 时才当作子命令；以 - 开头时交给根命令解析 flag。
func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return []string{searchCmdName}
	}
	first := args[0]
	if strings.HasPrefix(first, "-") {
		return args
	}
	if len(args) == 1 {
		switch first {
		case "version", "help":
			return args
		}
	}
	return append([]string{searchCmdName}, args...)
}
