package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asl/internal/invoker"
	"asl/internal/manager"
	"asl/internal/state"
)

var (
	// 版本信息
	Version = "0.1.0"

	// 全局标志
	// rootDir 是状态根目录
	// 默认值：$ASL_ROOT 环境变量，或 ~/.asl
	rootDir string

	// runtimeBin 是外部容器运行时二进制名
	// 默认值：$ASL_RUNTIME 环境变量，或 container
	runtimeBin string
)

var rootCmd = &cobra.Command{
	Use:   "asl [发行版]",
	Short: "通过容器运行时安装与使用 Linux 发行版",
	Long: `asl 借助已安装的容器运行时，把常用 Linux 发行版
安装为本地镜像，并提供进入其交互 shell 的入口。

镜像的拉取、存储与运行全部委托给外部运行时；
asl 只维护一个记录已安装发行版的配置文件。

不带子命令运行时等同于 enter：
  asl            # 交互选择并进入发行版
  asl ubuntu     # 直接进入 ubuntu`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runEnter,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
}

// Execute 运行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// 添加子命令
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(enterCmd)
	rootCmd.AddCommand(defaultCmd)

	// 全局标志
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "",
		"状态根目录（默认: $ASL_ROOT 或 ~/.asl）")
	rootCmd.PersistentFlags().StringVar(&runtimeBin, "runtime", "",
		"外部容器运行时二进制（默认: $ASL_RUNTIME 或 container）")
}

// newManager 按全局标志构建 Manager。
// 每次命令执行都会确保状态目录已初始化。
func newManager() (*manager.Manager, error) {
	store, err := state.NewStore(rootDir)
	if err != nil {
		return nil, err
	}
	if err := store.Initialize(); err != nil {
		return nil, err
	}

	runner := invoker.New(runtimeBin)
	return manager.New(store, runner, os.Stdin, os.Stdout, os.Stderr), nil
}
