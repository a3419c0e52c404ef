package cli

import (
	"github.com/spf13/cobra"
)

var enterCmd = &cobra.Command{
	Use:   "enter [发行版]",
	Short: "进入发行版的交互 shell（默认命令）",
	Long: `在发行版容器中启动登录 shell。

宿主机家目录以读写方式挂载到容器内的 /mnt/host，
TERM 环境变量透传（未设置时为 xterm-256color）。

不指定发行版时：只装有一个则直接进入，
多个则交互选择。

示例:
  asl enter ubuntu
  asl enter`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnter,
}

func runEnter(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return m.EnterSelect()
	}
	return m.Enter(args[0])
}
