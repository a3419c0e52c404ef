package cli

import (
	"github.com/spf13/cobra"
)

var uninstallYes bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <发行版>",
	Short: "卸载一个发行版",
	Long: `删除发行版的本地镜像并移除配置记录。

删除前需要确认；可用 --yes 跳过。

示例:
  asl uninstall ubuntu
  asl uninstall alpine --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().BoolVarP(&uninstallYes, "yes", "y", false,
		"跳过确认提示")
}

func runUninstall(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}
	return m.Uninstall(args[0], uninstallYes)
}
