package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"asl/internal/catalog"
)

var installForce bool

var installCmd = &cobra.Command{
	Use:   "install [发行版]",
	Short: "安装一个发行版",
	Long: `拉取发行版的远端镜像并打上本地标签（asl-<id>:latest）。

不指定发行版时交互选择。受支持的发行版：
  ` + strings.Join(catalog.IDs(), ", ") + `

示例:
  asl install ubuntu
  asl install alpine --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVarP(&installForce, "force", "f", false,
		"重新拉取并覆盖已安装的发行版")
}

func runInstall(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return m.InstallSelect(installForce)
	}
	return m.Install(args[0], installForce)
}
