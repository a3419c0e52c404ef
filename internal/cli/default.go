package cli

import (
	"github.com/spf13/cobra"
)

var defaultCmd = &cobra.Command{
	Use:   "default [发行版]",
	Short: "显示或设置默认发行版",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDefault,
}

func runDefault(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	id := ""
	if len(args) > 0 {
		id = args[0]
	}
	return m.Default(id)
}
