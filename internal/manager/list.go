package manager

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// createdTimeFormat 是列表中安装时间的显示格式。
const createdTimeFormat = "2006-01-02 15:04:05"

// List 按标识符字典序列出已安装的发行版。
func (m *Manager) List() error {
	cfg, err := m.store.Load()
	if err != nil {
		return err
	}

	if len(cfg.Distros) == 0 {
		fmt.Fprintln(m.out, "no distributions installed")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(m.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"DISTRO", "NAME", "CREATED"})

	for _, id := range cfg.SortedIDs() {
		info := cfg.Distros[id]
		name := info.Name
		if id == cfg.DefaultDistro {
			name += " (default)"
		}
		t.AppendRow(table.Row{
			id,
			name,
			info.Created.Local().Format(createdTimeFormat),
		})
	}

	t.Render()
	return nil
}
