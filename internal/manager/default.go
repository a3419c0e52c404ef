package manager

import (
	"fmt"

	"asl/internal/catalog"
)

// Default 显示或设置默认发行版。
// id 为空时打印当前默认值；否则校验目录后写入配置。
func (m *Manager) Default(id string) error {
	cfg, err := m.store.Load()
	if err != nil {
		return err
	}

	if id == "" {
		fmt.Fprintln(m.out, cfg.DefaultDistro)
		return nil
	}

	if _, err := catalog.Lookup(id); err != nil {
		return err
	}

	cfg.DefaultDistro = id
	return m.store.Save(cfg)
}
