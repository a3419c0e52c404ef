package manager

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	aslerrors "asl/pkg/errors"

	"asl/internal/catalog"
)

// Uninstall 卸载一个发行版：确认后删除本地镜像并移除配置项。
// 仅在镜像删除成功后才更新配置，避免状态文件与镜像库漂移。
func (m *Manager) Uninstall(id string, assumeYes bool) error {
	d, err := catalog.Lookup(id)
	if err != nil {
		return err
	}

	tagged := catalog.TaggedName(id)

	// 以运行时镜像列表为准判断是否已安装
	listing, err := m.runner.Output("image", "list")
	if err != nil {
		return fmt.Errorf("list images: %w", err)
	}
	if !strings.Contains(listing, tagged) {
		return fmt.Errorf("%w: %s", aslerrors.ErrNotInstalled, id)
	}

	if !assumeYes {
		ok, err := m.confirm(fmt.Sprintf("Remove %s (%s)? [y/N]: ", d.Name, tagged))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(m.out, "aborted")
			return nil
		}
	}

	if err := m.runner.Run("image", "rm", tagged); err != nil {
		return fmt.Errorf("remove %s: %w", tagged, err)
	}

	cfg, err := m.store.Load()
	if err != nil {
		return err
	}
	delete(cfg.Distros, id)
	if err := m.store.Save(cfg); err != nil {
		return err
	}

	fmt.Fprintf(m.out, "%s %s uninstalled\n", text.FgGreen.Sprint("✓"), d.Name)
	return nil
}

// confirm 读取一行输入；y/yes（不区分大小写）视为确认，其余取消。
func (m *Manager) confirm(prompt string) (bool, error) {
	fmt.Fprint(m.out, prompt)

	line, err := m.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
