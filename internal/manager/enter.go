package manager

import (
	"fmt"
	"os"

	aslerrors "asl/pkg/errors"

	"asl/internal/catalog"
)

const (
	// homeMount 是宿主机家目录在容器内的挂载点
	homeMount = "/mnt/host"

	// enterWorkdir 是进入容器后的工作目录
	enterWorkdir = "/root"

	// defaultTerm 是调用环境未设置 TERM 时的默认值
	defaultTerm = "xterm-256color"

	// loginFlag 让 shell 以登录方式启动
	loginFlag = "-l"
)

// Enter 进入发行版的交互 shell。
// 通过替换模式调用运行时：成功时当前进程被替换，不再返回；
// 仅在启动失败时返回错误。
func (m *Manager) Enter(id string) error {
	d, err := catalog.Lookup(id)
	if err != nil {
		return err
	}

	cfg, err := m.store.Load()
	if err != nil {
		return err
	}
	if _, ok := cfg.Distros[id]; !ok {
		return fmt.Errorf("%w: %s (run `asl install %s` first)",
			aslerrors.ErrNotInstalled, id, id)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	term := os.Getenv("TERM")
	if term == "" {
		term = defaultTerm
	}

	args := []string{
		"run", "--rm", "--interactive", "--tty",
		"--volume", home + ":" + homeMount,
		"--workdir", enterWorkdir,
		"--env", "TERM=" + term,
		catalog.TaggedName(id),
		d.Shell, loginFlag,
	}

	if err := m.runner.Replace(args, os.Environ()); err != nil {
		return fmt.Errorf("enter %s: %w", id, err)
	}
	return nil
}

// EnterSelect 在未指定发行版时进入：
// 没有已安装发行版时提示；恰好一个时直接进入；
// 多个时按字典序给出编号菜单供选择。
func (m *Manager) EnterSelect() error {
	cfg, err := m.store.Load()
	if err != nil {
		return err
	}

	ids := cfg.SortedIDs()
	switch len(ids) {
	case 0:
		fmt.Fprintln(m.out, "no distributions installed")
		return nil
	case 1:
		return m.Enter(ids[0])
	}

	id, err := m.chooseFrom(ids)
	if err != nil {
		return err
	}
	return m.Enter(id)
}
