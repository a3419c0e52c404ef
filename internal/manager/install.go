package manager

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"

	"asl/internal/catalog"
	"asl/internal/state"
	"asl/pkg/nameutil"
)

// pullMarker 是拉取探活容器执行的回显内容。
// 镜像能跑到 echo 即认为拉取完整。
const pullMarker = "ok"

// Install 安装一个发行版：拉取远端镜像、打本地标签并记录到配置。
// 已安装且未指定 force 时为无操作。
func (m *Manager) Install(id string, force bool) error {
	d, err := catalog.Lookup(id)
	if err != nil {
		return err
	}

	cfg, err := m.store.Load()
	if err != nil {
		return err
	}

	if _, ok := cfg.Distros[id]; ok && !force {
		fmt.Fprintf(m.out, "%s is already installed (use --force to reinstall)\n", d.Name)
		return nil
	}

	if err := m.pull(d); err != nil {
		return err
	}

	tagged := catalog.TaggedName(id)
	if err := m.runner.Run("image", "tag", d.Image, tagged); err != nil {
		return fmt.Errorf("tag %s: %w", tagged, err)
	}

	cfg.Distros[id] = state.DistroInfo{
		Path:    tagged,
		Name:    d.Name,
		Created: time.Now().Truncate(time.Second),
	}
	if err := m.store.Save(cfg); err != nil {
		return err
	}

	fmt.Fprintf(m.out, "%s %s installed as %s\n",
		text.FgGreen.Sprint("✓"), d.Name, tagged)
	return nil
}

// InstallSelect 从目录中交互选择一个发行版并安装。
func (m *Manager) InstallSelect(force bool) error {
	id, err := m.chooseFrom(catalog.IDs())
	if err != nil {
		return err
	}
	return m.Install(id, force)
}

// pull 通过一次性容器拉取远端镜像。
// 容器名带随机后缀，并发或重试安装不会冲突。
func (m *Manager) pull(d catalog.Distro) error {
	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(m.errOut))
	sp.Suffix = fmt.Sprintf(" pulling %s ...", d.Image)
	sp.Start()
	defer sp.Stop()

	err := m.runner.Run("run", "--rm", "--name", nameutil.PullName(),
		d.Image, "echo", pullMarker)
	if err != nil {
		return fmt.Errorf("pull %s: %w (is the container runtime service running?)",
			d.Image, err)
	}
	return nil
}
