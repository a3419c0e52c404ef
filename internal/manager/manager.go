// Package manager 实现发行版的安装、列出、卸载与进入流程。
//
// Manager 持有配置存储与运行时调用器的显式实例，
// 输入输出流可注入以便测试，不依赖任何全局状态。
package manager

import (
	"bufio"
	"fmt"
	"io"

	"asl/internal/invoker"
	"asl/internal/state"
)

// Manager 编排配置存储与外部运行时，实现各个子命令的语义。
type Manager struct {
	store  *state.Store
	runner invoker.Runner

	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// New 创建 Manager。
// in/out/errOut 通常为进程标准流，测试时注入缓冲区。
func New(store *state.Store, runner invoker.Runner, in io.Reader, out, errOut io.Writer) *Manager {
	return &Manager{
		store:  store,
		runner: runner,
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
	}
}

// readLine 读取一行用户输入。
// 输入以 EOF 结尾但非空时仍视为一行。
func (m *Manager) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}
