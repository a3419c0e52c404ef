// Package invoker 封装对外部容器运行时命令的调用。
//
// 两种调用模式：
//   - 捕获模式（Run/Output）：以子进程方式执行并等待退出，
//     非零退出码以错误形式交由调用方解释。
//   - 替换模式（Replace）：用运行时替换当前进程映像，
//     保留控制终端语义，成功时不再返回。
package invoker

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"

	aslerrors "asl/pkg/errors"
)

// 环境变量名
const RuntimeEnvVar = "ASL_RUNTIME"

// 默认的外部运行时二进制名
const DefaultRuntime = "container"

// Runner 抽象对外部容器运行时的调用。
type Runner interface {
	// Run 以透传 stdio 的方式执行，非零退出码返回错误。
	Run(args ...string) error

	// Output 执行并捕获 stdout，stderr 仍透传。
	Output(args ...string) (string, error)

	// Replace 用外部运行时替换当前进程映像。
	// 成功时不返回；仅在启动失败时返回错误。
	Replace(args []string, env []string) error
}

// CLI 通过子进程调用外部运行时二进制。
type CLI struct {
	Binary string
}

// New 创建运行时调用器。
// binary 为空时，按优先级使用：
// 1. ASL_RUNTIME 环境变量
// 2. 默认值 container
func New(binary string) *CLI {
	if binary == "" {
		binary = os.Getenv(RuntimeEnvVar)
	}
	if binary == "" {
		binary = DefaultRuntime
	}
	return &CLI{Binary: binary}
}

// Run 执行外部运行时并透传 stdout/stderr。
func (c *CLI) Run(args ...string) error {
	cmd := exec.Command(c.Binary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return c.wrapRunError(args, err)
	}
	return nil
}

// Output 执行外部运行时并捕获 stdout。
func (c *CLI) Output(args ...string) (string, error) {
	var buf bytes.Buffer
	cmd := exec.Command(c.Binary, args...)
	cmd.Stdout = &buf
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", c.wrapRunError(args, err)
	}
	return buf.String(), nil
}

// Replace 用外部运行时替换当前进程映像。
// 子孙进程继承 PID、标准流与控制终端。
func (c *CLI) Replace(args []string, env []string) error {
	path, err := exec.LookPath(c.Binary)
	if err != nil {
		return fmt.Errorf("%w: %s", aslerrors.ErrRuntimeNotFound, c.Binary)
	}

	argv := append([]string{c.Binary}, args...)
	if err := unix.Exec(path, argv, env); err != nil {
		return fmt.Errorf("exec %s: %w", c.Binary, err)
	}
	return nil
}

// wrapRunError 把子进程错误翻译为可判别的错误值。
func (c *CLI) wrapRunError(args []string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %s", aslerrors.ErrRuntimeNotFound, c.Binary)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%s %s: exit status %d",
			c.Binary, strings.Join(args, " "), exitErr.ExitCode())
	}
	return fmt.Errorf("run %s: %w", c.Binary, err)
}
