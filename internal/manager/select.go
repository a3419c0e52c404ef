package manager

import (
	"fmt"
	"strconv"
	"strings"

	aslerrors "asl/pkg/errors"
)

// chooseFrom 打印 1 起始的编号菜单并读取用户选择。
// ids 必须已排序；解析失败或超出范围返回 ErrInvalidSelection。
func (m *Manager) chooseFrom(ids []string) (string, error) {
	for i, id := range ids {
		fmt.Fprintf(m.out, "%3d) %s\n", i+1, id)
	}
	fmt.Fprintf(m.out, "Select a distribution [1-%d]: ", len(ids))

	line, err := m.readLine()
	if err != nil {
		return "", err
	}

	answer := strings.TrimSpace(line)
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(ids) {
		return "", fmt.Errorf("%w: %q", aslerrors.ErrInvalidSelection, answer)
	}

	return ids[n-1], nil
}
