// Package catalog 定义受支持的发行版目录。
//
// 目录是编译期固定的封闭集合：新增发行版只需修改查找表，
// 不引入新的代码路径。
package catalog

import (
	"fmt"
	"sort"
	"strings"

	aslerrors "asl/pkg/errors"
)

// TagPrefix 是本地镜像的命名前缀。
// 安装后的镜像统一打标为 asl-<id>:latest，与上游引用区分开。
const TagPrefix = "asl-"

// DefaultID 是首次运行时写入配置的默认发行版。
const DefaultID = "ubuntu"

// Distro 是目录中的一个发行版条目。
type Distro struct {
	// 短标识符（目录键）
	ID string

	// 显示名称
	Name string

	// 规范远端镜像引用
	Image string

	// 容器内的登录 shell
	Shell string
}

// distros 是全部受支持的发行版。
var distros = map[string]Distro{
	"alpine": {
		ID:    "alpine",
		Name:  "Alpine Linux",
		Image: "docker.io/library/alpine:latest",
		Shell: "/bin/sh",
	},
	"arch": {
		ID:    "arch",
		Name:  "Arch Linux",
		Image: "docker.io/library/archlinux:latest",
		Shell: "/bin/bash",
	},
	"debian": {
		ID:    "debian",
		Name:  "Debian",
		Image: "docker.io/library/debian:latest",
		Shell: "/bin/bash",
	},
	"fedora": {
		ID:    "fedora",
		Name:  "Fedora",
		Image: "docker.io/library/fedora:latest",
		Shell: "/bin/bash",
	},
	"ubuntu": {
		ID:    "ubuntu",
		Name:  "Ubuntu",
		Image: "docker.io/library/ubuntu:latest",
		Shell: "/bin/bash",
	},
}

// Lookup 按标识符查找发行版条目。
// 标识符不在目录中时返回 ErrUnknownDistro。
func Lookup(id string) (Distro, error) {
	d, ok := distros[id]
	if !ok {
		return Distro{}, fmt.Errorf("%w: %q (supported: %s)",
			aslerrors.ErrUnknownDistro, id, strings.Join(IDs(), ", "))
	}
	return d, nil
}

// IDs 返回按字典序排序的全部发行版标识符。
func IDs() []string {
	ids := make([]string, 0, len(distros))
	for id := range distros {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TaggedName 返回发行版的本地镜像引用（asl-<id>:latest）。
func TaggedName(id string) string {
	return TagPrefix + id + ":latest"
}
