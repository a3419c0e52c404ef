package state

import (
	"sort"
	"time"
)

// Config 是持久化的工具配置。
// 此结构体序列化为状态目录下的 config.json。
// 每个命令先完整载入内存，变更后整体覆盖写回。
type Config struct {
	// 默认发行版标识符
	DefaultDistro string `json:"defaultDistro"`

	// 已安装发行版：标识符 → 元数据
	Distros map[string]DistroInfo `json:"distros"`
}

// DistroInfo 记录一个已安装发行版的元数据。
// 安装成功时创建，卸载成功时删除。
type DistroInfo struct {
	// 本地镜像引用（asl-<id>:latest）
	Path string `json:"path"`

	// 显示名称
	Name string `json:"name"`

	// 安装时间（RFC 3339，截断到秒以保证往返一致）
	Created time.Time `json:"created"`
}

// SortedIDs 返回按字典序排序的已安装发行版标识符。
func (c *Config) SortedIDs() []string {
	ids := make([]string, 0, len(c.Distros))
	for id := range c.Distros {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
