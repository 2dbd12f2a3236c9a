//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false；设置 PARTICLEFIELD_MOBILE_EMULATE=1 可模拟移动端指针行为
func IsMobile() bool {
	return os.Getenv("PARTICLEFIELD_MOBILE_EMULATE") == "1"
}
