package effects

import "strings"

// 减少动态效果的环境变量
var reducedMotionEnv = []string{"PARTICLEFIELD_REDUCED_MOTION", "REDUCED_MOTION"}

// DetectReducedMotion 判断是否应减少动态效果
//
// 用户偏好为 true，或任一环境变量为 1/true/yes/reduce 时返回 true。
// 返回 true 时宿主不启动粒子场动画。
func DetectReducedMotion(userPref bool, getenv func(string) string) bool {
	if userPref {
		return true
	}
	if getenv == nil {
		return false
	}
	for _, key := range reducedMotionEnv {
		switch strings.ToLower(strings.TrimSpace(getenv(key))) {
		case "1", "true", "yes", "reduce":
			return true
		}
	}
	return false
}
