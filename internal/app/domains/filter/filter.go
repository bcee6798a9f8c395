package filter

import "strings"

// State 页面内过滤条件（瞬态，不持久化，页面加载时重建）
type State struct {
	SearchTerm string
	Status     string
}

// Active 是否有任一过滤条件生效
func (s State) Active() bool {
	return strings.TrimSpace(s.SearchTerm) != "" || s.Status != ""
}

// Match 判断单个实体是否命中
// 搜索词对 2-4 个字符串字段做大小写不敏感子串匹配，状态为精确匹配
func Match(fields []string, status string, st State) bool {
	if st.Status != "" && status != st.Status {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(st.SearchTerm))
	if term == "" {
		return true
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Apply 对实体列表应用过滤条件（纯函数、幂等）
func Apply[T any](items []T, st State, fieldsOf func(T) []string, statusOf func(T) string) []T {
	if !st.Active() {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if Match(fieldsOf(item), statusOf(item), st) {
			out = append(out, item)
		}
	}
	return out
}
