package article

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify kebab 化：小写，连续非字母数字折叠为单个连字符，去掉首尾连字符
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	return b.String()
}

// MakeSlug 由标题和作者ID确定性派生 slug
// 追加作者ID用于区分不同作者的同名标题，无随机数、无计数器
func MakeSlug(title string, authorID uint) string {
	return fmt.Sprintf("%s-%d", Slugify(title), authorID)
}
