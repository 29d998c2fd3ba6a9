package models

import (
	"strings"
	"unicode"
)

// ===========================================================================
// Slug helper
// Sinh slug cho Project/Article/Category từ tiêu đề
// Có bảng chuyển đổi dấu tiếng Việt vì phần lớn tiêu đề nhập bằng tiếng Việt
// ===========================================================================

// vietnameseReplacer chuyển ký tự có dấu về không dấu
var vietnameseReplacer = strings.NewReplacer(
	"à", "a", "á", "a", "ạ", "a", "ả", "a", "ã", "a",
	"â", "a", "ầ", "a", "ấ", "a", "ậ", "a", "ẩ", "a", "ẫ", "a",
	"ă", "a", "ằ", "a", "ắ", "a", "ặ", "a", "ẳ", "a", "ẵ", "a",
	"è", "e", "é", "e", "ẹ", "e", "ẻ", "e", "ẽ", "e",
	"ê", "e", "ề", "e", "ế", "e", "ệ", "e", "ể", "e", "ễ", "e",
	"ì", "i", "í", "i", "ị", "i", "ỉ", "i", "ĩ", "i",
	"ò", "o", "ó", "o", "ọ", "o", "ỏ", "o", "õ", "o",
	"ô", "o", "ồ", "o", "ố", "o", "ộ", "o", "ổ", "o", "ỗ", "o",
	"ơ", "o", "ờ", "o", "ớ", "o", "ợ", "o", "ở", "o", "ỡ", "o",
	"ù", "u", "ú", "u", "ụ", "u", "ủ", "u", "ũ", "u",
	"ư", "u", "ừ", "u", "ứ", "u", "ự", "u", "ử", "u", "ữ", "u",
	"ỳ", "y", "ý", "y", "ỵ", "y", "ỷ", "y", "ỹ", "y",
	"đ", "d",
)

// Slugify chuyển tiêu đề thành slug URL-safe
// VD: "Căn hộ Quận 7" → "can-ho-quan-7"
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = vietnameseReplacer.Replace(s)

	var b strings.Builder
	b.Grow(len(s))
	prevDash := true // chặn dash ở đầu chuỗi
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) && r <= unicode.MaxASCII, unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
