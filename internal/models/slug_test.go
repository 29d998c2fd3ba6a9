package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Căn hộ Quận 7", "can-ho-quan-7"},
		{"Thiết kế nội thất biệt thự", "thiet-ke-noi-that-biet-thu"},
		{"  Văn phòng   hiện đại  ", "van-phong-hien-dai"},
		{"Penthouse 2024!", "penthouse-2024"},
		{"Dự án --- đặc biệt", "du-an-dac-biet"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "Slugify(%q)", tc.title)
	}
}
