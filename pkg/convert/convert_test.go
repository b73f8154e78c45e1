// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/cmsadmin/pkg/convert"
)

func TestIntOr(t *testing.T) {
	assert.Equal(t, 12, convert.IntOr("12", 5))
	assert.Equal(t, 12, convert.IntOr(" 12 ", 5))
	assert.Equal(t, -3, convert.IntOr("-3", 5))
	assert.Equal(t, 5, convert.IntOr("", 5))
	assert.Equal(t, 5, convert.IntOr("ten", 5))
}

func TestAtLeast(t *testing.T) {
	assert.Equal(t, 1, convert.AtLeast("1", 1, 10))
	assert.Equal(t, 10, convert.AtLeast("0", 1, 10))
	assert.Equal(t, 0, convert.AtLeast("-4", 0, 0))
	assert.Equal(t, 10, convert.AtLeast("x", 1, 10))
}
