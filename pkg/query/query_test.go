// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/cmsadmin/pkg/query"
)

func TestStringSlice(t *testing.T) {
	assert.Nil(t, query.StringSlice(""))
	assert.Equal(t, []string{"1", "2"}, query.StringSlice(" 1, ,2 "))
}

func TestIntSlice(t *testing.T) {
	ids, err := query.IntSlice([]string{"1", " 2"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)

	_, err = query.IntSlice([]string{"1", "admin"})
	assert.Error(t, err)
}

func TestPair(t *testing.T) {
	key, value := query.Pair("title:wysiwyg", "text")
	assert.Equal(t, "title", key)
	assert.Equal(t, "wysiwyg", value)

	key, value = query.Pair("title", "text")
	assert.Equal(t, "title", key)
	assert.Equal(t, "text", value)
}
