// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdMap(t *testing.T) {
	om := New[string, int]()
	om.Add("key0", 0)
	om.Add("key1", 1)
	om.Add("key2", 2)

	assert.Equal(t, 1, om.ValueByKey("key1"))
	idx, ok := om.IndexByKeyTry("key2")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	assert.Equal(t, 3, om.Len())

	om.DeleteKey("key1")
	assert.Equal(t, 2, om.ValueByIndex(1))
	assert.Equal(t, "key2", om.KeyByIndex(1))
	assert.Equal(t, 2, om.Len())

	_, ok = om.ValueByKeyTry("key1")
	assert.False(t, ok)

	om.Add("key0", 42)
	assert.Equal(t, 2, om.Len())
	assert.Equal(t, 42, om.ValueByIndex(0))

	assert.Equal(t, []string{"key0", "key2"}, om.Keys())
	assert.Equal(t, []int{42, 2}, om.Values())
}

func TestOrdMapZeroValue(t *testing.T) {
	var om Map[string, int]
	assert.Equal(t, 0, om.Len())
	om.Add("a", 1)
	assert.Equal(t, 1, om.ValueByKey("a"))

	om.Reset()
	assert.Equal(t, 0, om.Len())
}

func TestOrdMapDeleteMissing(t *testing.T) {
	om := New[string, int]()
	om.Add("a", 1)
	assert.False(t, om.DeleteKey("b"))
	assert.Equal(t, 1, om.Len())
}
