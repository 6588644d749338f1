// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetDataNotifies(t *testing.T) {
	ds := New(Datum{"v": 1})
	assert.Equal(t, 1, ds.Len())

	calls := 0
	id := ds.OnUpdate(func() { calls++ })
	ds.SetData(Datum{"v": 2}, Datum{"v": 3})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, 3, ds.Data()[1]["v"])

	ds.OffUpdate(id)
	ds.SetData()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, ds.Len())
}

func TestMultipleSubscribers(t *testing.T) {
	ds := New()
	a, b := 0, 0
	ds.OnUpdate(func() { a++ })
	idB := ds.OnUpdate(func() { b++ })
	ds.SetData(Datum{"v": 1})
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)

	// Handles are independent: removing one leaves the other live.
	ds.OffUpdate(idB)
	ds.SetData(Datum{"v": 2})
	assert.Equal(t, 2, a)
	assert.Equal(t, 1, b)
}
