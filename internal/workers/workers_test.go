// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The pdfplace Authors

package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// countingWorker tracks how many times Run was called.
type countingWorker struct {
	runCount int
}

func (c *countingWorker) Run() {
	c.runCount++
}

// orderWorker records its id into a shared slice when run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}

func TestWorkers_RunAllWorkers(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	NewWorkers(w1, w2, w3).Run()

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_RunEmpty(t *testing.T) {
	// Should not panic with no workers.
	NewWorkers().Run()
	(&Workers{}).Run()
}

func TestWorkers_RunOrder(t *testing.T) {
	var order []int
	NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	).Run()

	assert.Equal(t, []int{1, 2, 3}, order)
}
