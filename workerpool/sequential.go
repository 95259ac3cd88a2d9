// Copyright 2025 The go-parsort Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import "context"

// Sequential runs every task on the calling goroutine in index order.
// Results are fully reproducible, which makes it the scheduler of choice for
// tests and for PARSORT_SEQUENTIAL.
var Sequential Scheduler = sequential{}

type sequential struct{}

func (sequential) Run(ctx context.Context, n int, task func(i int) error) error {
	if n <= 0 {
		return nil
	}
	b := newBatch(ctx, n, task, nil)
	for i := range n {
		if b.exec(i) != nil {
			break
		}
	}
	return b.result()
}
