// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"bytes"
	"testing"

	"github.com/hashmint/tokend/messagebus"
)

// test send and receive ordering
func TestQueue(t *testing.T) {
	queue := messagebus.Bus.TestQueue
	defer queue.Drain()

	queue.Send("c1", []byte("one"))
	queue.Send("c2", []byte("two"), []byte("extra"))

	m := <-queue.Chan()
	if "c1" != m.Command {
		t.Errorf("command: %q  expected: %q", m.Command, "c1")
	}
	if 1 != len(m.Parameters) || !bytes.Equal([]byte("one"), m.Parameters[0]) {
		t.Errorf("parameters: %v", m.Parameters)
	}

	m = <-queue.Chan()
	if "c2" != m.Command {
		t.Errorf("command: %q  expected: %q", m.Command, "c2")
	}
	if 2 != len(m.Parameters) {
		t.Errorf("parameter count: %d  expected: 2", len(m.Parameters))
	}
}

// test that a full queue drops rather than blocks
func TestQueueOverflow(t *testing.T) {
	queue := messagebus.Bus.TestQueue
	defer queue.Drain()

	// over-fill: capacity is 50
	for i := 0; i < 100; i += 1 {
		queue.Send("flood")
	}

	n := 0
drain:
	for {
		select {
		case <-queue.Chan():
			n += 1
		default:
			break drain
		}
	}
	if 50 != n {
		t.Errorf("queued: %d messages  expected: 50", n)
	}
}
