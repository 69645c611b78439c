// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queues for event notifications
//
// The registry publishes one message per completed operation after its
// transaction commits.  Delivery is best effort: a full queue drops
// the message rather than blocking a registry operation.
package messagebus

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// Message - the message sent into a queue
type Message struct {
	Command    string   // type of the message
	Parameters [][]byte // message params
}

// Queue - a 1:1 message queue
type Queue struct {
	sync.Mutex
	c    chan Message
	used bool
}

// the exported message queues
type busses struct {
	Events    *Queue `size:"1000"` // registry operation events
	TestQueue *Queue `size:"50"`   // for testing use
}

// Bus - all available message queues
var Bus busses

// initialise all queues with the sizes from their tags
func init() {
	busType := reflect.TypeOf(Bus)
	busValue := reflect.ValueOf(&Bus).Elem()

	for i := 0; i < busType.NumField(); i += 1 {

		fieldInfo := busType.Field(i)
		sizeTag := fieldInfo.Tag.Get("size")

		queueSize, err := strconv.Atoi(sizeTag)
		if nil != err || queueSize < 1 {
			m := fmt.Sprintf("queue: %v has invalid size: %q", fieldInfo, sizeTag)
			panic(m)
		}

		q := &Queue{
			c: make(chan Message, queueSize),
		}
		busValue.Field(i).Set(reflect.ValueOf(q))
	}
}

// Send - send a message to a queue
//
// non-blocking: the message is dropped when the queue is full
func (queue *Queue) Send(command string, parameters ...[]byte) {
	queue.Lock()
	defer queue.Unlock()

	if queue.used {
		return
	}
	select {
	case queue.c <- Message{Command: command, Parameters: parameters}:
	default:
	}
}

// Chan - channel to read from a queue
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Release - shut down a queue, pending messages are discarded
func (queue *Queue) Release() {
	queue.Lock()
	defer queue.Unlock()

	if queue.used {
		return
	}
	queue.used = true
	close(queue.c)
}

// Drain - discard any messages currently in a queue
func (queue *Queue) Drain() {
	for {
		select {
		case <-queue.c:
		default:
			return
		}
	}
}
