// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"encoding/binary"

	"github.com/hashmint/tokend/messagebus"
)

// event commands published on the event queue
const (
	EventCreated     = "created"     // token id, owner
	EventPriceSet    = "price-set"   // token id, owner, price (empty = cleared)
	EventTransferred = "transferred" // token id, from, to
	EventBought      = "bought"      // token id, seller, buyer, price
)

// publish an event after a commit
func publish(command string, parameters ...[]byte) {
	messagebus.Bus.Events.Send(command, parameters...)
}

// 8 byte big endian price, empty slice for a cleared price
func packPrice(price *uint64) []byte {
	if nil == price {
		return []byte{}
	}
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, *price)
	return buffer
}
