// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/hashmint/tokend/fault"
	"github.com/hashmint/tokend/tokenid"
)

// the owner list record is the plain concatenation of token ids
// since every id is a fixed 32 bytes no length prefixes are needed

// pack a list of token ids into its stored form
func packList(list []tokenid.Digest) []byte {
	buffer := make([]byte, 0, len(list)*tokenid.Length)
	for _, id := range list {
		buffer = append(buffer, id[:]...)
	}
	return buffer
}

// unpack a stored owner list record
func unpackList(buffer []byte) ([]tokenid.Digest, error) {
	if 0 != len(buffer)%tokenid.Length {
		return nil, fault.ErrNotOwnershipRecord
	}

	list := make([]tokenid.Digest, len(buffer)/tokenid.Length)
	for i := 0; i < len(list); i += 1 {
		copy(list[i][:], buffer[i*tokenid.Length:])
	}
	return list, nil
}

// position of a token id in a list, -1 if absent
func indexOf(list []tokenid.Digest, tokenId tokenid.Digest) int {
	for i, id := range list {
		if tokenId == id {
			return i
		}
	}
	return -1
}
