// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/hashmint/tokend/account"
	"github.com/hashmint/tokend/fault"
	"github.com/hashmint/tokend/storage"
	"github.com/hashmint/tokend/tokenid"
)

// Buy - purchase a listed token at or above its asking price
//
// the buyer pays the bid, not the ask.  The currency transfer runs
// with the keep alive restriction and before the registry commit, so
// any ledger refusal aborts the purchase with neither side changed.
func Buy(buyer *account.Account, tokenId tokenid.Digest, bidPrice uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if nil == buyer {
		return fault.ErrInvalidOwner
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	token, err := readToken(trx, tokenId)
	if nil != err {
		trx.Abort()
		return err
	}

	if token.Owner.Equal(buyer) {
		trx.Abort()
		return fault.ErrBuyerIsTokenOwner
	}

	if nil == token.Price {
		trx.Abort()
		return fault.ErrTokenNotForSale
	}

	if bidPrice < *token.Price {
		trx.Abort()
		return fault.ErrBidPriceTooLow
	}

	if globalData.ledger.BalanceOf(buyer) < bidPrice {
		trx.Abort()
		return fault.ErrInsufficientBalance
	}

	seller := token.Owner

	err = moveToken(trx, tokenId, token, buyer)
	if nil != err {
		trx.Abort()
		return err
	}

	// the payment is the point of no return: a refusal here must leave
	// the registry untouched, so it precedes the commit
	err = globalData.ledger.Transfer(buyer, seller, bidPrice, true)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}

	price := bidPrice
	globalData.log.Infof("bought: %s by: %s from: %s for: %d", tokenId, buyer, seller, bidPrice)
	publish(EventBought, tokenId[:], seller.Bytes(), buyer.Bytes(), packPrice(&price))

	return nil
}
