// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/hashmint/tokend/currency"
	"github.com/hashmint/tokend/currency/mocks"
	"github.com/hashmint/tokend/fault"
	"github.com/hashmint/tokend/registry"
	"github.com/hashmint/tokend/tokenid"
)

// test a purchase at the bid price moves token and funds together
func TestBuy(t *testing.T) {
	pool := currency.NewPool(0)
	setup(t, 10, pool)
	defer teardown(t)

	_ = pool.Deposit(bob, 1000)

	tokenId, err := registry.Mint(alice)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
	price := uint64(100)
	err = registry.SetPrice(alice, tokenId, &price)
	if nil != err {
		t.Fatalf("set price error: %s", err)
	}

	// the buyer pays the bid, not the ask
	err = registry.Buy(bob, tokenId, 150)
	if nil != err {
		t.Fatalf("buy error: %s", err)
	}

	token, _ := registry.Show(tokenId)
	if nil != token.Price {
		t.Errorf("price survived the purchase: %d", *token.Price)
	}
	checkAgreement(t, tokenId, bob)

	assert.Equal(t, uint64(850), pool.BalanceOf(bob), "buyer balance")
	assert.Equal(t, uint64(150), pool.BalanceOf(alice), "seller balance")
}

// test all buy refusals in their checking order
func TestBuyRefusals(t *testing.T) {
	pool := currency.NewPool(0)
	setup(t, 10, pool)
	defer teardown(t)

	_ = pool.Deposit(bob, 50)

	tokenId, err := registry.Mint(alice)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}

	err = registry.Buy(nil, tokenId, 100)
	if fault.ErrInvalidOwner != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrInvalidOwner)
	}

	err = registry.Buy(bob, tokenid.Digest{0xde, 0xad}, 100)
	if fault.ErrTokenNotFound != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrTokenNotFound)
	}

	err = registry.Buy(alice, tokenId, 100)
	if fault.ErrBuyerIsTokenOwner != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrBuyerIsTokenOwner)
	}

	err = registry.Buy(bob, tokenId, 100)
	if fault.ErrTokenNotForSale != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrTokenNotForSale)
	}

	price := uint64(100)
	err = registry.SetPrice(alice, tokenId, &price)
	if nil != err {
		t.Fatalf("set price error: %s", err)
	}

	err = registry.Buy(bob, tokenId, 99)
	if fault.ErrBidPriceTooLow != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrBidPriceTooLow)
	}

	// balance covers the ask but not the bid
	err = registry.Buy(bob, tokenId, 100)
	if fault.ErrInsufficientBalance != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrInsufficientBalance)
	}

	// nothing changed on either side
	checkAgreement(t, tokenId, alice)
	token, _ := registry.Show(tokenId)
	if nil == token.Price || 100 != *token.Price {
		t.Errorf("listing disturbed by refused purchases")
	}
	assert.Equal(t, uint64(50), pool.BalanceOf(bob), "buyer balance")
	assert.Equal(t, uint64(0), pool.BalanceOf(alice), "seller balance")
}

// test a full recipient cannot buy
func TestBuyCapacity(t *testing.T) {
	pool := currency.NewPool(0)
	setup(t, 1, pool)
	defer teardown(t)

	_ = pool.Deposit(bob, 1000)

	tokenId, err := registry.Mint(alice)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
	price := uint64(100)
	_ = registry.SetPrice(alice, tokenId, &price)

	_, err = registry.Mint(bob)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}

	err = registry.Buy(bob, tokenId, 100)
	if fault.ErrOwnerCapacityExceeded != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrOwnerCapacityExceeded)
	}

	checkAgreement(t, tokenId, alice)
	assert.Equal(t, uint64(1000), pool.BalanceOf(bob), "buyer balance unchanged")
}

// test a ledger refusal aborts the purchase with the registry untouched
func TestBuyLedgerFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ledgerDown := errors.New("ledger offline")

	ledger := mocks.NewMockLedger(ctl)
	ledger.EXPECT().BalanceOf(bob).Return(uint64(1000)).Times(1)
	ledger.EXPECT().Transfer(bob, alice, uint64(150), true).Return(ledgerDown).Times(1)

	setup(t, 10, ledger)
	defer teardown(t)

	tokenId, err := registry.Mint(alice)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
	price := uint64(100)
	err = registry.SetPrice(alice, tokenId, &price)
	if nil != err {
		t.Fatalf("set price error: %s", err)
	}

	// the ledger error is passed through opaquely
	err = registry.Buy(bob, tokenId, 150)
	assert.Equal(t, ledgerDown, err, "buy error")

	// seller still owns the listed token, buyer gained nothing
	checkAgreement(t, tokenId, alice)
	token, _ := registry.Show(tokenId)
	if nil == token.Price || 100 != *token.Price {
		t.Errorf("listing disturbed by aborted purchase")
	}
	list, _ := registry.Owned(bob)
	if 0 != len(list) {
		t.Errorf("buyer gained tokens from an aborted purchase")
	}
}

// test the keep alive restriction of the real ledger blocks a draining buy
func TestBuyKeepAlive(t *testing.T) {
	pool := currency.NewPool(10)
	setup(t, 10, pool)
	defer teardown(t)

	_ = pool.Deposit(bob, 100)

	tokenId, err := registry.Mint(alice)
	if nil != err {
		t.Fatalf("mint error: %s", err)
	}
	price := uint64(95)
	_ = registry.SetPrice(alice, tokenId, &price)

	// would leave 5, below the minimum viable balance of 10
	err = registry.Buy(bob, tokenId, 95)
	if fault.ErrKeepAliveLimit != err {
		t.Fatalf("error: %v  expected: %v", err, fault.ErrKeepAliveLimit)
	}

	checkAgreement(t, tokenId, alice)
	assert.Equal(t, uint64(100), pool.BalanceOf(bob), "buyer balance unchanged")
}
