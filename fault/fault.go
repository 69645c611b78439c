// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AuthorizationError GenericError
type CapacityError GenericError
type ConflictError GenericError
type DependencyError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ProcessError("already initialised")
	ErrBalanceOverflow          = ProcessError("balance overflow")
	ErrBidPriceTooLow           = ConflictError("bid price is below asking price")
	ErrBuyerIsTokenOwner        = ConflictError("buyer already owns this token")
	ErrCannotDecodeAccount      = RecordError("cannot decode account")
	ErrChecksumMismatch         = ProcessError("checksum mismatch")
	ErrCounterOverflow          = CapacityError("token counter overflow")
	ErrInsufficientBalance      = DependencyError("insufficient balance to buy token")
	ErrInsufficientFunds        = DependencyError("insufficient funds for transfer")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidDnaLength         = InvalidError("invalid dna length")
	ErrInvalidKeyLength         = InvalidError("invalid key length")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidLoggerChannel     = ProcessError("invalid logger channel")
	ErrInvalidOwner             = InvalidError("invalid owner")
	ErrInvalidPrice             = InvalidError("invalid price")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrInvalidTokenIdLength     = InvalidError("invalid token id length")
	ErrKeepAliveLimit           = DependencyError("transfer would reduce balance below minimum")
	ErrNotInitialised           = ProcessError("not initialised")
	ErrNotPublicKey             = RecordError("not a public key")
	ErrNotOwnedItem             = NotFoundError("item is not owned")
	ErrNotOwnershipRecord       = RecordError("not ownership record")
	ErrNotTokenOwner            = AuthorizationError("not token owner")
	ErrNotTokenRecord           = RecordError("not token record")
	ErrOwnerCapacityExceeded    = CapacityError("owner holds maximum number of tokens")
	ErrTokenAlreadyExists       = ConflictError("token already exists")
	ErrTokenNotForSale          = ConflictError("token is not for sale")
	ErrTokenNotFound            = NotFoundError("token not found")
	ErrTransactionAlreadyInUse  = ProcessError("transaction already in use")
	ErrTransferToSelf           = ConflictError("cannot transfer token to self")
	ErrWrongNetworkForPublicKey = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorizationError) Error() string { return string(e) }
func (e CapacityError) Error() string      { return string(e) }
func (e ConflictError) Error() string      { return string(e) }
func (e DependencyError) Error() string    { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorization(e error) bool { _, ok := e.(AuthorizationError); return ok }
func IsErrCapacity(e error) bool      { _, ok := e.(CapacityError); return ok }
func IsErrConflict(e error) bool      { _, ok := e.(ConflictError); return ok }
func IsErrDependency(e error) bool    { _, ok := e.(DependencyError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
