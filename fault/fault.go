// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceViolation     = ProcessError("sub-tree heights differ by more than one")
	ErrCountMismatch        = ProcessError("count does not match number of nodes")
	ErrEmptyContainer       = EmptyError("container is empty")
	ErrHeightMismatch       = ProcessError("stored height is incorrect")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidDataDirectory = InvalidError("invalid data directory")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOrder         = InvalidError("invalid traversal order")
	ErrInvalidPolicy        = InvalidError("invalid deletion side policy")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidValue         = InvalidError("invalid value")
	ErrInvalidValueType     = InvalidError("invalid value type")
	ErrIteratorExhausted    = ProcessError("iterator is exhausted")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrMissingConfigTable   = InvalidError("configuration did not return a table")
	ErrNoPriorMatch         = NotFoundError("no prior successful find")
	ErrNotPlainFileName     = InvalidError("file name must not contain a directory")
	ErrOrderViolation       = ProcessError("values are out of order")
	ErrUnknownCommand       = NotFoundError("unknown command")
	ErrValueNotFound        = NotFoundError("value not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrEmpty(e error) bool    { _, ok := e.(EmptyError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
