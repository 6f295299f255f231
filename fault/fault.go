// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	ExistsError   GenericError
	InvalidError  GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ProcessError("already initialised")
	CannotDecodeIdentifier       = InvalidError("cannot decode identifier")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	DatabaseIsNotSet             = ProcessError("database is not set")
	IdentifierCollision          = ExistsError("identifier collision")
	IdentifierNotFound           = NotFoundError("identifier not found")
	InvalidIpAddress             = InvalidError("invalid ip Address")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	ListIsCorrupt                = ProcessError("list is corrupt")
	MissingParameters            = InvalidError("missing parameters")
	NotIdentifier                = InvalidError("not identifier")
	NotInitialised               = ProcessError("not initialised")
	RateLimiting                 = ProcessError("rate limiting")
	SentinelIdentifier           = InvalidError("sentinel identifier")
	TransactionIsInUse           = ProcessError("transaction is in use")
	WrongNodeRecordLength        = InvalidError("wrong node record length")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
