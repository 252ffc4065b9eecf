// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"

	"github.com/pkg/errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConflictError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type StorageError GenericError
type UnauthorisedError GenericError
type VersionConflictError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrAssetExists                  = ExistsError("asset already exists")
	ErrAssetNotFound                = NotFoundError("asset not found")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrConcurrentTransfer           = ConflictError("asset changed by a concurrent transfer")
	ErrCorruptRecord                = StorageError("stored record is corrupt")
	ErrDatabaseMismatch             = ProcessError("batch spans more than one database")
	ErrIdentifierOutOfRange         = InvalidError("asset identifier out of range")
	ErrIdentifiersExhausted         = ProcessError("no free asset identifier")
	ErrInvalidAssetType             = InvalidError("invalid asset type")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidDataDirectory         = InvalidError("invalid data directory")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidIdentifier            = InvalidError("invalid asset identifier")
	ErrInvalidLoggerChannel         = ProcessError("invalid logger channel")
	ErrInvalidPortNumber            = InvalidError("invalid port number")
	ErrInvalidRecordKind            = InvalidError("invalid transaction record kind")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotAvailable                 = ProcessError("not available in current mode")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrNotOwner                     = UnauthorisedError("requester is not the current owner")
	ErrNotPlainFileName             = InvalidError("file name must not contain a directory")
	ErrOwnerNotFound                = NotFoundError("owner not found")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrRequiredOwner                = InvalidError("owner is required")
	ErrRequiredRequester            = InvalidError("requester is required")
	ErrRequiredTitle                = InvalidError("title is required")
	ErrRequiredTransactionId        = InvalidError("transaction id is required")
	ErrStorageUnavailable           = StorageError("storage unavailable")
	ErrTransactionIdReused          = ExistsError("transaction id already used for a different operation")
	ErrTransactionNotFound          = NotFoundError("transaction not found")
	ErrUnknownFunction              = InvalidError("unknown function")
	ErrUnsupportedConfiguration     = InvalidError("unsupported configuration file type")
	ErrVersionConflict              = VersionConflictError("asset version does not match")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConflictError) Error() string        { return string(e) }
func (e ExistsError) Error() string          { return string(e) }
func (e InvalidError) Error() string         { return string(e) }
func (e NotFoundError) Error() string        { return string(e) }
func (e ProcessError) Error() string         { return string(e) }
func (e StorageError) Error() string         { return string(e) }
func (e UnauthorisedError) Error() string    { return string(e) }
func (e VersionConflictError) Error() string { return string(e) }

// determine the class of an error
func IsErrConflict(e error) bool {
	switch errors.Cause(e).(type) {
	case ConflictError, ExistsError:
		return true
	}
	return false
}
func IsErrExists(e error) bool          { _, ok := errors.Cause(e).(ExistsError); return ok }
func IsErrInvalid(e error) bool         { _, ok := errors.Cause(e).(InvalidError); return ok }
func IsErrNotFound(e error) bool        { _, ok := errors.Cause(e).(NotFoundError); return ok }
func IsErrProcess(e error) bool         { _, ok := errors.Cause(e).(ProcessError); return ok }
func IsErrStorage(e error) bool         { _, ok := errors.Cause(e).(StorageError); return ok }
func IsErrUnauthorised(e error) bool    { _, ok := errors.Cause(e).(UnauthorisedError); return ok }
func IsErrVersionConflict(e error) bool { _, ok := errors.Cause(e).(VersionConflictError); return ok }

// PartialFailure - the ledger was updated but the audit record is
// still pending after all append attempts were used
type PartialFailure struct {
	AssetId uint64
	TxId    string
	Err     error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("ledger updated for asset: %d but audit of transaction: %q is pending: %s", e.AssetId, e.TxId, e.Err)
}

// Unwrap - the last append error
func (e *PartialFailure) Unwrap() error { return e.Err }

// IsErrPartialFailure - detect a partial failure
func IsErrPartialFailure(e error) bool {
	var pf *PartialFailure
	return errors.As(e, &pf)
}

// Kind - name of the error class, as reported to remote callers
func Kind(e error) string {
	if nil == e {
		return "OK"
	}
	if IsErrPartialFailure(e) {
		return "PartialFailure"
	}
	switch errors.Cause(e).(type) {
	case InvalidError:
		return "ValidationError"
	case NotFoundError:
		return "NotFound"
	case ConflictError, ExistsError, VersionConflictError:
		return "Conflict"
	case UnauthorisedError:
		return "Unauthorized"
	case StorageError:
		return "StorageUnavailable"
	}
	return "ProcessError"
}
