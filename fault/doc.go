// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances for the ledger and its services
//
// every error belongs to a kind (invalid, not found, exists,
// conflict, unauthorised, version conflict, storage, process) so
// callers test with IsErrXxx instead of matching message text; a
// wrapped error keeps its kind through errors.Cause.
//
// PartialFailure reports a transaction applied to the ledger whose
// audit record is still pending.
package fault
