// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coordinator_test

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookchain/bookchaind/asset"
	"github.com/bookchain/bookchaind/audit"
	"github.com/bookchain/bookchaind/coordinator"
	"github.com/bookchain/bookchaind/fault"
	"github.com/bookchain/bookchaind/ledger"
	"github.com/bookchain/bookchaind/owner"
	"github.com/bookchain/bookchaind/transactionrecord"
	"github.com/bookchain/bookchaind/visibility"
)

func TestScenarios(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()
	c := e.coordinator

	// A: create a book, anyone sees all of it
	a, r, err := c.CreateNormalAsset("U1", asset.Fields{Title: "Dune", Author: "Frank Herbert"}, "tx1")
	assert.Nil(t, err, "A: create error")
	assert.Equal(t, asset.Identifier(1), a.Id, "A: id")
	assert.Equal(t, "U1", a.Owner, "A: owner")
	assert.Equal(t, asset.Normal, a.Type, "A: type")
	assert.Equal(t, uint64(1), a.Version, "A: version")
	assert.Equal(t, transactionrecord.Create, r.Kind, "A: record kind")

	view, err := c.ReadAsset(1, "U2")
	assert.Nil(t, err, "A: read error")
	assert.False(t, view.Redacted, "A: normal asset redacted")
	assert.Equal(t, "Frank Herbert", view.Author, "A: author")

	// B: blind box is redacted for others
	b, r, err := c.CreateBlindBox("U1", "tx2")
	assert.Nil(t, err, "B: create error")
	assert.Equal(t, asset.Identifier(2), b.Id, "B: id")
	assert.Equal(t, asset.BlindBox, b.Type, "B: type")
	assert.Equal(t, uint64(1), b.Version, "B: version")
	assert.Equal(t, transactionrecord.CreateBlindBox, r.Kind, "B: record kind")

	view, err = c.ReadAsset(2, "U2")
	assert.Nil(t, err, "B: read error")
	assert.Equal(t, "", view.Author, "B: author")
	assert.Equal(t, "not yet revealed", view.Description, "B: description")

	// C: transfer
	r, err = c.TransferOwnership(1, "U1", "U3", "tx3")
	assert.Nil(t, err, "C: transfer error")
	assert.Equal(t, "U1", r.Sender, "C: sender")
	assert.Equal(t, "U3", r.Receiver, "C: receiver")

	view, err = c.ReadAsset(1, "U3")
	assert.Nil(t, err, "C: read error")
	assert.Equal(t, "U3", view.Owner, "C: owner")

	transfers, err := c.Transactions(audit.Filter{Kind: transactionrecord.Transfer})
	assert.Nil(t, err, "C: query error")
	if assert.Equal(t, 1, len(transfers), "C: transfer records") {
		assert.Equal(t, "U1", transfers[0].Sender, "C: audit sender")
		assert.Equal(t, "U3", transfers[0].Receiver, "C: audit receiver")
		assert.Equal(t, asset.Identifier(1), transfers[0].AssetId, "C: audit asset")
	}

	// D: repeating the transfer changes nothing
	again, err := c.TransferOwnership(1, "U1", "U3", "tx3")
	assert.Nil(t, err, "D: repeat error")
	assert.Equal(t, r.TxId, again.TxId, "D: tx id")
	assert.Equal(t, r.Version, again.Version, "D: record version")
	assert.True(t, r.Timestamp.Equal(again.Timestamp), "D: timestamp")

	transfers, _ = c.Transactions(audit.Filter{Kind: transactionrecord.Transfer})
	assert.Equal(t, 1, len(transfers), "D: second audit record")

	view, _ = c.ReadAsset(1, "U3")
	assert.Equal(t, uint64(2), view.Version, "D: version")

	// E: duplicate caller assigned id
	_, _, err = c.CreateAsset(&coordinator.Create{
		AssetId: 1,
		Owner:   "U9",
		Type:    asset.Normal,
		Fields:  asset.Fields{Title: "Emma"},
		TxId:    "tx5",
	})
	assert.Equal(t, fault.ErrAssetExists, err, "E: duplicate id accepted")
	assert.Equal(t, "Conflict", fault.Kind(err), "E: error kind")

	view, _ = c.ReadAsset(1, "U3")
	assert.Equal(t, "U3", view.Owner, "E: owner changed")
	assert.Equal(t, "Dune", view.Title, "E: title changed")
	assert.Equal(t, uint64(2), view.Version, "E: version changed")
}

func TestCreateReadBack(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()

	a, _, err := e.coordinator.CreateNormalAsset("U1", dune, "tx1")
	assert.Nil(t, err, "create error")

	view, err := e.coordinator.ReadAsset(a.Id, "U1")
	assert.Nil(t, err, "read error")
	assert.Equal(t, dune, view.Fields, "fields")
	assert.Equal(t, uint64(1), view.Version, "version")
	assert.True(t, fixedTime.Equal(view.CreatedAt), "created at")
	assert.Equal(t, "tx1", view.LastTxId, "last tx id")
}

func TestCreateIdempotent(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()
	c := e.coordinator

	a1, r1, err := c.CreateNormalAsset("U1", dune, "tx1")
	assert.Nil(t, err, "first create")
	a2, r2, err := c.CreateNormalAsset("U1", dune, "tx1")
	assert.Nil(t, err, "second create")

	assert.Equal(t, a1.Id, a2.Id, "asset id")
	assert.Equal(t, r1.TxId, r2.TxId, "tx id")

	records, err := c.Transactions(audit.Filter{})
	assert.Nil(t, err, "query error")
	assert.Equal(t, 1, len(records), "audit records")

	assets, err := c.QueryAssets(nil, "")
	assert.Nil(t, err, "query error")
	assert.Equal(t, 1, len(assets), "assets")
}

func TestCreateConcurrentSameTxId(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()

	const n = 8
	ids := make(chan asset.Identifier, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, _, err := e.coordinator.CreateNormalAsset("U1", dune, "tx-same")
			assert.Nil(t, err, "create error")
			if nil != a {
				ids <- a.Id
			}
		}()
	}
	wg.Wait()
	close(ids)

	for id := range ids {
		assert.Equal(t, asset.Identifier(1), id, "duplicate create")
	}
	records, _ := e.coordinator.Transactions(audit.Filter{})
	assert.Equal(t, 1, len(records), "audit records")
}

func TestCreateValidation(t *testing.T) {
	e := setup(t, owner.NewStatic(owner.Owner{Id: "U1"}))
	defer e.teardown()
	c := e.coordinator

	_, _, err := c.CreateNormalAsset("U1", asset.Fields{Author: "Anon"}, "tx1")
	assert.Equal(t, fault.ErrRequiredTitle, err, "empty title")
	assert.Equal(t, "ValidationError", fault.Kind(err), "kind")

	_, _, err = c.CreateNormalAsset("", dune, "tx1")
	assert.Equal(t, fault.ErrRequiredOwner, err, "empty owner")

	_, _, err = c.CreateAsset(&coordinator.Create{Owner: "U1", Type: "EBOOK", TxId: "tx1"})
	assert.Equal(t, fault.ErrInvalidAssetType, err, "bad type")

	_, _, err = c.CreateNormalAsset("U2", dune, "tx1")
	assert.Equal(t, fault.ErrOwnerNotFound, err, "unknown owner")
	assert.Equal(t, "NotFound", fault.Kind(err), "kind")

	assets, _ := c.QueryAssets(nil, "")
	assert.Equal(t, 0, len(assets), "asset created by failed call")
}

func TestGeneratedTxId(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()

	_, r1, err := e.coordinator.CreateNormalAsset("U1", dune, "")
	assert.Nil(t, err, "create error")
	_, r2, err := e.coordinator.CreateNormalAsset("U1", dune, "")
	assert.Nil(t, err, "create error")

	assert.Equal(t, 36, len(r1.TxId), "uuid length")
	assert.NotEqual(t, r1.TxId, r2.TxId, "generated ids repeat")
}

func TestBlindBoxContents(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()

	expected := rand.New(rand.NewSource(randomSeed))

	for i := 0; i < 5; i += 1 {
		b, _, err := e.coordinator.CreateBlindBox("U1", "")
		assert.Nil(t, err, "create error")
		assert.Equal(t, "Mystery Box - 1600000000123", b.Title, "title")
		assert.Equal(t, "open the box to reveal the book details", b.Description, "description")
		assert.Equal(t, coordinator.BlindBoxCategories[expected.Intn(len(coordinator.BlindBoxCategories))], b.Category, "category: %d", i)

		owned, err := e.coordinator.ReadAsset(b.Id, "U1")
		assert.Nil(t, err, "read error")
		assert.Equal(t, b.Category, owned.Category, "owner sees category")
	}
}

func TestTransferErrors(t *testing.T) {
	e := setup(t, owner.NewStatic(owner.Owner{Id: "U1"}, owner.Owner{Id: "U2"}))
	defer e.teardown()
	c := e.coordinator

	_, _, err := c.CreateNormalAsset("U1", dune, "tx1")
	assert.Nil(t, err, "create error")

	_, err = c.TransferOwnership(1, "U2", "U2", "tx2")
	assert.Equal(t, fault.ErrNotOwner, err, "non owner transfer")
	assert.Equal(t, "Unauthorized", fault.Kind(err), "kind")

	_, err = c.TransferOwnership(7, "U1", "U2", "tx3")
	assert.Equal(t, fault.ErrAssetNotFound, err, "missing asset")

	_, err = c.TransferOwnership(1, "U1", "U9", "tx4")
	assert.Equal(t, fault.ErrOwnerNotFound, err, "unknown new owner")

	_, err = c.TransferOwnership(1, "", "U2", "tx5")
	assert.Equal(t, fault.ErrRequiredRequester, err, "empty requester")

	// create id reused for a transfer
	_, err = c.TransferOwnership(1, "U1", "U2", "tx1")
	assert.Equal(t, fault.ErrTransactionIdReused, err, "reused tx id")
	assert.Equal(t, "Conflict", fault.Kind(err), "kind")

	view, _ := c.ReadAsset(1, "U1")
	assert.Equal(t, "U1", view.Owner, "owner changed")
	assert.Equal(t, uint64(1), view.Version, "version changed")

	// self transfer is allowed and still versions the asset
	r, err := c.TransferOwnership(1, "U1", "U1", "tx6")
	assert.Nil(t, err, "self transfer")
	assert.Equal(t, uint64(2), r.Version, "self transfer version")
}

func TestTransferRace(t *testing.T) {
	e := setupWith(t, nil, func(s *ledger.Store) coordinator.Ledger { return racingLedger{s} })
	defer e.teardown()
	c := e.coordinator

	_, _, err := c.CreateNormalAsset("U1", dune, "tx1")
	assert.Nil(t, err, "create error")

	_, err = c.TransferOwnership(1, "U1", "U2", "tx2")
	assert.Equal(t, fault.ErrConcurrentTransfer, err, "lost race not reported")
	assert.Equal(t, "Conflict", fault.Kind(err), "kind")

	a, _ := e.store.Read(1)
	assert.Equal(t, "WINNER", a.Owner, "winner owner")
	assert.Equal(t, uint64(2), a.Version, "one transfer applied")
}

func TestConcurrentTransfers(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()
	c := e.coordinator

	_, _, err := c.CreateNormalAsset("U1", dune, "tx1")
	assert.Nil(t, err, "create error")

	const n = 10
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i += 1 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := c.TransferOwnership(1, "U1", string(rune('A'+i)), "race-"+string(rune('A'+i)))
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if nil == err {
			successes += 1
			continue
		}
		// losers either lost the version race or read after the winner
		assert.True(t, fault.IsErrConflict(err) || fault.IsErrUnauthorised(err), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, successes, "exactly one owner")

	a, _ := e.store.Read(1)
	assert.Equal(t, uint64(2), a.Version, "version")

	records, _ := c.History(1)
	assert.Equal(t, 2, len(records), "history length")
}

func TestQueryFilter(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()
	c := e.coordinator

	for i := 0; i < 6; i += 1 {
		var err error
		if 0 == i%3 {
			_, _, err = c.CreateBlindBox("U1", "")
		} else {
			_, _, err = c.CreateNormalAsset("U1", dune, "")
		}
		assert.Nil(t, err, "create: %d", i)
	}

	all, err := c.QueryAssets(nil, "U2")
	assert.Nil(t, err, "query error")
	assert.Equal(t, 6, len(all), "all assets")

	blindBox := asset.BlindBox
	boxes, err := c.QueryAssets(&blindBox, "U2")
	assert.Nil(t, err, "filtered query error")
	assert.True(t, len(boxes) <= len(all), "filtered longer than all")
	assert.Equal(t, 2, len(boxes), "blind boxes")

	ids := map[asset.Identifier]bool{}
	for _, v := range all {
		ids[v.Id] = true
	}
	previous := asset.Identifier(0)
	for _, v := range boxes {
		assert.Equal(t, asset.BlindBox, v.Type, "type")
		assert.True(t, ids[v.Id], "not in unfiltered result")
		assert.True(t, v.Id > previous, "order")
		assert.True(t, v.Redacted, "non owner view")
		previous = v.Id
	}

	bad := asset.Type("EBOOK")
	_, err = c.QueryAssets(&bad, "")
	assert.Equal(t, fault.ErrInvalidAssetType, err, "bad filter")
}

func TestRetryThenSuccess(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()

	e.trail.fail(2)
	_, r, err := e.coordinator.CreateNormalAsset("U1", dune, "tx1")
	assert.Nil(t, err, "create error")
	assert.Equal(t, "tx1", r.TxId, "record")
	assert.Equal(t, 3, e.trail.appendCount(), "append attempts")

	status, _, err := e.coordinator.Status("tx1")
	assert.Nil(t, err, "status error")
	assert.Equal(t, coordinator.StatusCompleted, status, "status")
}

func TestCreatePartialFailure(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()
	c := e.coordinator

	e.trail.fail(5)
	a, r, err := c.CreateNormalAsset("U1", dune, "tx1")
	assert.True(t, fault.IsErrPartialFailure(err), "partial failure not reported: %v", err)
	assert.Equal(t, "PartialFailure", fault.Kind(err), "kind")
	assert.Equal(t, 5, e.trail.appendCount(), "append attempts")
	if assert.NotNil(t, a, "asset") {
		assert.Equal(t, asset.Identifier(1), a.Id, "asset id")
	}
	if assert.NotNil(t, r, "record") {
		assert.Equal(t, "tx1", r.TxId, "record tx id")
	}

	pf, ok := err.(*fault.PartialFailure)
	if assert.True(t, ok, "error type") {
		assert.Equal(t, uint64(1), pf.AssetId, "failure asset")
		assert.Equal(t, "tx1", pf.TxId, "failure tx")
		assert.True(t, fault.IsErrStorage(pf.Err), "failure cause")
	}

	// the ledger is not rolled back
	view, err := c.ReadAsset(1, "U1")
	assert.Nil(t, err, "read error")
	assert.Equal(t, "U1", view.Owner, "owner")

	status, _, err := c.Status("tx1")
	assert.Nil(t, err, "status error")
	assert.Equal(t, coordinator.StatusPending, status, "status")

	// retrying with the same id completes the audit without a new asset
	a2, r2, err := c.CreateNormalAsset("U1", dune, "tx1")
	assert.Nil(t, err, "retry error")
	assert.Equal(t, a.Id, a2.Id, "retry asset")
	assert.Equal(t, "tx1", r2.TxId, "retry record")

	status, _, _ = c.Status("tx1")
	assert.Equal(t, coordinator.StatusCompleted, status, "status after retry")

	assets, _ := c.QueryAssets(nil, "")
	assert.Equal(t, 1, len(assets), "assets")
	records, _ := c.Transactions(audit.Filter{})
	assert.Equal(t, 1, len(records), "records")
}

func TestTransferPartialFailureReconcile(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()
	c := e.coordinator

	_, _, err := c.CreateNormalAsset("U1", dune, "tx1")
	assert.Nil(t, err, "create error")

	e.trail.fail(5)
	r, err := c.TransferOwnership(1, "U1", "U2", "tx2")
	assert.True(t, fault.IsErrPartialFailure(err), "partial failure not reported: %v", err)
	if assert.NotNil(t, r, "record") {
		assert.Equal(t, uint64(2), r.Version, "record version")
		assert.Equal(t, "tx1", r.Link, "record link")
	}

	view, _ := c.ReadAsset(1, "U2")
	assert.Equal(t, "U2", view.Owner, "ledger updated")

	n, err := c.CompletePending(10)
	assert.Nil(t, err, "complete error")
	assert.Equal(t, 1, n, "completed count")

	n, err = c.CompletePending(10)
	assert.Nil(t, err, "second complete error")
	assert.Equal(t, 0, n, "nothing left")

	// a late retry of the transfer returns the audited record
	again, err := c.TransferOwnership(1, "U1", "U2", "tx2")
	assert.Nil(t, err, "retry error")
	assert.Equal(t, uint64(2), again.Version, "retry version")

	history, err := c.History(1)
	assert.Nil(t, err, "history error")
	if assert.Equal(t, 2, len(history), "history length") {
		assert.Equal(t, "tx1", history[0].TxId, "first")
		assert.Equal(t, "tx2", history[1].TxId, "second")
		assert.Equal(t, history[0].TxId, history[1].Link, "chain link")
	}

	view, _ = c.ReadAsset(1, "U2")
	assert.Equal(t, uint64(2), view.Version, "version after retry")
}

func TestCompletePendingStorageDown(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()
	c := e.coordinator

	e.trail.fail(5)
	_, _, err := c.CreateNormalAsset("U1", dune, "tx1")
	assert.True(t, fault.IsErrPartialFailure(err), "partial failure")

	e.trail.fail(1)
	n, err := c.CompletePending(10)
	assert.True(t, fault.IsErrStorage(err), "storage error: %v", err)
	assert.Equal(t, 0, n, "completed count")

	status, _, _ := c.Status("tx1")
	assert.Equal(t, coordinator.StatusPending, status, "still pending")
}

func TestAuditBackoffDelays(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()

	e.trail.fail(5)
	_, _, err := e.coordinator.CreateNormalAsset("U1", dune, "tx1")
	assert.True(t, fault.IsErrPartialFailure(err), "partial failure")

	expected := []time.Duration{
		time.Millisecond,
		2 * time.Millisecond,
		4 * time.Millisecond,
		4 * time.Millisecond,
	}
	assert.Equal(t, expected, e.sleeper.recorded(), "backoff delays")
}

func TestCompletePendingQuarantinesConflicts(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()
	c := e.coordinator

	// journal entries whose tx ids the audit trail holds for other assets
	conflicts := []string{"a-dup-1", "a-dup-2"}
	for i, txId := range conflicts {
		_, err := e.trail.Append(&transactionrecord.Record{
			TxId:      txId,
			AssetId:   asset.Identifier(90 + i),
			Kind:      transactionrecord.Create,
			Receiver:  "X",
			Timestamp: fixedTime,
			Version:   1,
		})
		assert.Nil(t, err, "append %q error", txId)

		journal := &transactionrecord.Record{
			TxId:      txId,
			Kind:      transactionrecord.Create,
			Receiver:  "Y",
			Timestamp: fixedTime,
		}
		_, err = e.store.Create(asset.Identifier(50+i), "Y", asset.Normal, dune, fixedTime, journal)
		assert.Nil(t, err, "ledger create %q error", txId)
	}

	e.trail.fail(5)
	_, _, err := c.CreateNormalAsset("U1", dune, "tx-a")
	assert.True(t, fault.IsErrPartialFailure(err), "partial failure")

	// the conflicts fill the first batch and must not hold up the next
	n, err := c.CompletePending(len(conflicts))
	assert.Nil(t, err, "first complete error")
	assert.Equal(t, len(conflicts), n, "first batch removed")

	n, err = c.CompletePending(len(conflicts))
	assert.Nil(t, err, "second complete error")
	assert.Equal(t, 1, n, "second batch removed")

	status, _, _ := c.Status("tx-a")
	assert.Equal(t, coordinator.StatusCompleted, status, "good record completed")

	pending, err := e.store.ListPending(10)
	assert.Nil(t, err, "list pending error")
	assert.Equal(t, 0, len(pending), "journal empty")

	quarantined, err := e.store.ListQuarantined(10)
	assert.Nil(t, err, "list quarantined error")
	if assert.Equal(t, len(conflicts), len(quarantined), "quarantined count") {
		for i, r := range quarantined {
			assert.Equal(t, conflicts[i], r.TxId, "quarantined tx id")
			assert.Equal(t, "Y", r.Receiver, "quarantined receiver")
		}
	}

	// the audit trail keeps its original records
	for i, txId := range conflicts {
		r, err := e.trail.Get(txId)
		assert.Nil(t, err, "get %q error", txId)
		assert.Equal(t, asset.Identifier(90+i), r.AssetId, "audited asset")
	}
}

func TestCreateSystemIdTakenConcurrently(t *testing.T) {
	var thief *thievingLedger
	e := setupWith(t, nil, func(s *ledger.Store) coordinator.Ledger {
		thief = &thievingLedger{Store: s}
		return thief
	})
	defer e.teardown()

	a, r, err := e.coordinator.CreateNormalAsset("U1", dune, "tx1")
	assert.Nil(t, err, "create error")
	assert.Equal(t, asset.Identifier(1), thief.stolen, "stolen id")
	if assert.NotNil(t, a, "asset") {
		assert.Equal(t, asset.Identifier(2), a.Id, "fresh id")
		assert.Equal(t, "U1", a.Owner, "owner")
	}
	if assert.NotNil(t, r, "record") {
		assert.Equal(t, asset.Identifier(2), r.AssetId, "record asset")
	}

	taken, err := e.store.Read(1)
	assert.Nil(t, err, "read error")
	assert.Equal(t, "THIEF", taken.Owner, "caller assigned owner kept")
}

func TestStatusHistory(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()
	c := e.coordinator

	_, _, err := c.Status("nothing")
	assert.Equal(t, fault.ErrTransactionNotFound, err, "unknown tx")

	_, err = c.History(1)
	assert.Equal(t, fault.ErrAssetNotFound, err, "history of missing asset")

	_, _, err = c.CreateNormalAsset("U1", dune, "tx1")
	assert.Nil(t, err, "create error")

	status, r, err := c.Status("tx1")
	assert.Nil(t, err, "status error")
	assert.Equal(t, coordinator.StatusCompleted, status, "status")
	assert.Equal(t, asset.Identifier(1), r.AssetId, "status record")

	_, err = c.Transactions(audit.Filter{Kind: "MINT"})
	assert.Equal(t, fault.ErrInvalidRecordKind, err, "bad kind")
}

func TestReadMissing(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()

	_, err := e.coordinator.ReadAsset(99, "U1")
	assert.Equal(t, fault.ErrAssetNotFound, err, "missing asset")
	assert.Equal(t, "NotFound", fault.Kind(err), "kind")
}

func TestProjectionMatchesVisibility(t *testing.T) {
	e := setup(t, nil)
	defer e.teardown()

	b, _, err := e.coordinator.CreateBlindBox("U1", "tx1")
	assert.Nil(t, err, "create error")

	other, _ := e.coordinator.ReadAsset(b.Id, "U2")
	assert.Equal(t, visibility.Project(b, false), other, "non owner projection")

	owned, _ := e.coordinator.ReadAsset(b.Id, "U1")
	assert.Equal(t, visibility.Project(b, true), owned, "owner projection")
}
