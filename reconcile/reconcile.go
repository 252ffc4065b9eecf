// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reconcile - background completion of pending audit records
//
// a transaction whose audit append failed stays in the ledger's pending
// journal; this process periodically appends those records to the
// audit trail and clears them from the journal
package reconcile

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bookchain/bookchaind/fault"
)

const (
	defaultInterval  = 60
	defaultBatchSize = 100
	maximumBatchSize = 1000
)

// Configuration - reconciliation settings from the configuration file
type Configuration struct {
	IntervalSeconds int `gluamapper:"interval_seconds" yaml:"interval_seconds" json:"interval_seconds"`
	BatchSize       int `gluamapper:"batch_size" yaml:"batch_size" json:"batch_size"`
}

// Completer - drains up to count pending records, returning the
// number removed from the journal
type Completer interface {
	CompletePending(count int) (int, error)
}

// Reconciler - the background process
type Reconciler struct {
	log       *logger.L
	completer Completer
	interval  time.Duration
	batchSize int
}

// New - create a reconciler, zero values select defaults
func New(log *logger.L, configuration Configuration, completer Completer) (*Reconciler, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == completer {
		return nil, fault.ErrMissingParameters
	}

	interval := configuration.IntervalSeconds
	if interval <= 0 {
		interval = defaultInterval
	}
	batchSize := configuration.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if batchSize > maximumBatchSize {
		batchSize = maximumBatchSize
	}

	return &Reconciler{
		log:       log,
		completer: completer,
		interval:  time.Duration(interval) * time.Second,
		batchSize: batchSize,
	}, nil
}

// Drain - complete pending records until the journal is empty or an
// error occurs, returns the total removed from the journal
func (r *Reconciler) Drain() (int, error) {
	total := 0
	for {
		n, err := r.completer.CompletePending(r.batchSize)
		total += n
		if nil != err {
			r.log.Warnf("completed: %d  error: %s", total, err)
			return total, err
		}
		if n < r.batchSize {
			break
		}
	}
	if total > 0 {
		r.log.Infof("completed: %d pending records", total)
	}
	return total, nil
}

// Run - drain the pending journal every interval until shutdown
func (r *Reconciler) Run(args interface{}, shutdown <-chan struct{}) {

	log := r.log
	log.Info("starting…")

	timer := time.NewTimer(r.interval)
	defer timer.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-timer.C:
			r.Drain() // logs its own result
			timer.Reset(r.interval)
		}
	}

	log.Info("stopped")
}
