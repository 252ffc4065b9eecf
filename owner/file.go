// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
	"github.com/bookchain/bookchaind/fault"
)

// File - owners read from a text file and reloaded when it changes
//
// each non-blank line not starting with '#' is:
//
//   <id> <address>
type File struct {
	Static
	log  *logger.L
	path string
}

// NewFile - load the owners file
func NewFile(log *logger.L, path string) (*File, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	path, err := filepath.Abs(filepath.Clean(path))
	if nil != err {
		return nil, err
	}

	f := &File{
		Static: Static{
			owners: make(map[string]Owner),
		},
		log:  log,
		path: path,
	}
	if err := f.Reload(); nil != err {
		return nil, err
	}
	return f, nil
}

// Reload - read the file again, on error the previous owners are kept
func (f *File) Reload() error {
	owners, err := readOwners(f.path)
	if nil != err {
		f.log.Errorf("read owners: %s  error: %s", f.path, err)
		return err
	}
	f.replace(owners)
	f.log.Infof("loaded: %d owners from: %s", len(owners), f.path)
	return nil
}

func readOwners(path string) (map[string]Owner, error) {
	fh, err := os.Open(path)
	if nil != err {
		return nil, err
	}
	defer fh.Close()

	owners := make(map[string]Owner)
	scanner := bufio.NewScanner(fh)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if 2 != len(fields) {
			return nil, fmt.Errorf("%s:%d: expected: <id> <address>", path, lineNumber)
		}
		owners[fields[0]] = Owner{
			Id:      fields[0],
			Address: fields[1],
		}
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return owners, nil
}

// Run - background process reloading the file on change
func (f *File) Run(args interface{}, shutdown <-chan struct{}) {

	log := f.log

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		<-shutdown
		return
	}
	defer watcher.Close()

	// watch the directory so that editors replacing the file are seen
	err = watcher.Add(filepath.Dir(f.path))
	if nil != err {
		log.Errorf("watch: %s  error: %s", f.path, err)
		<-shutdown
		return
	}

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != f.path {
				continue loop
			}
			log.Debugf("file event: %v", event)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				_ = f.Reload()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)
		}
	}

	log.Info("shutting down…")
}
