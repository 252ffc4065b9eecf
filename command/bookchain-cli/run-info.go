// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.Info()
	if nil != err {
		return fmt.Errorf("get info error: %s", err)
	}

	return printJson(m.w, info)
}

func runInvoke(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return ErrRequiredFunction
	}
	function := c.Args().First()

	args, err := parseInvokeArguments(c.Args().Tail())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "function: %s\n", function)
		fmt.Fprintf(m.e, "arguments: %v\n", args)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Invoke(function, args)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func parseInvokeArguments(items []string) (map[string]string, error) {
	args := make(map[string]string, len(items))
	for _, item := range items {
		n := strings.Index(item, "=")
		if n <= 0 {
			return nil, ErrInvalidInvokeValue
		}
		args[item[:n]] = item[n+1:]
	}
	return args, nil
}
