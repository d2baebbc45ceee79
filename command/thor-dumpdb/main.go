// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/thortx/address"
	"github.com/bitmark-inc/thortx/storage"
	"github.com/bitmark-inc/thortx/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// colours
const (
	keyColour1  = "\033[1;36m"
	keyColour2  = "\033[1;31m"
	valColour1  = "\033[1;33m"
	valColour2  = "\033[1;34m"
	delColour1  = "\033[1;35m"
	delColour2  = "\033[0;35m"
	nodelColour = "\033[1;32m"
	endColour   = "\033[0m"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "delete", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "signer", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--colour] [--ascii] [--delete] [--count=N] [--signer=ADDRESS] --file=FILE", program)
	}

	colour := len(options["colour"]) > 0
	ascii := len(options["ascii"]) > 0
	delete := len(options["delete"]) > 0
	verbose := len(options["verbose"]) > 0

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	filename := options["file"][0]
	if verbose {
		fmt.Printf("read journal: %q\n", filename)
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "thor-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// start of main processing
	journal, err := storage.Open(filename, !delete)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer journal.Close()

	entries, err := journal.List()
	if nil != err {
		exitwithstatus.Message("%s: list error: %s", program, err)
	}

	if len(options["signer"]) > 0 {
		signer, err := address.FromHex(options["signer"][0], util.DefaultHexPrefix)
		if nil != err {
			exitwithstatus.Message("%s: convert signer error: %s", program, err)
		}
		selected := entries[:0]
		for _, e := range entries {
			if e.Signer == signer {
				selected = append(selected, e)
			}
		}
		entries = selected
	}

	if len(entries) > count {
		entries = entries[:count]
	}

	ck1 := ""
	ck2 := ""
	cv1 := ""
	cv2 := ""
	cd1 := ""
	cd2 := ""
	cn := ""
	ce := ""
	if colour {
		ck1 = keyColour1
		ck2 = keyColour2
		cv1 = valColour1
		cv2 = valColour2
		cd1 = delColour1
		cd2 = delColour2
		cn = nodelColour
		ce = endColour
	}

	for i, e := range entries {
		encoded, err := e.Transaction.Encode()
		if nil != err {
			exitwithstatus.Message("%s: encode: %s  error: %s", program, e.ID, err)
		}

		fmt.Printf("%d: %sID: %s%s%s\n", i, ck1, ck2, e.ID, ce)
		fmt.Printf("%d: %sSigner: %s%s%s\n", i, ck1, ck2, e.Signer, ce)
		if ascii {
			prefix := fmt.Sprintf("%d: %sTx: %s", i, cv1, cv2)
			hexDump(prefix, ce, encoded)
		} else {
			fmt.Printf("%d: %sTx: %s%x%s\n", i, cv1, cv2, encoded, ce)
		}
		if verbose {
			fmt.Printf("%d: %sIntrinsic gas: %s%d%s\n", i, cv1, cv2, e.Transaction.IntrinsicGas(), ce)
		}

		if delete {
		delete_loop:
			for {
				fmt.Printf("%d: %sDelete ID: %s%s%s ? [yNq]: ", i, cd1, cd2, e.ID, ce)

				buffer := make([]byte, 100)
				n, err := os.Stdin.Read(buffer)
				if nil != err {
					exitwithstatus.Message("%s: error on Stdin.Read: %s", program, err)
				}

				response := strings.TrimSpace(string(buffer[:n]))
				switch strings.ToLower(response) {

				case "y", "yes":
					err := journal.Delete(e.ID)
					if nil != err {
						exitwithstatus.Message("%s: delete: %s  error: %s", program, e.ID, err)
					}
					fmt.Printf("%d: %s***DELETED: %s%s%s\n", i, cd1, cd2, e.ID, ce)
					break delete_loop

				case "", "n", "no":
					fmt.Printf("%d: %sRetain ID: %s%s%s\n", i, cn, ck2, e.ID, ce)
					break delete_loop

				case "q", "quit", "e", "exit", "x":
					fmt.Printf("Terminated\n")
					return

				default:
					fmt.Printf("Please answer yes or no\n")
				}
			}
		}
	}
}

// dump hex data on stdout
func hexDump(prefix string, suffix string, data []byte) {
	offset := 0
	const bytesPerLine = 32
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Printf("%s%04x  ", prefix, offset)
		offset += bytesPerLine
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Printf(" ")
			}
			if i+j < len(data) {
				fmt.Printf("%02x ", data[i+j])
			} else {
				fmt.Printf("   ")
			}
		}
		fmt.Printf(" |")
	ascii_loop:
		for j := 0; j < bytesPerLine; j += 1 {
			if i+j < len(data) {
				c := data[i+j]
				if c < 32 || c >= 127 {
					c = '.'
				}
				fmt.Printf("%c", c)

			} else {
				break ascii_loop
			}
		}
		fmt.Printf("|%s\n", suffix)
	}
}
