// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/thortx/fault"
)

const minimumPasswordLength = 8

var passwordConsole *terminal.Terminal

func getTerminal() (*terminal.Terminal, int, *terminal.State, error) {
	oldState, err := terminal.MakeRaw(0)
	if err != nil {
		return nil, 0, nil, err
	}

	if nil != passwordConsole {
		return passwordConsole, 0, oldState, nil
	}

	tmpIO, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if nil != err {
		terminal.Restore(0, oldState)
		return nil, 0, nil, err
	}

	passwordConsole = terminal.NewTerminal(tmpIO, "thor-cli: ")

	return passwordConsole, 0, oldState, nil
}

func readPassword(prompt string) (string, error) {
	console, fd, state, err := getTerminal()
	if nil != err {
		return "", err
	}
	defer terminal.Restore(fd, state)

	return console.ReadPassword(prompt)
}

// new password entered twice
func promptPasswordReader() (string, error) {
	password, err := readPassword("Set keystore password(length >= 8): ")
	if nil != err {
		return "", err
	}
	if len(password) < minimumPasswordLength {
		return "", fault.ErrInvalidPasswordLength
	}

	verifyPassword, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verifyPassword {
		return "", fault.ErrPasswordMismatch
	}

	return password, nil
}

func promptCheckPasswordReader() (string, error) {
	return readPassword("password: ")
}
