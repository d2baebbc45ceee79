// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"
)

type metadata struct {
	file    string
	config  *Configuration
	logging bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "thor-cli"
	app.Usage = "multi-clause transaction tool"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` (required for the journal)",
		},
	}

	keyFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "key, k",
			Value: "",
			Usage: "+hex private `KEY`",
		},
		cli.StringFlag{
			Name:  "keystore, K",
			Value: "",
			Usage: "+keystore `FILE` [default from configuration]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " keystore `PASSWORD` [default prompt]",
		},
	}
	bodyFlag := cli.StringFlag{
		Name:  "body, b",
		Value: "-",
		Usage: " JSON transaction body `FILE` [- = stdin]",
	}
	storeFlag := cli.BoolFlag{
		Name:  "store, s",
		Usage: " save the transaction in the journal",
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new key pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "mnemonic",
			Usage:     "generate a mnemonic or derive the key of an existing one",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "words, w",
					Value: "",
					Usage: " existing space separated `WORDS`",
				},
			},
			Action: runMnemonic,
		},
		{
			Name:      "keystore-encrypt",
			Usage:     "encrypt a private key to a keystore",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*hex private `KEY`",
				},
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " keystore `FILE` [default stdout]",
				},
				cli.StringFlag{
					Name:  "password, p",
					Value: "",
					Usage: " keystore `PASSWORD` [default prompt]",
				},
			},
			Action: runKeystoreEncrypt,
		},
		{
			Name:      "keystore-decrypt",
			Usage:     "display the key pair held in a keystore",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "keystore, K",
					Value: "",
					Usage: "*keystore `FILE` [default from configuration]",
				},
				cli.StringFlag{
					Name:  "password, p",
					Value: "",
					Usage: " keystore `PASSWORD` [default prompt]",
				},
			},
			Action: runKeystoreDecrypt,
		},
		{
			Name:      "hash",
			Usage:     "signing hash and unsigned encoding of a body",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{bodyFlag},
			Action:    runHash,
		},
		{
			Name:      "sign",
			Usage:     "sign a body",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     append([]cli.Flag{bodyFlag, storeFlag}, keyFlags...),
			Action:    runSign,
		},
		{
			Name:      "decode",
			Usage:     "decode a signed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*signed transaction `HEX`",
				},
				storeFlag,
			},
			Action: runDecode,
		},
		{
			Name:      "gas",
			Usage:     "intrinsic gas and gas price of a body",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				bodyFlag,
				cli.StringFlag{
					Name:  "base, B",
					Value: "",
					Usage: " base gas price `NUMBER` [default from configuration]",
				},
			},
			Action: runGas,
		},
		{
			Name:      "list",
			Usage:     "list transactions in the journal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "signer, S",
					Value: "",
					Usage: " only ids signed by `ADDRESS`",
				},
			},
			Action: runList,
		},
		{
			Name:  "version",
			Usage: "display thor-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			file:    c.GlobalString("config"),
			config:  defaultConfiguration(),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		if "" == m.file || "version" == c.Args().Get(0) {
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", m.file)
		}

		config, err := getConfiguration(m.file)
		if nil != err {
			return err
		}
		m.config = config

		err = logger.Initialise(config.Logging)
		if nil != err {
			return err
		}
		m.logging = true

		log := logger.New("main")
		log.Infof("version: %s  config: %q", version, m.file)

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && m.logging {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
