// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/xtaci/princeprocessor/internal/config"
	"github.com/xtaci/princeprocessor/internal/driver"
	"github.com/xtaci/princeprocessor/internal/sink"
)

// VERSION is injected by build flags on official releases.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "princeprocessor"
	myApp.Usage = "PRINCE algorithm password candidate generator"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "pw-min",
			Value: config.Default().PwMin,
			Usage: "minimum candidate length",
		},
		cli.IntFlag{
			Name:  "pw-max",
			Value: config.Default().PwMax,
			Usage: "maximum candidate length",
		},
		cli.IntFlag{
			Name:  "elem-cnt-min",
			Value: config.Default().ElemCntMin,
			Usage: "minimum number of elements per chain",
		},
		cli.IntFlag{
			Name:  "elem-cnt-max",
			Value: config.Default().ElemCntMax,
			Usage: "maximum number of elements per chain",
		},
		cli.BoolFlag{
			Name:  "wl-dist-len",
			Usage: "derive the length weight table from the wordlist instead of the built-in distribution",
		},
		cli.StringFlag{
			Name:  "skip",
			Usage: "skip this many candidates from the start of the keyspace (decimal, arbitrary precision)",
		},
		cli.StringFlag{
			Name:  "limit",
			Usage: "emit at most this many candidates",
		},
		cli.StringFlag{
			Name:  "output-file, o",
			Usage: "append candidates to this file instead of stdout",
		},
		cli.BoolFlag{
			Name:  "output-compress",
			Usage: "snappy-compress the output stream",
		},
		cli.BoolFlag{
			Name:  "keyspace",
			Usage: "print the total keyspace size and exit",
		},
		cli.BoolFlag{
			Name:  "fingerprint",
			Usage: "print a fingerprint of the ingested dictionary to stderr before running",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "load configuration from a JSON file, overriding the flags above",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		cfg := config.Default()
		cfg.PwMin = c.Int("pw-min")
		cfg.PwMax = c.Int("pw-max")
		cfg.ElemCntMin = c.Int("elem-cnt-min")
		cfg.ElemCntMax = c.Int("elem-cnt-max")
		cfg.WlDistLen = c.Bool("wl-dist-len")
		cfg.Skip = c.String("skip")
		cfg.Limit = c.String("limit")
		cfg.OutputFile = c.String("output-file")
		cfg.OutputCompress = c.Bool("output-compress")
		cfg.Keyspace = c.Bool("keyspace")
		cfg.PrintFingerprint = c.Bool("fingerprint")

		if path := c.String("c"); path != "" {
			if err := config.ParseJSONFile(&cfg, path); err != nil {
				color.Red("%v", err)
				return cli.NewExitError("", 1)
			}
		}

		if err := cfg.Validate(); err != nil {
			color.Red("%v", err)
			return cli.NewExitError("", 1)
		}

		openSink := func() (driver.Sink, error) {
			return sink.Open(cfg.OutputFile, cfg.OutputCompress)
		}

		if err := driver.Run(cfg, os.Stdin, openSink, os.Stdout, os.Stderr); err != nil {
			log.Printf("%+v\n", err)
			return cli.NewExitError("", 1)
		}

		return nil
	}

	myApp.Run(os.Args)
}
