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

// Package config holds the run's configuration surface and its
// validation rules.
package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/xtaci/princeprocessor/internal/chain"
	"github.com/xtaci/princeprocessor/internal/elements"
)

// Config is the full set of tunables for a run, settable from CLI
// flags or overridden from a JSON file via -c/--config.
type Config struct {
	PwMin            int    `json:"pw-min"`
	PwMax            int    `json:"pw-max"`
	ElemCntMin       int    `json:"elem-cnt-min"`
	ElemCntMax       int    `json:"elem-cnt-max"`
	WlDistLen        bool   `json:"wl-dist-len"`
	Skip             string `json:"skip"`
	Limit            string `json:"limit"`
	OutputFile       string `json:"output-file"`
	OutputCompress   bool   `json:"output-compress"`
	Keyspace         bool   `json:"keyspace"`
	PrintFingerprint bool   `json:"fingerprint"`
}

// Default returns a Config with the same defaults as the original
// princeprocessor binary.
func Default() Config {
	return Config{
		PwMin:      elements.LenMin,
		PwMax:      elements.LenMax,
		ElemCntMin: 1,
		ElemCntMax: chain.KMax,
	}
}

// ParseJSONFile decodes a JSON document at path into cfg, overriding
// whatever fields it sets.
func ParseJSONFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open config file %q", path)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(cfg); err != nil {
		return errors.Wrapf(err, "parse config file %q", path)
	}
	return nil
}

// Validate checks the static (pre-keyspace) configuration invariants:
// positivity, pw-min <= pw-max, elem-cnt-min <= elem-cnt-max, the
// IN_LEN bounds, and the explicit elem-cnt-max <= KMax cap that the
// original C source left implicit in its bitmask width.
func (c Config) Validate() error {
	if c.PwMin <= 0 {
		return errors.Errorf("--pw-min (%d) must be greater than 0", c.PwMin)
	}
	if c.PwMax <= 0 {
		return errors.Errorf("--pw-max (%d) must be greater than 0", c.PwMax)
	}
	if c.ElemCntMin <= 0 {
		return errors.Errorf("--elem-cnt-min (%d) must be greater than 0", c.ElemCntMin)
	}
	if c.ElemCntMax <= 0 {
		return errors.Errorf("--elem-cnt-max (%d) must be greater than 0", c.ElemCntMax)
	}
	if c.PwMin > c.PwMax {
		return errors.Errorf("--pw-min (%d) must be <= --pw-max (%d)", c.PwMin, c.PwMax)
	}
	if c.ElemCntMin > c.ElemCntMax {
		return errors.Errorf("--elem-cnt-min (%d) must be <= --elem-cnt-max (%d)", c.ElemCntMin, c.ElemCntMax)
	}
	if c.PwMin < elements.LenMin {
		return errors.Errorf("--pw-min (%d) must be >= %d", c.PwMin, elements.LenMin)
	}
	if c.PwMax > elements.LenMax {
		return errors.Errorf("--pw-max (%d) must be <= %d", c.PwMax, elements.LenMax)
	}
	if c.ElemCntMax > c.PwMax {
		return errors.Errorf("--elem-cnt-max (%d) must be <= --pw-max (%d)", c.ElemCntMax, c.PwMax)
	}
	if c.ElemCntMax > chain.KMax {
		return errors.Errorf("--elem-cnt-max (%d) must be <= %d", c.ElemCntMax, chain.KMax)
	}
	return nil
}
