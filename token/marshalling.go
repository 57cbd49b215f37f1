// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

// MarshalText - convert a token into JSON
func (symbol Symbol) MarshalText() ([]byte, error) {
	return toString(symbol)
}

// UnmarshalText - convert a token symbol string from JSON
func (symbol *Symbol) UnmarshalText(s []byte) error {
	t, err := fromString(string(s))
	if nil != err {
		return err
	}
	*symbol = t
	return nil
}
