// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rlp

import (
	"github.com/bitmark-inc/thortx/fault"
)

// Kind - the shape of an item
type Kind int

// the possible shapes
const (
	KindString Kind = iota
	KindList
)

// String - name of the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "*unknown*"
	}
}

// Item - a byte string or a list of items
type Item interface {
	Kind() Kind
	isItem()
}

// String - a byte string leaf
type String []byte

// List - an ordered sequence of items
type List []Item

// Kind - shape of a string
func (String) Kind() Kind { return KindString }

// Kind - shape of a list
func (List) Kind() Kind { return KindList }

func (String) isItem() {}
func (List) isItem()   {}

// Uint - the canonical big endian string of an unsigned value
//
// zero is the empty string
func Uint(value uint64) String {
	b := make([]byte, 0, 8)
	started := false
	for shift := 56; shift >= 0; shift -= 8 {
		c := byte(value >> uint(shift))
		if 0 != c {
			started = true
		}
		if started {
			b = append(b, c)
		}
	}
	return String(b)
}

// AsString - the bytes of an item that must be a string
func AsString(item Item) ([]byte, error) {
	s, ok := item.(String)
	if !ok {
		return nil, fault.ErrStringExpected
	}
	return []byte(s), nil
}

// AsList - the elements of an item that must be a list
//
// if count is not negative the list must have exactly that many
// elements
func AsList(item Item, count int) (List, error) {
	l, ok := item.(List)
	if !ok {
		return nil, fault.ErrListExpected
	}
	if count >= 0 && len(l) != count {
		return nil, fault.ErrListCount
	}
	return l, nil
}
