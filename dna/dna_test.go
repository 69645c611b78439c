// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dna_test

import (
	"testing"

	"github.com/hashmint/tokend/dna"
	"github.com/hashmint/tokend/random"
)

// fixed time step for deterministic draws
func fixedNumber() uint64 { return 42 }

// test that identical inputs reproduce identical dna
func TestGenerateDeterminism(t *testing.T) {
	s1 := random.NewSeededSource([]byte("seed"), fixedNumber)
	s2 := random.NewSeededSource([]byte("seed"), fixedNumber)

	d1 := dna.Generate(s1, 3, 42)
	d2 := dna.Generate(s2, 3, 42)

	if d1 != d2 {
		t.Errorf("same inputs produced: %s and %s", d1, d2)
	}
}

// test that each input influences the result
func TestGenerateInputSensitivity(t *testing.T) {
	source := random.NewSeededSource([]byte("seed"), fixedNumber)
	other := random.NewSeededSource([]byte("other"), fixedNumber)

	base := dna.Generate(source, 0, 42)

	if d := dna.Generate(other, 0, 42); d == base {
		t.Errorf("different seed produced same dna: %s", d)
	}
	if d := dna.Generate(source, 1, 42); d == base {
		t.Errorf("different operation index produced same dna: %s", d)
	}
	if d := dna.Generate(source, 0, 43); d == base {
		t.Errorf("different block number produced same dna: %s", d)
	}
}

// test hex text round trip
func TestMarshalText(t *testing.T) {
	source := random.NewSeededSource([]byte("seed"), fixedNumber)
	d := dna.Generate(source, 0, 1)

	text, err := d.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var back dna.DNA
	err = back.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if d != back {
		t.Errorf("round trip: %s  expected: %s", back, d)
	}

	err = back.UnmarshalText([]byte("0011"))
	if nil == err {
		t.Fatalf("short hex unexpectedly accepted")
	}
}
