// Copyright (C) 2025 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package dataset

import (
	"errors"
	"strings"

	errs "github.com/crashappsec/plotdeck/pkg/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func read(csv string) (*Table, error) {
	return Read(strings.NewReader(csv), Options{})
}

func mustRead(csv string) *Table {
	t, err := Read(strings.NewReader(csv), Options{})
	Expect(err).NotTo(HaveOccurred())
	return t
}

var _ = Describe("Read", func() {
	const pitching = "name,avg,obp,slg\n" +
		"A,0.300,0.400,0.500\n" +
		"B,,0.350,0.450\n"

	It("keeps columns in source order", func() {
		t := mustRead(pitching)
		Expect(t.ColumnNames()).To(Equal([]string{"name", "avg", "obp", "slg"}))
		Expect(t.NumRows()).To(Equal(2))
	})

	It("infers numeric columns when every non-missing value parses", func() {
		t := mustRead(pitching)
		for _, name := range []string{"avg", "obp", "slg"} {
			col, ok := t.Column(name)
			Expect(ok).To(BeTrue(), name)
			Expect(col.Kind).To(Equal(KindNumeric), name)
		}
		Expect(t.NumericColumnNames()).To(Equal([]string{"avg", "obp", "slg"}))
	})

	It("marks empty cells as missing, not zero", func() {
		t := mustRead(pitching)
		avg, _ := t.Column("avg")
		_, present := avg.Float(1)
		Expect(present).To(BeFalse())
		v, present := avg.Float(0)
		Expect(present).To(BeTrue())
		Expect(v).To(BeNumerically("~", 0.300, 1e-9))
	})

	It("treats NA tokens as missing without breaking numeric inference", func() {
		t := mustRead("era\n3.21\nNA\nNaN\n4.05\n")
		col, _ := t.Column("era")
		Expect(col.Kind).To(Equal(KindNumeric))
		Expect(col.Summary().Count).To(Equal(2))
	})

	Describe("kind inference for non-numeric columns", func() {
		It("infers categorical below the distinct-value threshold", func() {
			t := mustRead("team\nIronPigs\nBisons\nIronPigs\n")
			col, _ := t.Column("team")
			Expect(col.Kind).To(Equal(KindCategorical))
			Expect(col.Categories()).To(Equal([]string{"Bisons", "IronPigs"}))
		})

		It("infers text above the distinct-value threshold", func() {
			var b strings.Builder
			b.WriteString("notes\n")
			for _, suffix := range strings.Split("abcde", "") {
				b.WriteString("note-" + suffix + "\n")
			}
			t, err := Read(strings.NewReader(b.String()), Options{CategoricalMaxDistinct: 3})
			Expect(err).NotTo(HaveOccurred())
			col, _ := t.Column("notes")
			Expect(col.Kind).To(Equal(KindText))
		})
	})

	Describe("header validation", func() {
		It("rejects duplicate column names", func() {
			_, err := read("avg,avg\n0.1,0.2\n")
			var le *errs.Error
			Expect(errors.As(err, &le)).To(BeTrue())
			Expect(le.Type).To(Equal(errs.TypeLoad))
		})

		It("rejects blank column names", func() {
			_, err := read("avg,\n0.1,0.2\n")
			var le *errs.Error
			Expect(errors.As(err, &le)).To(BeTrue())
			Expect(le.Type).To(Equal(errs.TypeLoad))
		})
	})

	Describe("malformed rows", func() {
		It("excludes them from the table but reports every fault", func() {
			t := mustRead("name,avg\nA,0.300\nB\nC,0.280,extra\nD,0.310\n")
			Expect(t.NumRows()).To(Equal(2))
			Expect(t.Faults()).To(HaveLen(2))
			Expect(t.Faults()[0].Line).To(Equal(3))
			Expect(t.Faults()[1].Line).To(Equal(4))
			Expect(FaultError(t.Faults())).To(HaveOccurred())
		})

		It("reports file lines, not record counts, past blank lines", func() {
			t := mustRead("name,avg\n\nA,0.300\nB\nD,0.310\n")
			Expect(t.NumRows()).To(Equal(2))
			Expect(t.Faults()).To(HaveLen(1))
			Expect(t.Faults()[0].Line).To(Equal(4))
		})

		It("reports file lines past multi-line quoted fields", func() {
			t := mustRead("name,notes\nA,\"first\nsecond\"\nB\nC,ok\n")
			Expect(t.NumRows()).To(Equal(2))
			Expect(t.Faults()).To(HaveLen(1))
			Expect(t.Faults()[0].Line).To(Equal(4))
		})

		It("fails the load when every data row is malformed", func() {
			_, err := read("name,avg\nonly-one-field\n")
			var le *errs.Error
			Expect(errors.As(err, &le)).To(BeTrue())
			Expect(le.Type).To(Equal(errs.TypeLoad))
		})
	})

	Describe("empty input", func() {
		It("fails on an empty file", func() {
			_, err := read("")
			var le *errs.Error
			Expect(errors.As(err, &le)).To(BeTrue())
			Expect(le.Type).To(Equal(errs.TypeLoad))
		})

		It("fails on a header with no data rows", func() {
			_, err := read("name,avg\n")
			var le *errs.Error
			Expect(errors.As(err, &le)).To(BeTrue())
			Expect(le.Type).To(Equal(errs.TypeLoad))
		})
	})
})

var _ = Describe("Load", func() {
	It("fails with a load error when the file is missing", func() {
		_, err := Load("testdata/does-not-exist.csv", Options{})
		var le *errs.Error
		Expect(errors.As(err, &le)).To(BeTrue())
		Expect(le.Type).To(Equal(errs.TypeLoad))
	})
})

var _ = Describe("Summary", func() {
	It("computes min, max, mean and stddev over present values", func() {
		t := mustRead("ip\n10\n20\n30\n\n")
		col, _ := t.Column("ip")
		s := col.Summary()
		Expect(s).NotTo(BeNil())
		Expect(s.Min).To(Equal(10.0))
		Expect(s.Max).To(Equal(30.0))
		Expect(s.Mean).To(BeNumerically("~", 20.0, 1e-9))
		Expect(s.Count).To(Equal(3))
	})

	It("is nil for non-numeric columns", func() {
		t := mustRead("team\nIronPigs\n")
		col, _ := t.Column("team")
		Expect(col.Summary()).To(BeNil())
	})
})
