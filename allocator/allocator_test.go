package allocator

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fulldump/biff"
)

const (
	testBase  uint64 = 0x10000000
	testTotal uint64 = 256 * 1024 * 1024
)

func TestNew(t *testing.T) {

	biff.Alternative("New", func(a *biff.A) {

		a.Alternative("Aligned base", func(a *biff.A) {
			alloc, err := New(testBase, testTotal)
			biff.AssertNil(err)
			biff.AssertEqual(alloc.Len(), 0)
			biff.AssertEqual(alloc.Available(), testTotal)
			biff.AssertEqual(alloc.MaxFreeRun(), testTotal)
			biff.AssertTrue(alloc.BaseStrictAligned())
		})

		a.Alternative("Misaligned base", func(a *biff.A) {
			alloc, err := New(testBase+4, testTotal)
			biff.AssertTrue(errors.Is(err, ErrConfiguration))
			biff.AssertNil(alloc)
		})

		a.Alternative("Range overflows", func(a *biff.A) {
			_, err := New(0xFFFFFFFFFFFFFFF8, 16)
			biff.AssertTrue(errors.Is(err, ErrConfiguration))
		})

		a.Alternative("Base not window aligned", func(a *biff.A) {
			alloc, err := New(0x1000, testTotal)
			biff.AssertNil(err)
			biff.AssertFalse(alloc.BaseStrictAligned())
		})
	})
}

func TestAllocate(t *testing.T) {

	biff.Alternative("Allocate", func(a *biff.A) {

		alloc, _ := New(testBase, testTotal)

		a.Alternative("Zero size", func(a *biff.A) {
			b, err := alloc.Allocate(0, false)
			biff.AssertTrue(errors.Is(err, ErrInvalidArgument))
			biff.AssertNil(b)
			biff.AssertEqual(alloc.Len(), 0)
		})

		a.Alternative("Larger than window", func(a *biff.A) {
			b, err := alloc.Allocate(testTotal+1, false)
			biff.AssertTrue(errors.Is(err, ErrOutOfSpace))
			biff.AssertNil(b)
			biff.AssertEqual(alloc.Len(), 0)
			biff.AssertEqual(alloc.Available(), testTotal)
		})

		a.Alternative("Rounding overflows", func(a *biff.A) {
			_, err := alloc.Allocate(0xFFFFFFFFFFFFFFFF, false)
			biff.AssertTrue(errors.Is(err, ErrOutOfSpace))
		})

		a.Alternative("Whole window", func(a *biff.A) {
			b, err := alloc.Allocate(testTotal, false)
			biff.AssertNil(err)
			biff.AssertEqual(b.Address(), testBase)
			biff.AssertEqual(alloc.Available(), uint64(0))
			biff.AssertEqual(alloc.MaxFreeRun(), uint64(0))

			_, err = alloc.Allocate(8, false)
			biff.AssertTrue(errors.Is(err, ErrOutOfSpace))
		})

		a.Alternative("First strict block goes to base", func(a *biff.A) {
			b1, err := alloc.Allocate(10, true)
			biff.AssertNil(err)
			biff.AssertEqual(b1.Address(), testBase)
			biff.AssertEqual(b1.Size(), uint64(16))
			biff.AssertEqual(b1.End(), testBase+15)
			biff.AssertTrue(b1.IsStrictAligned())
			biff.AssertEqual(alloc.Available(), testTotal-16)

			a.Alternative("Second strict block goes to next window", func(a *biff.A) {
				b2, err := alloc.Allocate(100000, true)
				biff.AssertNil(err)
				biff.AssertEqual(b2.Address(), uint64(0x12000000))
				biff.AssertEqual(b2.Size(), uint64(100000))
				biff.AssertEqual(alloc.Available(), testTotal-16-100000)
				biff.AssertEqual(alloc.MaxFreeRun(), testBase+testTotal-0x12000000-100000)

				a.Alternative("Free second block", func(a *biff.A) {
					biff.AssertNil(alloc.Free(b2.Address()))
					biff.AssertEqual(alloc.Available(), testTotal-16)
					biff.AssertEqual(alloc.Len(), 1)
				})
			})

			a.Alternative("Non strict block is adjacent", func(a *biff.A) {
				b2, err := alloc.Allocate(8, false)
				biff.AssertNil(err)
				biff.AssertEqual(b2.Address(), testBase+16)
			})

			a.Alternative("Strict block does not fit after alignment", func(a *biff.A) {
				// Next window starts at 0x12000000, leaving 224 MiB.
				_, err := alloc.Allocate(testTotal-16, true)
				biff.AssertTrue(errors.Is(err, ErrOutOfSpace))
				biff.AssertEqual(alloc.Len(), 1)
			})
		})

		a.Alternative("Freed gap is reused", func(a *biff.A) {
			b1, _ := alloc.Allocate(64, false)
			b2, _ := alloc.Allocate(64, false)
			biff.AssertEqual(b2.Address(), testBase+64)

			biff.AssertNil(alloc.Free(b1.Address()))

			b3, err := alloc.Allocate(64, false)
			biff.AssertNil(err)
			biff.AssertEqual(b3.Address(), b1.Address())
		})

		a.Alternative("Strict block takes the leading gap with live blocks", func(a *biff.A) {
			b1, _ := alloc.Allocate(64, false)
			b2, _ := alloc.Allocate(64, false)
			biff.AssertNil(alloc.Free(b1.Address()))

			b3, err := alloc.Allocate(8, true)
			biff.AssertNil(err)
			biff.AssertEqual(b3.Address(), testBase)
			biff.AssertTrue(b3.IsStrictAligned())
			biff.AssertEqual(alloc.Len(), 2)
			biff.AssertEqual(alloc.Available(), testTotal-64-8)

			b4, err := alloc.Allocate(8, true)
			biff.AssertNil(err)
			biff.AssertTrue(b4.Address() > b2.Address())
			biff.AssertEqual(b4.Address()%StrictAlignment, uint64(0))
		})

		a.Alternative("Inter block gap is reused", func(a *biff.A) {
			b1, _ := alloc.Allocate(64, false)
			b2, _ := alloc.Allocate(64, false)
			b3, _ := alloc.Allocate(64, false)
			biff.AssertNil(alloc.Free(b2.Address()))

			a.Alternative("Exact fit", func(a *biff.A) {
				b4, err := alloc.Allocate(64, false)
				biff.AssertNil(err)
				biff.AssertEqual(b4.Address(), b1.Address()+64)
			})

			a.Alternative("Too big for the gap", func(a *biff.A) {
				b4, err := alloc.Allocate(72, false)
				biff.AssertNil(err)
				biff.AssertEqual(b4.Address(), b3.Address()+64)
			})
		})

		a.Alternative("Tag is kept", func(a *biff.A) {
			b, _ := alloc.Allocate(8, false)
			b.Tag = "waveform"

			found, ok := alloc.Get(b.Address())
			biff.AssertTrue(ok)
			biff.AssertEqual(found.Tag, "waveform")
		})
	})
}

func TestFree(t *testing.T) {

	biff.Alternative("Free", func(a *biff.A) {

		alloc, _ := New(testBase, testTotal)
		b, _ := alloc.Allocate(128, false)

		a.Alternative("Unknown address", func(a *biff.A) {
			err := alloc.Free(0xDEAD0000)
			biff.AssertTrue(errors.Is(err, ErrNotFound))
			biff.AssertEqual(alloc.Len(), 1)
			biff.AssertEqual(alloc.Available(), testTotal-128)
		})

		a.Alternative("Address inside a block", func(a *biff.A) {
			err := alloc.Free(b.Address() + 8)
			biff.AssertTrue(errors.Is(err, ErrNotFound))
			biff.AssertEqual(alloc.Len(), 1)
		})

		a.Alternative("Twice", func(a *biff.A) {
			biff.AssertNil(alloc.Free(b.Address()))
			err := alloc.Free(b.Address())
			biff.AssertTrue(errors.Is(err, ErrNotFound))
			biff.AssertEqual(alloc.Available(), testTotal)
		})
	})
}

func TestDump(t *testing.T) {

	alloc, _ := New(testBase, testTotal)
	alloc.Allocate(10, true)
	alloc.Allocate(100000, true)

	w := &bytes.Buffer{}
	biff.AssertNil(alloc.Dump(w))

	expected := "" +
		"===================================================\n" +
		"10000000 (268435456) - 1000000F (268435471) (16 bytes); isAligned = true\n" +
		"12000000 (301989888) - 1201869F (302089887) (100000 bytes); isAligned = true\n" +
		"Available memory: 268335440 bytes; Max Block: 234781024 bytes\n" +
		"===================================================\n" +
		"\n"
	biff.AssertEqual(w.String(), expected)
}
