package alloc

import "testing"

func TestBitmap_AllocContiguous(t *testing.T) {
	type testCase struct {
		name        string
		size        uint64
		reserved    [][2]uint64
		input       uint64
		wantedStart uint64
		wantedOK    bool
	}

	testCases := []testCase{{
		name:        "empty",
		size:        16,
		input:       4,
		wantedStart: 0,
		wantedOK:    true,
	}, {
		name:        "first-fit",
		size:        16,
		reserved:    [][2]uint64{{0, 2}, {4, 1}},
		input:       2,
		wantedStart: 2,
		wantedOK:    true,
	}, {
		name:        "skips-short-runs",
		size:        16,
		reserved:    [][2]uint64{{0, 2}, {4, 1}},
		input:       3,
		wantedStart: 5,
		wantedOK:    true,
	}, {
		name:     "fragmented",
		size:     8,
		reserved: [][2]uint64{{1, 1}, {3, 1}, {5, 1}, {7, 1}},
		input:    2,
		wantedOK: false,
	}, {
		name:     "larger-than-bitmap",
		size:     8,
		input:    9,
		wantedOK: false,
	}, {
		name:     "zero",
		size:     8,
		input:    0,
		wantedOK: false,
	}, {
		// the trailing pad bits of the last byte must never be handed out
		name:        "size-not-multiple-of-eight",
		size:        10,
		reserved:    [][2]uint64{{0, 6}},
		input:       4,
		wantedStart: 6,
		wantedOK:    true,
	}, {
		name:     "pad-bits-unavailable",
		size:     10,
		reserved: [][2]uint64{{0, 7}},
		input:    4,
		wantedOK: false,
	}}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bm := New(tc.size)
			for _, r := range tc.reserved {
				bm.ReserveRange(r[0], r[1])
			}
			freeBefore := bm.FreeCount()

			start, ok := bm.AllocContiguous(tc.input)
			if ok != tc.wantedOK {
				t.Fatalf(
					"AllocContiguous(%d): wanted ok `%t`; found `%t`",
					tc.input,
					tc.wantedOK,
					ok,
				)
			}
			if !ok {
				if found := bm.FreeCount(); found != freeBefore {
					t.Fatalf(
						"failed allocation changed free count: wanted `%d`; "+
							"found `%d`",
						freeBefore,
						found,
					)
				}
				return
			}
			if start != tc.wantedStart {
				t.Fatalf(
					"AllocContiguous(%d): wanted start `%d`; found `%d`",
					tc.input,
					tc.wantedStart,
					start,
				)
			}
			for i := start; i < start+tc.input; i++ {
				if !bm.Used(i) {
					t.Fatalf("handle `%d`: wanted used; found free", i)
				}
			}
			if wanted, found := freeBefore-tc.input, bm.FreeCount(); wanted != found {
				t.Fatalf("FreeCount(): wanted `%d`; found `%d`", wanted, found)
			}
		})
	}
}

func TestBitmap_FreeRange(t *testing.T) {
	bm := New(12)
	start, ok := bm.AllocContiguous(12)
	if !ok || start != 0 {
		t.Fatalf("AllocContiguous(12): wanted `0, true`; found `%d, %t`", start, ok)
	}

	bm.FreeRange(3, 4)
	for i := uint64(0); i < 12; i++ {
		wanted := i < 3 || i >= 7
		if found := bm.Used(i); found != wanted {
			t.Fatalf("Used(%d): wanted `%t`; found `%t`", i, wanted, found)
		}
	}

	if found := bm.LargestFreeRun(); found != 4 {
		t.Fatalf("LargestFreeRun(): wanted `4`; found `%d`", found)
	}

	// the freed hole is reused first
	start, ok = bm.AllocContiguous(2)
	if !ok || start != 3 {
		t.Fatalf("AllocContiguous(2): wanted `3, true`; found `%d, %t`", start, ok)
	}
}

func TestBitmap_LargestFreeRun(t *testing.T) {
	bm := New(20)
	if found := bm.LargestFreeRun(); found != 20 {
		t.Fatalf("empty bitmap: wanted `20`; found `%d`", found)
	}
	bm.ReserveRange(5, 1)
	bm.ReserveRange(12, 2)
	if found := bm.LargestFreeRun(); found != 6 {
		t.Fatalf("wanted `6`; found `%d`", found)
	}
	bm.ReserveRange(0, 20)
	if found := bm.LargestFreeRun(); found != 0 {
		t.Fatalf("full bitmap: wanted `0`; found `%d`", found)
	}
}
