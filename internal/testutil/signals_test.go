package testutil

import "testing"

func TestConstantPlane(t *testing.T) {
	p := ConstantPlane(0.5, 3, 4)
	if len(p) != 12 {
		t.Fatalf("len = %d, want 12", len(p))
	}

	for i, v := range p {
		if v != 0.5 {
			t.Fatalf("p[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestRandomPlaneReproducible(t *testing.T) {
	a := RandomPlane(42, 255, 8, 8)
	b := RandomPlane(42, 255, 8, 8)

	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic at index %d", i)
		}

		if a[i] < 0 || a[i] >= 255 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestRandomPlaneDifferentSeeds(t *testing.T) {
	a := RandomPlane(1, 1, 4, 4)
	b := RandomPlane(2, 1, 4, 4)

	same := true

	for i := range a {
		if a[i] != b[i] {
			same = false

			break
		}
	}

	if same {
		t.Fatal("different seeds produced identical planes")
	}
}

func TestImpulsePlane(t *testing.T) {
	imp := ImpulsePlane(4, 4, 1, 2, 1)
	if len(imp) != 16 {
		t.Fatalf("len = %d, want 16", len(imp))
	}

	for r := range 4 {
		for c := range 4 {
			v := imp[r*4+c]
			if r == 1 && c == 2 {
				if v != 1 {
					t.Fatalf("imp[1][2] = %v, want 1", v)
				}
			} else if v != 0 {
				t.Fatalf("imp[%d][%d] = %v, want 0", r, c, v)
			}
		}
	}
}

func TestImpulsePlaneOutOfBounds(t *testing.T) {
	imp := ImpulsePlane(4, 4, 10, 10, 1)
	for i, v := range imp {
		if v != 0 {
			t.Fatalf("imp[%d] = %v, want all zeros for out-of-bounds position", i, v)
		}
	}
}

func TestCheckerboardImage(t *testing.T) {
	img := CheckerboardImage(2, 2, 3, 0, 255)
	if len(img) != 12 {
		t.Fatalf("len = %d, want 12", len(img))
	}

	// (0,0): r+c=0 even -> hi
	for k := range 3 {
		if img[k] != 255 {
			t.Fatalf("pixel(0,0)[%d] = %d, want 255", k, img[k])
		}
	}

	// (0,1): r+c=1 odd -> lo
	for k := range 3 {
		if img[3+k] != 0 {
			t.Fatalf("pixel(0,1)[%d] = %d, want 0", k, img[3+k])
		}
	}
}
