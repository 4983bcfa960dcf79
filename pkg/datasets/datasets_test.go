package datasets

import (
	"math"
	"testing"
)

func TestIrisColumnsAgree(t *testing.T) {
	sl, sw, pl, species := Iris()
	if len(sl) != 30 {
		t.Fatalf("row count = %d, want 30", len(sl))
	}
	if len(sw) != len(sl) || len(pl) != len(sl) || len(species) != len(sl) {
		t.Error("column lengths disagree")
	}
	for _, s := range species {
		if s != "setosa" && s != "versicolor" && s != "virginica" {
			t.Errorf("unknown species %q", s)
		}
	}
}

func TestMonthlyRevenueColumnsAgree(t *testing.T) {
	months, labels, hardware, services := MonthlyRevenue()
	if len(months) != 12 {
		t.Fatalf("month count = %d, want 12", len(months))
	}
	if len(labels) != 12 || len(hardware) != 12 || len(services) != 12 {
		t.Error("column lengths disagree")
	}
}

func TestHelixShape(t *testing.T) {
	x, y, z := Helix(100, 3)
	if len(x) != 100 || len(y) != 100 || len(z) != 100 {
		t.Fatal("point counts disagree")
	}
	// Every point sits on the unit cylinder.
	for i := range x {
		r := math.Hypot(x[i], y[i])
		if math.Abs(r-1) > 1e-9 {
			t.Fatalf("point %d radius = %v, want 1", i, r)
		}
	}
	if z[0] != 0 || z[99] != 1 {
		t.Errorf("z range = [%v, %v], want [0, 1]", z[0], z[99])
	}
}

func TestPyramidIndicesInRange(t *testing.T) {
	x, _, _, i, j, k := Pyramid()
	n := len(x)
	for face := range i {
		for _, idx := range []int{i[face], j[face], k[face]} {
			if idx < 0 || idx >= n {
				t.Errorf("face %d references vertex %d, out of range", face, idx)
			}
		}
	}
}
