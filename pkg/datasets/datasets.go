// Package datasets bundles small sample series used by the example figures
// and the documentation. The data is embedded; nothing is fetched.
package datasets

import "math"

// Iris returns a 30-row subset of Fisher's iris measurements: sepal length,
// sepal width, petal length, and the species of each row.
func Iris() (sepalLength, sepalWidth, petalLength []float64, species []string) {
	sepalLength = []float64{
		5.1, 4.9, 4.7, 4.6, 5.0, 5.4, 4.6, 5.0, 4.4, 4.9,
		7.0, 6.4, 6.9, 5.5, 6.5, 5.7, 6.3, 4.9, 6.6, 5.2,
		6.3, 5.8, 7.1, 6.3, 6.5, 7.6, 4.9, 7.3, 6.7, 7.2,
	}
	sepalWidth = []float64{
		3.5, 3.0, 3.2, 3.1, 3.6, 3.9, 3.4, 3.4, 2.9, 3.1,
		3.2, 3.2, 3.1, 2.3, 2.8, 2.8, 3.3, 2.4, 2.9, 2.7,
		3.3, 2.7, 3.0, 2.9, 3.0, 3.0, 2.5, 2.9, 2.5, 3.6,
	}
	petalLength = []float64{
		1.4, 1.4, 1.3, 1.5, 1.4, 1.7, 1.4, 1.5, 1.4, 1.5,
		4.7, 4.5, 4.9, 4.0, 4.6, 4.5, 4.7, 3.3, 4.6, 3.9,
		6.0, 5.1, 5.9, 5.6, 5.8, 6.6, 4.5, 6.3, 5.8, 6.1,
	}
	species = make([]string, 30)
	for i := range species {
		switch {
		case i < 10:
			species[i] = "setosa"
		case i < 20:
			species[i] = "versicolor"
		default:
			species[i] = "virginica"
		}
	}
	return sepalLength, sepalWidth, petalLength, species
}

// MonthlyRevenue returns one year of revenue for two product lines, plus the
// month index (1..12) and month labels for axis ticks.
func MonthlyRevenue() (months []float64, labels []string, hardware, services []float64) {
	months = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	labels = []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
	hardware = []float64{112, 98, 121, 140, 133, 152, 160, 148, 171, 185, 178, 204}
	services = []float64{45, 52, 49, 61, 68, 66, 74, 79, 82, 91, 97, 105}
	return months, labels, hardware, services
}

// Helix returns n points of a unit helix winding turns times around the z
// axis, for 3d scatter examples.
func Helix(n, turns int) (x, y, z []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		angle := 2 * math.Pi * float64(turns) * t
		x[i] = math.Cos(angle)
		y[i] = math.Sin(angle)
		z[i] = t
	}
	return x, y, z
}

// Pyramid returns the vertices and triangle indices of a square pyramid, for
// mesh examples. The four triples (i, j, k) pick vertex indices per face.
func Pyramid() (x, y, z []float64, i, j, k []int) {
	// Base corners then apex.
	x = []float64{0, 1, 1, 0, 0.5}
	y = []float64{0, 0, 1, 1, 0.5}
	z = []float64{0, 0, 0, 0, 1}
	// Two base triangles and four sides.
	i = []int{0, 0, 0, 1, 2, 3}
	j = []int{1, 2, 1, 2, 3, 0}
	k = []int{2, 3, 4, 4, 4, 4}
	return x, y, z, i, j, k
}
