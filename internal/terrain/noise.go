package terrain

import (
	"math"
	"math/rand"
)

// simplexNoise produces deterministic 2D terrain noise for the dense grid's
// noise fill mode. The permutation table is shuffled from the seed, so equal
// seeds give equal maps.
type simplexNoise struct {
	perm [512]int
}

func newSimplexNoise(seed int64) *simplexNoise {
	sn := &simplexNoise{}
	r := rand.New(rand.NewSource(seed))

	p := make([]int, 256)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(256, func(i, j int) { p[i], p[j] = p[j], p[i] })

	for i := 0; i < 512; i++ {
		sn.perm[i] = p[i&255]
	}
	return sn
}

func noiseGrad2(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Constants for mapping between square and simplex coordinates.
const (
	skew2   = 0.3660254037844386
	unskew2 = 0.21132486540518713
)

// noise2D evaluates a single octave at (x, y). Output stays within [-1, 1].
func (sn *simplexNoise) noise2D(x, y float64) float64 {
	s := (x + y) * skew2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	t := (i + j) * unskew2
	x0 := x - (i - t)
	y0 := y - (j - t)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1.0 + 2.0*unskew2
	y2 := y0 - 1.0 + 2.0*unskew2

	ii := int(i) & 255
	jj := int(j) & 255

	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * noiseGrad2(sn.perm[ii+sn.perm[jj]], x0, y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * noiseGrad2(sn.perm[ii+i1+sn.perm[jj+j1]], x1, y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * noiseGrad2(sn.perm[ii+1+sn.perm[jj+1]], x2, y2)
	}

	return 70.0 * (n0 + n1 + n2)
}

// fractal stacks octaves of noise2D, each at lacunarity times the previous
// frequency and persistence times the previous amplitude, then rescales the
// sum into [0, 1].
func (sn *simplexNoise) fractal(x, y, freq float64, octaves int, lacunarity, persistence float64) float64 {
	var total float64
	var maxAmp float64
	amp := 1.0

	for i := 0; i < octaves; i++ {
		total += sn.noise2D(x*freq, y*freq) * amp
		maxAmp += amp
		freq *= lacunarity
		amp *= persistence
	}

	return (total/maxAmp + 1.0) / 2.0
}
