package shapes

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/gridmorph/bingrid"
)

// Noise returns a width×height grid thresholded from seeded gradient noise:
// pixels whose 3-octave fractal value exceeds threshold become foreground.
// scale controls feature size (higher = more detail); identical parameters
// always produce the identical grid.
func Noise(width, height int, scale, threshold float64, seed int64) *bingrid.Grid {
	g := bingrid.New(width, height)
	p := newPerlin(seed)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := p.fbm(float64(x)*scale, float64(y)*scale, 3)
			if v > threshold {
				g.Set(x, y, true)
			}
		}
	}

	return g
}

// perlin is a classic 2D gradient-noise generator with a seeded permutation
// table, kept private to the package; only the thresholded Noise grid is
// exposed.
type perlin struct {
	p [512]int
}

func newPerlin(seed int64) *perlin {
	n := &perlin{}
	for i := 0; i < 256; i++ {
		n.p[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 255; i > 0; i-- {
		j := rng.Intn(i + 1)
		n.p[i], n.p[j] = n.p[j], n.p[i]
	}
	for i := 0; i < 256; i++ {
		n.p[256+i] = n.p[i]
	}

	return n
}

// fade is the 6t⁵−15t⁴+10t³ smoothstep used between lattice points.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad projects (x,y) onto one of the lattice gradient directions.
func grad(hash int, x, y float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = 0
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}

	return u + v
}

// noise returns the gradient-noise value at (x,y), normalized to [0,1].
func (n *perlin) noise(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)

	u := fade(x)
	v := fade(y)

	aa := n.p[n.p[xi]+yi]
	ab := n.p[n.p[xi]+yi+1]
	ba := n.p[n.p[xi+1]+yi]
	bb := n.p[n.p[xi+1]+yi+1]

	res := lerp(
		lerp(grad(aa, x, y), grad(ba, x-1, y), u),
		lerp(grad(ab, x, y-1), grad(bb, x-1, y-1), u),
		v,
	)

	return (res + 1) / 2
}

// fbm sums octaves of noise with halving amplitude and doubling frequency.
func (n *perlin) fbm(x, y float64, octaves int) float64 {
	value := 0.0
	amplitude := 0.5
	frequency := 1.0

	for i := 0; i < octaves; i++ {
		value += amplitude * n.noise(x*frequency, y*frequency)
		amplitude *= 0.5
		frequency *= 2
	}

	return value
}
