package floodfill

import "github.com/katalvlaran/gridmorph/bingrid"

// Components finds all contiguous foreground regions of src under the given
// connectivity, without touching any engine state. Each component is a slice
// of Points in discovery (BFS) order; components are emitted in row-major
// order of their first pixel.
//
// A fill seeded inside one component processes exactly that component's
// clearance-safe pixels and leaves every other component Unvisited.
//
// Time: O(W×H×d), Memory: O(W×H).
func Components(src *bingrid.Grid, conn Connectivity) [][]Point {
	w, h := src.Width(), src.Height()
	offsets := [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	if conn == Conn8 {
		offsets = append(offsets,
			[2]int{-1, -1}, [2]int{1, -1}, [2]int{-1, 1}, [2]int{1, 1})
	}

	seen := make([]bool, w*h)
	var comps [][]Point

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !src.Get(x, y) || seen[y*w+x] {
				continue
			}
			// BFS to collect the component.
			queue := []Point{{x, y}}
			seen[y*w+x] = true
			var comp []Point

			for qi := 0; qi < len(queue); qi++ {
				p := queue[qi]
				comp = append(comp, p)
				for _, d := range offsets {
					nx, ny := p.X+d[0], p.Y+d[1]
					if nx < 0 || nx >= w || ny < 0 || ny >= h || !src.Get(nx, ny) {
						continue
					}
					if !seen[ny*w+nx] {
						seen[ny*w+nx] = true
						queue = append(queue, Point{nx, ny})
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
