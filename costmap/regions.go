package costmap

import "github.com/RoaringBitmap/roaring/v2"

// Regions partitions the cells whose cost is at most maxCost into 8-connected
// regions. Each bitmap holds row-major cell indices (see Index and PoseAt).
// Regions are ordered by their lowest index.
//
// Time:   O(W·H·8).
// Memory: O(W·H).
func (g *Grid) Regions(maxCost uint8) []*roaring.Bitmap {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make([]bool, len(g.cells))
	var out []*roaring.Bitmap
	for i0, c := range g.cells {
		if seen[i0] || c > maxCost {
			continue
		}
		out = append(out, g.flood(i0, maxCost, seen))
	}

	return out
}

// Reachable returns the region containing p, or an empty bitmap when p is
// outside the grid or costlier than maxCost.
func (g *Grid) Reachable(p Pose, maxCost uint8) *roaring.Bitmap {
	idx, ok := g.Index(p)
	if !ok {
		return roaring.New()
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.cells[idx] > maxCost {
		return roaring.New()
	}

	return g.flood(idx, maxCost, make([]bool, len(g.cells)))
}

// flood collects the region of i0 breadth-first. Caller holds g.mu.
func (g *Grid) flood(i0 int, maxCost uint8, seen []bool) *roaring.Bitmap {
	region := roaring.New()
	queue := []int{i0}
	seen[i0] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		region.Add(uint32(u))
		ux, uy := u%g.width, u/g.width
		for _, d := range neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if vx < 0 || vy < 0 || vx >= g.width || vy >= g.height {
				continue
			}
			vi := vy*g.width + vx
			if seen[vi] || g.cells[vi] > maxCost {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	return region
}
