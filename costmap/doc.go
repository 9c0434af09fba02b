// Package costmap models a robot's surroundings as a rectangular grid of
// traversal costs and converts it into the shapes the planners consume.
//
// What:
//
//   - Pose is an integer cell coordinate in cost-map space. World coordinates
//     map onto cells through the grid resolution (metres per cell); ToWorld
//     returns the cell centre and Grid.Discretize goes the other way.
//   - Grid stores one uint8 cost per cell in [0, MaxCost]. Its lower-left cell
//     may sit anywhere in cost-map space (WithOrigin), so poses are absolute,
//     not row/column indices.
//   - Anything outside the grid costs MaxCost: callers never have to bounds-check
//     before asking for a cost.
//   - NeighborsFor yields the 8-connected in-bounds neighbours whose cost does not
//     exceed a limit; ToCoreGraph exports the same connectivity as a *core.Graph
//     with Euclidean step weights so the generic dijkstra package can run on it.
//   - Inflate paints a disc of cost around a pose (obstacle padding).
//   - Regions and Reachable flood-fill the cells under a cost limit into
//     roaring bitmaps of cell indices, answering "can I get there at all?".
//
// Files:
//
//   - Load reads a plain-text map: one row per line, whitespace-separated costs,
//     '#' starts a comment. Row i holds cells with y = originY + i. WriteTo
//     starts with a "# costmap WxH origin x,y resolution r" header that Load
//     reads back as default options.
//   - LoadFile and SaveFile pick a codec by extension: ".gz" (gzip), ".zst"
//     (zstd), ".lz4" (lz4 frame) or anything else for plain text.
//
// Complexity:
//
//   - Cost, SetCost, Contains, Index:   O(1).
//   - NeighborsFor:                     O(8).
//   - Inflate:                          O(r²), r = radius in cells.
//   - ToCoreGraph, Poses, Load:         O(W×H).
//   - Regions, Reachable:               O(W×H).
//
// Concurrency:
//
//   - Grid guards its cells with a sync.RWMutex; many planners may read one grid
//     while another goroutine updates costs.
package costmap
