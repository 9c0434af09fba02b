package navigation

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlnav/costmap"
)

// Path is an ordered sequence of poses, origin first.
type Path struct {
	poses []costmap.Pose
}

// NewPath returns a path holding a copy of poses.
func NewPath(poses ...costmap.Pose) *Path {
	p := &Path{poses: make([]costmap.Pose, len(poses))}
	copy(p.poses, poses)

	return p
}

// Append adds poses to the tail.
func (p *Path) Append(poses ...costmap.Pose) {
	p.poses = append(p.poses, poses...)
}

// Len returns the number of poses; a nil path has none.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}

	return len(p.poses)
}

// At returns the i-th pose.
func (p *Path) At(i int) (costmap.Pose, error) {
	if i < 0 || i >= p.Len() {
		return costmap.Pose{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, p.Len())
	}

	return p.poses[i], nil
}

// Last returns the final pose.
func (p *Path) Last() (costmap.Pose, error) {
	return p.At(p.Len() - 1)
}

// Reverse flips the path in place.
func (p *Path) Reverse() {
	for i, j := 0, len(p.poses)-1; i < j; i, j = i+1, j-1 {
		p.poses[i], p.poses[j] = p.poses[j], p.poses[i]
	}
}

// Poses returns a copy of the poses.
func (p *Path) Poses() []costmap.Pose {
	out := make([]costmap.Pose, p.Len())
	if p != nil {
		copy(out, p.poses)
	}

	return out
}

// Equal reports whether both paths visit the same poses in the same order.
func (p *Path) Equal(q *Path) bool {
	if p.Len() != q.Len() {
		return false
	}
	for i := 0; i < p.Len(); i++ {
		if p.poses[i] != q.poses[i] {
			return false
		}
	}

	return true
}

// IsValid reports whether the path has at least one step.
func (p *Path) IsValid() bool {
	return p.Len() > 1
}

// Length returns the summed Euclidean step length in cells.
func (p *Path) Length() float64 {
	var sum float64
	for i := 1; i < p.Len(); i++ {
		sum += p.poses[i-1].DistanceTo(p.poses[i])
	}

	return sum
}

// ToWorld returns the cell centres in metres.
func (p *Path) ToWorld(resolution float64) [][2]float64 {
	out := make([][2]float64, p.Len())
	for i := range out {
		x, y := p.poses[i].ToWorld(resolution)
		out[i] = [2]float64{x, y}
	}

	return out
}

// String lists the poses separated by spaces.
func (p *Path) String() string {
	parts := make([]string, p.Len())
	for i := range parts {
		parts[i] = p.poses[i].String()
	}

	return strings.Join(parts, " ")
}
