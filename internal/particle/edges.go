package particle

import (
	"cmp"
	"math"
	"slices"
)

// Edges 计算当前帧的邻近连线（O(N²) 两两比较）
//
// 对每个无序对 (i, j)，i < j，若距离小于 ConnectionDistance
// 则产生一条连线，不透明度 = 1 - distance/ConnectionDistance。
// 结果按 (I, J) 升序排列。
func (f *Field) Edges() []Edge {
	maxDist := f.params.ConnectionDistance
	if maxDist <= 0 {
		return nil
	}

	var edges []Edge
	for i := 0; i < len(f.particles); i++ {
		for j := i + 1; j < len(f.particles); j++ {
			if e, ok := f.edge(i, j, maxDist); ok {
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// EdgesGrid 与 Edges 结果相同，但用均匀网格做空间划分
//
// 网格单元边长等于 ConnectionDistance，每个粒子只需检查自身及相邻 8 个单元。
// 粒子数量上到数百以后才值得使用；Frame 在超过 GridThreshold 时自动切换。
func (f *Field) EdgesGrid() []Edge {
	maxDist := f.params.ConnectionDistance
	if maxDist <= 0 || len(f.particles) < 2 {
		return nil
	}

	type cell struct{ cx, cy int }
	cellOf := func(p Vec2) cell {
		return cell{int(math.Floor(p.X / maxDist)), int(math.Floor(p.Y / maxDist))}
	}

	grid := make(map[cell][]int)
	for i, p := range f.particles {
		c := cellOf(p.Pos)
		grid[c] = append(grid[c], i)
	}

	var edges []Edge
	for i, p := range f.particles {
		c := cellOf(p.Pos)
		for ox := -1; ox <= 1; ox++ {
			for oy := -1; oy <= 1; oy++ {
				for _, j := range grid[cell{c.cx + ox, c.cy + oy}] {
					if j <= i {
						continue
					}
					if e, ok := f.edge(i, j, maxDist); ok {
						edges = append(edges, e)
					}
				}
			}
		}
	}

	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(a.I, b.I); c != 0 {
			return c
		}
		return cmp.Compare(a.J, b.J)
	})
	return edges
}

func (f *Field) edge(i, j int, maxDist float64) (Edge, bool) {
	a, b := f.particles[i].Pos, f.particles[j].Pos
	d := a.Dist(b)
	if d >= maxDist {
		return Edge{}, false
	}
	return Edge{I: i, J: j, A: a, B: b, Opacity: 1 - d/maxDist}, true
}
