package core

// Result is the outcome of one evaluation pass.
type Result struct {
	Solved      bool  // An end tile was reached from the start
	HasStart    bool  // False when the board has no start tile
	Start       Coord // Valid only when HasStart is true
	Flowing     int   // Number of tiles carrying flow
	EndsReached int   // Number of end tiles reached
	Dequeues    int   // Tiles taken off the BFS queue
}

// Evaluate recomputes CarriesFlow for every tile with a breadth-first
// traversal from the start tile and reports whether an end was reached.
// Each cell is enqueued at most once, so the outcome does not depend on
// neighbour order and the pass ends after at most Columns*Rows dequeues.
func (b *Board) Evaluate() Result {
	for _, t := range b.tiles {
		t.CarriesFlow = false
	}

	start := b.Start()
	if start == nil {
		return Result{}
	}

	res := Result{
		HasStart: true,
		Start:    start.Pos,
	}

	visited := make([]bool, len(b.tiles))
	queue := make([]*Tile, 0, len(b.tiles))

	visited[b.index(start.Pos)] = true
	start.CarriesFlow = true
	queue = append(queue, start)

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		res.Dequeues++

		if cur.IsEnd {
			res.Solved = true
			res.EndsReached++
		}

		for _, d := range cur.OpenDirections() {
			np := cur.Pos.Step(d)
			if !b.InBounds(np) {
				continue
			}
			idx := b.index(np)
			if visited[idx] {
				continue
			}
			next := b.tiles[idx]
			if !OpensToward(cur, next, d) {
				continue
			}
			visited[idx] = true
			next.CarriesFlow = true
			queue = append(queue, next)
		}
	}

	res.Flowing = len(queue)
	return res
}
