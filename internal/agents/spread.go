package agents

import (
	"math"
	"math/rand"
	"sort"

	"github.com/lawnchairsociety/dungeonforge/internal/grid"
	"github.com/lawnchairsociety/dungeonforge/internal/pcg"
)

// ScoreCandidates orders tiles by a random score nudged toward inner tiles
// and, with corridorBias, toward path tiles. Highest score first.
func ScoreCandidates(rng *rand.Rand, tiles []grid.Point, inner, path grid.Blocker, centerBias, corridorBias float64) []grid.Point {
	type scored struct {
		tile  grid.Point
		score float64
	}
	list := make([]scored, len(tiles))
	for i, t := range tiles {
		r := rng.Float64()
		innerScore := indicator(inner, t)
		pathScore := indicator(path, t)

		biased := pcg.Lerp(innerScore, pathScore, corridorBias)
		mix := pcg.Lerp(r, r+biased, 0.6)
		list[i] = scored{tile: t, score: pcg.Lerp(mix, mix+innerScore, centerBias*0.35)}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].score > list[j].score })

	out := make([]grid.Point, len(list))
	for i, s := range list {
		out[i] = s.tile
	}
	return out
}

func indicator(b grid.Blocker, p grid.Point) float64 {
	if b != nil && b.Has(p) {
		return 1
	}
	return 0
}

// SpreadSample greedily picks up to count candidates, each maximizing its
// minimum Manhattan distance to those already picked while keeping at least
// spacing. The first pick is the candidate nearest the centroid. When no
// candidate keeps the spacing it is lowered by one and the search resumes;
// the spacing in force at the end is returned.
func SpreadSample(candidates []grid.Point, count, spacing int) (chosen []grid.Point, finalSpacing int) {
	spacing = max(0, spacing)
	if len(candidates) == 0 || count <= 0 {
		return nil, spacing
	}

	picked := make(map[grid.Point]bool, count)
	first := nearestToCentroid(candidates)
	chosen = append(chosen, first)
	picked[first] = true

	// minDist[i] tracks the distance from candidate i to its nearest pick.
	minDist := make([]int, len(candidates))
	for i, c := range candidates {
		minDist[i] = grid.Manhattan(c, first)
	}

	for len(chosen) < count && len(picked) < len(candidates) {
		best, bestDist := -1, -1
		for i, c := range candidates {
			if picked[c] || minDist[i] < spacing {
				continue
			}
			if minDist[i] > bestDist {
				best, bestDist = i, minDist[i]
			}
		}
		if best < 0 {
			if spacing == 0 {
				break
			}
			spacing--
			continue
		}

		next := candidates[best]
		chosen = append(chosen, next)
		picked[next] = true
		for i, c := range candidates {
			minDist[i] = min(minDist[i], grid.Manhattan(c, next))
		}
	}
	return chosen, spacing
}

func nearestToCentroid(tiles []grid.Point) grid.Point {
	var sx, sy float64
	for _, t := range tiles {
		sx += float64(t.X)
		sy += float64(t.Y)
	}
	centroid := grid.Vec2{X: sx / float64(len(tiles)), Y: sy / float64(len(tiles))}

	best, bestDist := tiles[0], math.Inf(1)
	for _, t := range tiles {
		d := centroid.Distance(grid.Vec2{X: float64(t.X), Y: float64(t.Y)})
		if d < bestDist {
			best, bestDist = t, d
		}
	}
	return best
}
