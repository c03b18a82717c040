package database

import "strings"

const runColumns = `id, seed, mode, fingerprint, rooms, floor_tiles, corridor_tiles,
	props, enemies, corridor_enemies, skipped, duration_ms, created_at`

const newestFirst = " ORDER BY created_at DESC, id DESC"

// runQueries holds the history statements rendered once for a dialect.
type runQueries struct {
	insert    string
	get       string
	list      string
	listLimit string
	bySeed    string
	count     string
	delete    string
}

func newRunQueries(d Dialect) runQueries {
	insert := `INSERT INTO generation_runs
		(seed, mode, fingerprint, rooms, floor_tiles, corridor_tiles,
		 props, enemies, corridor_enemies, skipped, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if d.ReturnsRunID() {
		insert += " RETURNING id"
	}
	selectRuns := "SELECT " + runColumns + " FROM generation_runs"

	return runQueries{
		insert:    rebind(d, insert),
		get:       rebind(d, selectRuns+" WHERE id = ?"),
		list:      selectRuns + newestFirst,
		listLimit: rebind(d, selectRuns+newestFirst+" LIMIT ?"),
		bySeed:    rebind(d, selectRuns+" WHERE seed = ?"+newestFirst),
		count:     "SELECT COUNT(*) FROM generation_runs",
		delete:    rebind(d, "DELETE FROM generation_runs WHERE id = ?"),
	}
}

// rebind rewrites each ? in query into the dialect's bind marker.
func rebind(d Dialect, query string) string {
	var b strings.Builder
	b.Grow(len(query))
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			b.WriteByte(query[i])
			continue
		}
		n++
		b.WriteString(d.Placeholder(n))
	}
	return b.String()
}
