// Command gridpath finds the cheapest route across a small ASCII
// grid with Dijkstra and with A*, and prints both routes and how
// many cells each search had to settle.
package main

import (
	"fmt"
	"math"
	"strings"

	"go.lepak.sg/traversal/seq"
	"go.lepak.sg/traversal/traverse"
)

// # is a wall, . is open ground
var field = []string{
	"S...#.....",
	".##.#.###.",
	".#..#...#.",
	".#.###.##.",
	".#.....#..",
	".#####.#.#",
	"......##.#",
	".####.#..#",
	"....#.....",
	"###.#..#.G",
}

type cell struct {
	grid *grid
	r, c int
}

type grid struct {
	rows  []string
	cells map[[2]int]*cell
}

func (g *grid) at(r, c int) *cell {
	if r < 0 || r >= len(g.rows) || c < 0 || c >= len(g.rows[r]) {
		return nil
	}
	if g.rows[r][c] == '#' {
		return nil
	}
	key := [2]int{r, c}
	if g.cells[key] == nil {
		g.cells[key] = &cell{grid: g, r: r, c: c}
	}
	return g.cells[key]
}

func (c *cell) Adjacent() seq.Iterator[*cell] {
	var out []*cell
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if n := c.grid.at(c.r+d[0], c.c+d[1]); n != nil {
			out = append(out, n)
		}
	}
	return seq.FromSlice(out)
}

func main() {
	g := &grid{rows: field, cells: make(map[[2]int]*cell)}
	start := g.at(0, 0)
	goal := g.at(len(field)-1, len(field[0])-1)

	step := func(from, to *traverse.Path[*cell]) float64 {
		return 1
	}
	manhattan := func(from, to *traverse.Path[*cell]) float64 {
		return math.Abs(float64(goal.r-to.Node.r)) +
			math.Abs(float64(goal.c-to.Node.c))
	}

	report("dijkstra", goal, traverse.Dijkstra(start, step))
	report("a*", goal, traverse.AStar(start, step, manhattan))
}

func report(name string, goal *cell, search *traverse.ShortestPath[*cell]) {
	settled := 0
	for search.Next() {
		settled++
		if search.Item().Node != goal {
			continue
		}

		route := search.Item().PathFromRoot()
		fmt.Printf("%s: reached %s in %d steps, settling %d cells\n",
			name, goal, len(route)-1, settled)
		fmt.Println(draw(goal.grid, route))
		return
	}
	fmt.Printf("%s: no route\n", name)
}

func (c *cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.r, c.c)
}

func draw(g *grid, route []*cell) string {
	marked := make(map[[2]int]bool, len(route))
	for _, c := range route {
		marked[[2]int{c.r, c.c}] = true
	}

	var sb strings.Builder
	for r, row := range g.rows {
		for c := range row {
			if marked[[2]int{r, c}] {
				sb.WriteRune('o')
			} else {
				sb.WriteByte(row[c])
			}
		}
		if r < len(g.rows)-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
