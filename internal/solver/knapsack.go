// ============================================================================
// mFIN - Financial Calculation Dispatcher
// ============================================================================
//
// Package:     solver
// Description: Binary knapsack by dynamic programming or branch and bound
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package solver

import (
	"math"
	"sort"

	mfinlog "github.com/msto63/mFIN/foundation/core/log"
)

// Selection is the outcome of a binary knapsack
type Selection struct {
	// Chosen holds 1 for selected items and 0 otherwise
	Chosen []float64
	Value  float64
	Cost   float64
}

// Indices returns the zero-based positions of the selected items
func (sel Selection) Indices() []int {
	var idx []int
	for i, v := range sel.Chosen {
		if v == 1 {
			idx = append(idx, i)
		}
	}
	return idx
}

// node fixes some items to 0 or 1; -1 marks a free item
type node []int8

// dpMaxCells bounds the item by capacity table of the dynamic program
const dpMaxCells = 1 << 22

// Knapsack selects items maximising total worth with total cost within
// budget. Costs and worths must be non-negative; a negative budget has no
// feasible selection.
//
// Whole-number costs with a table of at most dpMaxCells cells are solved
// exactly by dynamic programming over the budget. Other instances use branch
// and bound, seeded with the greedy selection and bounded by the fractional
// relaxation.
func (s *Solver) Knapsack(costs, worths []float64, budget float64) (Selection, error) {
	const op = "solver.Knapsack"

	n := len(costs)
	if n == 0 {
		return Selection{}, invalid(op, "knapsack has no items")
	}
	if len(worths) != n {
		return Selection{}, invalid(op, "costs and worths differ in length")
	}
	if !finite(budget) || !allFinite(costs) || !allFinite(worths) {
		return Selection{}, invalid(op, "knapsack values must be finite")
	}
	for i := range costs {
		if costs[i] < 0 || worths[i] < 0 {
			return Selection{}, invalid(op, "costs and worths must not be negative")
		}
	}
	if budget < 0 {
		return Selection{}, fail(ErrInfeasible, op, "budget is negative")
	}

	if capacity, ok := dpCapacity(costs, budget); ok {
		best := knapsackDP(costs, worths, capacity)
		s.logger.Debug("knapsack solved", mfinlog.Fields{
			"items":    n,
			"capacity": capacity,
			"value":    best.Value,
		})
		return best, nil
	}

	best := greedySelection(costs, worths, budget)
	stack := []node{freeNode(n)}
	visited := 0
	tol := s.settings.IntegralTolerance
	wholeWorths := allWhole(worths)

	for len(stack) > 0 {
		if visited >= s.settings.BranchMaxNodes {
			return Selection{}, fail(ErrNodeLimit, op, "knapsack search did not finish")
		}
		visited++

		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fixedCost, fixedValue := 0.0, 0.0
		var free []int
		for i, v := range nd {
			switch v {
			case 1:
				fixedCost += costs[i]
				fixedValue += worths[i]
			case -1:
				free = append(free, i)
			}
		}
		remaining := budget - fixedCost
		if remaining < 0 {
			continue
		}

		if len(free) == 0 {
			if fixedValue > best.Value {
				best = selectionOf(nd, fixedCost, fixedValue)
			}
			continue
		}

		relaxed := relax(costs, worths, free, remaining)
		bound := fixedValue + relaxed.Objective
		if wholeWorths {
			// Integral selections cannot exceed the rounded down bound
			bound = math.Floor(bound + tol)
		}
		if bound <= best.Value+tol {
			continue
		}

		branch := -1
		for k, v := range relaxed.X {
			if v > tol && v < 1-tol {
				branch = free[k]
				break
			}
		}
		if branch == -1 {
			leaf := append(node(nil), nd...)
			cost, value := fixedCost, fixedValue
			for k, i := range free {
				if relaxed.X[k] >= 1-tol {
					leaf[i] = 1
					cost += costs[i]
					value += worths[i]
				} else {
					leaf[i] = 0
				}
			}
			if value > best.Value {
				best = selectionOf(leaf, cost, value)
			}
			continue
		}

		// Explore the "take" branch first
		skip := append(node(nil), nd...)
		skip[branch] = 0
		take := append(node(nil), nd...)
		take[branch] = 1
		stack = append(stack, skip, take)
	}

	s.logger.Debug("knapsack solved", mfinlog.Fields{
		"items": n,
		"nodes": visited,
		"value": best.Value,
	})
	return best, nil
}

// dpCapacity reports whether the instance suits the dynamic program and
// the whole budget it runs over
func dpCapacity(costs []float64, budget float64) (int, bool) {
	if !allWhole(costs) || budget > float64(dpMaxCells) {
		return 0, false
	}
	capacity := int(math.Floor(budget))
	if (capacity+1)*len(costs) > dpMaxCells {
		return 0, false
	}
	return capacity, true
}

// knapsackDP fills best[w], the highest worth within cost w, one item at a
// time and walks the recorded decisions back from the full capacity
func knapsackDP(costs, worths []float64, capacity int) Selection {
	n := len(costs)
	best := make([]float64, capacity+1)
	keep := make([][]bool, n)
	for i := range costs {
		keep[i] = make([]bool, capacity+1)
		if costs[i] > float64(capacity) {
			continue
		}
		c := int(costs[i])
		for w := capacity; w >= c; w-- {
			if v := best[w-c] + worths[i]; v > best[w] {
				best[w] = v
				keep[i][w] = true
			}
		}
	}

	sel := Selection{Chosen: make([]float64, n)}
	w := capacity
	for i := n - 1; i >= 0; i-- {
		if keep[i][w] {
			sel.Chosen[i] = 1
			sel.Cost += costs[i]
			sel.Value += worths[i]
			w -= int(costs[i])
		}
	}
	sel.Cost = roundCost(sel.Cost)
	return sel
}

// greedySelection takes items by worth per unit cost while they fit
func greedySelection(costs, worths []float64, budget float64) Selection {
	order := make([]int, len(costs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return density(costs[order[a]], worths[order[a]]) > density(costs[order[b]], worths[order[b]])
	})

	nd := make(node, len(costs))
	cost, value := 0.0, 0.0
	for _, i := range order {
		if cost+costs[i] <= budget {
			nd[i] = 1
			cost += costs[i]
			value += worths[i]
		}
	}
	return selectionOf(nd, cost, value)
}

func allWhole(vs []float64) bool {
	for _, v := range vs {
		if v != math.Trunc(v) {
			return false
		}
	}
	return true
}

// relax solves the LP relaxation over the free items with 0 <= x <= 1. The
// fractional knapsack is solved exactly by filling items in order of worth
// per unit cost, leaving at most one item fractional.
func relax(costs, worths []float64, free []int, budget float64) Solution {
	order := append([]int(nil), free...)
	sort.SliceStable(order, func(a, b int) bool {
		return density(costs[order[a]], worths[order[a]]) > density(costs[order[b]], worths[order[b]])
	})

	pos := make(map[int]int, len(free))
	for k, i := range free {
		pos[i] = k
	}

	sol := Solution{X: make([]float64, len(free))}
	left := budget
	for _, i := range order {
		if worths[i] == 0 {
			continue
		}
		take := 1.0
		if costs[i] > left {
			take = left / costs[i]
		}
		sol.X[pos[i]] = take
		sol.Objective += take * worths[i]
		left -= take * costs[i]
		if take < 1 {
			break
		}
	}
	return sol
}

// density ranks free items; items that cost nothing come first
func density(cost, worth float64) float64 {
	if cost == 0 {
		return math.Inf(1)
	}
	return worth / cost
}

func freeNode(n int) node {
	nd := make(node, n)
	for i := range nd {
		nd[i] = -1
	}
	return nd
}

func selectionOf(nd node, cost, value float64) Selection {
	chosen := make([]float64, len(nd))
	for i, v := range nd {
		if v == 1 {
			chosen[i] = 1
		}
	}
	return Selection{Chosen: chosen, Value: value, Cost: roundCost(cost)}
}

// roundCost guards the reported cost against accumulated float noise
func roundCost(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
