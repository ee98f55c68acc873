package chainbuilder

// reconstructChains walks the matched map (successor index -> predecessor
// index) into ordered job-index sequences, one per chain head. A head is
// any job index that never appears as a key in matched (no predecessor).
// The visited set trips ErrCycleDetected if a job is reached twice,
// rather than looping forever.
func reconstructChains(n int, matched map[int]int) ([][]int, error) {
	succ := make(map[int]int, len(matched))
	for j, i := range matched {
		succ[i] = j
	}

	hasPredecessor := make(map[int]bool, len(matched))
	for j := range matched {
		hasPredecessor[j] = true
	}

	visited := make(map[int]bool, n)
	var chains [][]int

	for _, head := range sortedJobIndices(n) {
		if hasPredecessor[head] {
			continue
		}
		if visited[head] {
			continue
		}

		chain := []int{head}
		visited[head] = true
		cur := head

		for {
			next, ok := succ[cur]
			if !ok {
				break
			}
			if visited[next] {
				return nil, ErrCycleDetected
			}
			visited[next] = true
			chain = append(chain, next)
			cur = next
		}

		chains = append(chains, chain)
	}

	return chains, nil
}
