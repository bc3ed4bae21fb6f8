package egtbkey

// binomial returns C(n, k), the number of ways to choose k identical
// pieces' squares from a domain of n candidate squares.
func binomial(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	var result int64 = 1
	for i := 0; i < k; i++ {
		result = result * int64(n-i) / int64(i+1)
	}
	return result
}

// rankCombination returns the lexicographic rank, among all C(n,k)
// k-subsets of {0,...,n-1}, of the ascending-sorted subset idx.
func rankCombination(idx []int, n int) int64 {
	k := len(idx)
	var rank int64
	prev := -1
	for i, v := range idx {
		for j := prev + 1; j < v; j++ {
			rank += binomial(n-1-j, k-1-i)
		}
		prev = v
	}
	return rank
}

// unrankCombination inverts rankCombination: given a rank in [0, C(n,k)),
// returns the ascending-sorted k-subset of {0,...,n-1} with that rank.
func unrankCombination(rank int64, n, k int) []int {
	out := make([]int, 0, k)
	j := 0
	for i := 0; i < k; i++ {
		remaining := k - i
		for {
			c := binomial(n-1-j, remaining-1)
			if rank < c {
				out = append(out, j)
				j++
				break
			}
			rank -= c
			j++
		}
	}
	return out
}
