// SPDX-License-Identifier: MIT

package combinatorics

// StirlingSecond returns S(n, k), the partitions of an n-set into k
// non-empty blocks. S(0,0) = 1.
func StirlingSecond(n, k uint64) uint64 {
	if n == 0 && k == 0 {
		return 1
	}
	if n == 0 || k == 0 || k > n {
		return 0
	}
	if k == 1 || k == n {
		return 1
	}

	// Rolling row of S(i, ·), updated right to left.
	row := make([]uint64, k+1)
	row[0] = 1
	for i := uint64(1); i <= n; i++ {
		top := k
		if i < k {
			top = i
		}
		for j := top; j >= 1; j-- {
			row[j] = j*row[j] + row[j-1]
		}
		row[0] = 0
	}

	return row[k]
}

// Catalan returns the n-th Catalan number. Exact for n ≤ 35.
func Catalan(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	c := make([]uint64, n+1)
	c[0], c[1] = 1, 1
	for i := uint64(2); i <= n; i++ {
		for j := uint64(0); j < i; j++ {
			c[i] += c[j] * c[i-1-j]
		}
	}

	return c[n]
}

// Bell returns the n-th Bell number (set partitions of an n-set), computed
// with the Bell triangle. Exact for n ≤ 25.
func Bell(n uint64) uint64 {
	row := []uint64{1}
	for i := uint64(1); i <= n; i++ {
		next := make([]uint64, i+1)
		next[0] = row[len(row)-1]
		for j := uint64(1); j <= i; j++ {
			next[j] = next[j-1] + row[j-1]
		}
		row = next
	}

	return row[0]
}

// Fibonacci returns F(n) with F(0)=0, F(1)=1. Exact for n ≤ 93.
func Fibonacci(n uint64) uint64 {
	return lucasSequence(0, 1, n)
}

// Lucas returns L(n) with L(0)=2, L(1)=1. Exact for n ≤ 90.
func Lucas(n uint64) uint64 {
	return lucasSequence(2, 1, n)
}

// lucasSequence iterates x(i) = x(i-1) + x(i-2) from the given seeds.
func lucasSequence(first, second, n uint64) uint64 {
	if n == 0 {
		return first
	}
	prev, curr := first, second
	for i := uint64(2); i <= n; i++ {
		prev, curr = curr, prev+curr
	}

	return curr
}

// Triangular returns n(n+1)/2.
func Triangular(n uint64) uint64 {
	if n%2 == 0 {
		return n / 2 * (n + 1)
	}

	return (n + 1) / 2 * n
}

// Pentagonal returns n(3n-1)/2; 0 for n == 0.
func Pentagonal(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	return n * (3*n - 1) / 2
}

// Hexagonal returns n(2n-1); 0 for n == 0.
func Hexagonal(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	return n * (2*n - 1)
}

// WaysToClimbStairs counts ordered step sequences from steps summing to n.
// Zero step sizes are ignored.
func WaysToClimbStairs(n uint64, steps ...uint64) uint64 {
	dp := make([]uint64, n+1)
	dp[0] = 1
	for i := uint64(1); i <= n; i++ {
		for _, s := range steps {
			if s > 0 && i >= s {
				dp[i] += dp[i-s]
			}
		}
	}

	return dp[n]
}

// WaysToMakeChange counts unordered ways to pay amount with the given coin
// denominations (each usable any number of times). Zero coins are ignored.
func WaysToMakeChange(amount uint64, coins ...uint64) uint64 {
	dp := make([]uint64, amount+1)
	dp[0] = 1
	for _, c := range coins {
		if c == 0 {
			continue
		}
		for i := c; i <= amount; i++ {
			dp[i] += dp[i-c]
		}
	}

	return dp[amount]
}

// Partitions returns p(n), the number of integer partitions of n. p(0) = 1.
func Partitions(n uint64) uint64 {
	p := make([]uint64, n+1)
	p[0] = 1
	for k := uint64(1); k <= n; k++ {
		for i := k; i <= n; i++ {
			p[i] += p[i-k]
		}
	}

	return p[n]
}

// PartitionsIntoK returns the partitions of n into exactly k positive parts.
func PartitionsIntoK(n, k uint64) uint64 {
	if k > n || k == 0 {
		return 0
	}
	if k == 1 || k == n {
		return 1
	}

	// p(i, j) = p(i-1, j-1) + p(i-j, j), one column j at a time.
	prev := make([]uint64, n+1)
	curr := make([]uint64, n+1)
	prev[0] = 1
	for j := uint64(1); j <= k; j++ {
		clear(curr)
		for i := j; i <= n; i++ {
			curr[i] = prev[i-1] + curr[i-j]
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// PascalRow returns row n of Pascal's triangle, C(n, 0) .. C(n, n).
// Exact for n ≤ 67.
func PascalRow(n uint64) []uint64 {
	row := make([]uint64, n+1)
	row[0] = 1
	for i := uint64(1); i <= n; i++ {
		for j := i; j >= 1; j-- {
			row[j] += row[j-1]
		}
	}

	return row
}
