package qap

import (
	"math/rand"
)

// ClusterAssignment maps every location 0..n-1 onto one of the clusters by
// integer division: location i belongs to cluster i*clusters/n. The ids are
// non-decreasing in i and the groups are only roughly equal when n is not
// divisible by clusters.
func ClusterAssignment(n, clusters int) []int {
	clusterOf := make([]int, n)
	for i := 0; i < n; i++ {
		clusterOf[i] = i * clusters / n
	}
	return clusterOf
}

// Generate builds the distance and flow matrices of a clustered QAP instance
// with n locations. Locations in the same cluster are close (distances 1..10)
// and exchange strong flows (80..200). Across clusters the distance grows
// with the cluster separation cd as 30+cd*10 .. 49+cd*10, and flows are
// moderate (5..80) except for rare heavy linkages (120..220, probability
// 0.05) that pull the two objectives against each other.
//
// The random stream is seeded once from seed and consumed in a fixed order:
// the full distance matrix row by row, then the full flow matrix row by row.
// The same (n, clusters, seed) therefore always yields the same matrices.
// Diagonal cells are 0 and consume no draw. n and clusters are expected to
// be positive; there is no validation.
func Generate(n, clusters int, seed int64) (distance, flow [][]int) {
	rng := rand.New(rand.NewSource(seed))
	clusterOf := ClusterAssignment(n, clusters)

	distance = make([][]int, n)
	for i := 0; i < n; i++ {
		distance[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if clusterOf[i] == clusterOf[j] {
				distance[i][j] = 1 + rng.Intn(10)
			} else {
				cd := clusterOf[i] - clusterOf[j]
				if cd < 0 {
					cd = -cd
				}
				distance[i][j] = 30 + cd*10 + rng.Intn(20)
			}
		}
	}

	flow = make([][]int, n)
	for i := 0; i < n; i++ {
		flow[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if clusterOf[i] == clusterOf[j] {
				flow[i][j] = 80 + rng.Intn(121)
			} else if rng.Float64() < 0.05 {
				flow[i][j] = 120 + rng.Intn(101)
			} else {
				flow[i][j] = 5 + rng.Intn(76)
			}
		}
	}
	return distance, flow
}

// NewInstance generates the matrices and wraps them together with the
// generation parameters.
func NewInstance(name string, n, clusters int, seed int64) QAPInstance {
	distance, flow := Generate(n, clusters, seed)
	return QAPInstance{
		Name:     name,
		Type:     TYPE_QAP,
		Size:     n,
		Clusters: clusters,
		Seed:     seed,
		Distance: distance,
		Flow:     flow,
	}
}
