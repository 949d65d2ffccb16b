package vstol

import (
	"github.com/grailbio/base/traverse"
)

// runParallel applies f to every index in [0, n) using a worker pool bounded
// by numThreads, folding any worker error into a single returned error
// (spec.md §4.6, §5). numThreads <= 0 falls back to traverse's own default
// (GOMAXPROCS), the same convention markduplicates.Opts.Parallelism uses for
// "unset".
func runParallel(numThreads, n int, f func(i int) error) error {
	if n == 0 {
		return nil
	}
	t := traverse.T{Limit: numThreads}
	return t.Each(n, f)
}
