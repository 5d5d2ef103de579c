// lazybst builds a tree from the command line, removes keys from it and prints
// it before and after a rebalance. With --bench it instead times rebalancing of
// a large random tree.
//
// Examples:
//
//	lazybst --keys=d,b,e,o,a,i,x,h,c,f,g --remove=a,x,o
//	lazybst --bench --count=1000000 --remove_ratio=0.3
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

var (
	keys   = pflag.String("keys", "", "Comma separated keys to insert, in order. The first key is the root")
	remove = pflag.String("remove", "", "Comma separated keys to remove before rebalancing")

	bench       = pflag.Bool("bench", false, "Time the rebalance of a random tree instead of printing one")
	count       = pflag.Int("count", 1000000, "The number of keys to insert with --bench")
	removeRatio = pflag.Float64("remove_ratio", 0.25, "The fraction of keys to remove with --bench")
	seed        = pflag.Int64("seed", 1, "The random seed used with --bench")
)

func main() {
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()
	defer glog.Flush()

	if err := checkFlags(*bench, *keys, *count, *removeRatio); err != nil {
		glog.Fatalf("%s", err)
	}

	if *bench {
		if err := runBench(os.Stdout, *count, *removeRatio, *seed); err != nil {
			glog.Fatalf("bench failed: %s", err)
		}
		return
	}

	if err := show(os.Stdout, splitKeys(*keys), splitKeys(*remove)); err != nil {
		glog.Fatalf("%s", err)
	}
}

// checkFlags validates the flags for the mode selected by bench.
func checkFlags(bench bool, keys string, count int, removeRatio float64) error {
	if !bench {
		if keys == "" {
			return fmt.Errorf("--keys or --bench is required")
		}
		return nil
	}
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}
	if removeRatio < 0 || removeRatio > 1 {
		return fmt.Errorf("--remove_ratio must be in [0, 1], got %v", removeRatio)
	}
	return nil
}

func splitKeys(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
