package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/johnsiilver/lazytree/tree/lazybst"
	"github.com/shirou/gopsutil/process"
)

// rss returns the resident memory of this process.
func rss() (uint64, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, err
	}
	mi, err := p.MemoryInfo()
	if err != nil {
		return 0, err
	}
	return mi.RSS, nil
}

// runBench inserts count random keys, removes about removeRatio of them and
// reports how long the rebalance took.
func runBench(w io.Writer, count int, removeRatio float64, seed int64) error {
	r := rand.New(rand.NewSource(seed))
	keys := r.Perm(count)

	start := time.Now()
	root := lazybst.New(keys[0])
	for _, k := range keys[1:] {
		if err := root.Insert(k); err != nil {
			return err
		}
	}
	insertTime := time.Since(start)

	removed := 0
	for _, k := range keys {
		if r.Float64() < removeRatio {
			root.Remove(k)
			removed++
		}
	}
	glog.V(1).Infof("inserted %d keys, removed %d", count, removed)

	height := lazybst.Height(root)
	before, err := rss()
	if err != nil {
		return fmt.Errorf("could not read process memory: %w", err)
	}

	stats := lazybst.Stats{}
	start = time.Now()
	root = lazybst.Rebalance(root, lazybst.WithStats(&stats))
	rebalanceTime := time.Since(start)

	after, err := rss()
	if err != nil {
		return fmt.Errorf("could not read process memory: %w", err)
	}

	if stats.Purged != removed {
		return fmt.Errorf("rebalance purged %d nodes, but %d were removed", stats.Purged, removed)
	}

	fmt.Fprintf(w, "inserted:   %s keys in %s\n", humanize.Comma(int64(count)), insertTime)
	fmt.Fprintf(w, "removed:    %s keys\n", humanize.Comma(int64(removed)))
	fmt.Fprintf(w, "height:     %d -> %d\n", height, lazybst.Height(root))
	fmt.Fprintf(w, "rotations:  %s vine, %s balance\n",
		humanize.Comma(int64(stats.VineRotations)), humanize.Comma(int64(stats.BalanceRotations)))
	fmt.Fprintf(w, "rebalance:  %s\n", rebalanceTime)
	fmt.Fprintf(w, "rss:        %s -> %s\n", humanize.Bytes(before), humanize.Bytes(after))

	lazybst.Destroy(root)
	return nil
}
