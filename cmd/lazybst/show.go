package main

import (
	"fmt"
	"io"

	"github.com/johnsiilver/lazytree/tree/lazybst"
)

// show builds a tree from keys, removes the keys in remove and writes the tree
// before and after rebalancing to w.
func show(w io.Writer, keys, remove []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("no keys to insert")
	}

	root := lazybst.New(keys[0])
	for _, k := range keys[1:] {
		if err := root.Insert(k); err != nil {
			return err
		}
	}
	for _, k := range remove {
		root.Remove(k)
	}

	fmt.Fprintf(w, "before (%d nodes, height %d):\n%s\n", lazybst.Len(root), lazybst.Height(root), root)

	stats := lazybst.Stats{}
	root = lazybst.Rebalance(root, lazybst.WithStats(&stats))

	fmt.Fprintf(w, "after (%d nodes, height %d, %d purged):\n%s\n", lazybst.Len(root), lazybst.Height(root), stats.Purged, root)
	return nil
}
