package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/weberc2/memfs/pkg/filesystem"
	. "github.com/weberc2/memfs/pkg/types"
)

func renderList(w io.Writer, children []filesystem.FileInfo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tKIND\tSIZE\tBLOCKS\tMODIFIED\tNAME")
	for i := range children {
		c := &children[i]
		name := c.Name
		if c.Kind == KindDir {
			name += "/"
		}
		fmt.Fprintf(
			tw,
			"%d\t%s\t%s\t%s\t%s\t%s\n",
			c.Index,
			c.Kind,
			humanize.IBytes(uint64(c.Size)),
			c.Blocks,
			c.ModifiedAt.Format(time.ANSIC),
			name,
		)
	}
	return tw.Flush()
}

func renderStat(
	w io.Writer,
	path string,
	info *filesystem.FileInfo,
	now time.Time,
) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "path:\t%s\n", path)
	fmt.Fprintf(tw, "index:\t%d\n", info.Index)
	fmt.Fprintf(tw, "kind:\t%s\n", info.Kind)
	fmt.Fprintf(tw, "parent:\t%d\n", info.Parent)
	fmt.Fprintf(
		tw,
		"size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(info.Size)),
		info.Size,
	)
	fmt.Fprintf(tw, "blocks:\t%s\n", info.Blocks)
	fmt.Fprintf(tw, "created:\t%s\n", info.CreatedAt.Format(time.ANSIC))
	fmt.Fprintf(
		tw,
		"modified:\t%s (%s)\n",
		info.ModifiedAt.Format(time.ANSIC),
		humanize.RelTime(info.ModifiedAt, now, "ago", "from now"),
	)
	return tw.Flush()
}

func renderStats(w io.Writer, stats filesystem.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	capacity := uint64(stats.BlockSize) * uint64(stats.Blocks)
	used := uint64(stats.BlockSize) * uint64(stats.Used)
	fmt.Fprintf(tw, "id:\t%s\n", stats.ID)
	fmt.Fprintf(
		tw,
		"blocks:\t%s used of %s (%s of %s)\n",
		humanize.Comma(int64(stats.Used)),
		humanize.Comma(int64(stats.Blocks)),
		humanize.IBytes(used),
		humanize.IBytes(capacity),
	)
	fmt.Fprintf(tw, "block size:\t%s\n", humanize.IBytes(uint64(stats.BlockSize)))
	fmt.Fprintf(tw, "largest free run:\t%s blocks\n", humanize.Comma(int64(stats.LargestFreeRun)))
	fmt.Fprintf(tw, "entries:\t%d used of %d\n", stats.Live, stats.Entries)
	fmt.Fprintf(tw, "name max:\t%d\n", stats.NameMax)
	return tw.Flush()
}
