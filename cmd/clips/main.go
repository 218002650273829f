// Command clips inspects the animation clip tree without opening a window.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"text/tabwriter"

	"github.com/milk9111/magus/component"
	"github.com/milk9111/magus/prefabs"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "clips",
		Short: "Inspect animation clips",
	}
	cmd.SilenceUsage = true
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVarP(&dir, "dir", "d", "", "clip directory (default: prefabs/animations, then the embedded tree)")

	source := func() fs.FS {
		if dir != "" {
			return os.DirFS(dir)
		}
		return prefabs.AnimationsFS()
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List clip ids with their length and keyframe count",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				lib, err := prefabs.LoadLibrary(source())
				if err != nil {
					return err
				}
				return writeList(cmd.OutOrStdout(), lib)
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Load every clip and report problems",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				lib, err := prefabs.LoadLibrary(source())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d clips\n", lib.Len())
				return nil
			},
		},
	)
	return cmd
}

func writeList(w io.Writer, lib *component.Library) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEND\tKEYFRAMES")
	for _, id := range lib.IDs() {
		clip, err := lib.Get(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", id, clip.EndTick, len(clip.Keyframes))
	}
	return tw.Flush()
}
