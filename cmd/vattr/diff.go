package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vattr/internal/demo"
	"github.com/vango-dev/vattr/pkg/protocol"
	"github.com/vango-dev/vattr/pkg/render"
	"github.com/vango-dev/vattr/pkg/vdom"
)

func diffCmd(flags *rootFlags) *cobra.Command {
	var wire bool

	cmd := &cobra.Command{
		Use:   "diff [from] [to]",
		Short: "Print the patches between two demo states",
		Long: `Diff the views of two demo states and print the patches, one per line.

Defaults to initial and sample. With --wire the encoded size of the
patches frame is printed as well.

Examples:
  vattr diff
  vattr diff initial empty --wire`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(flags); err != nil {
				return err
			}
			from, to := "initial", "sample"
			if len(args) > 0 {
				from = args[0]
			}
			if len(args) > 1 {
				to = args[1]
			}
			return runDiff(cmd.OutOrStdout(), from, to, wire)
		},
	}

	cmd.Flags().BoolVarP(&wire, "wire", "w", false, "Print the encoded frame size")

	return cmd
}

func runDiff(w io.Writer, from, to string, wire bool) error {
	prevModel, err := demo.State(from)
	if err != nil {
		return err
	}
	nextModel, err := demo.State(to)
	if err != nil {
		return err
	}

	hids := vdom.NewHIDGenerator()
	prev := demo.View(prevModel)
	vdom.AssignAllHIDs(prev, hids)
	next := demo.View(nextModel)

	patches := vdom.Diff(prev, next)
	r := render.NewRenderer[vdom.Event, demo.Msg](render.RendererConfig{})
	for _, p := range patches {
		line, err := formatPatch(r, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}

	if wire {
		frame := protocol.NewFrame(protocol.FramePatches, protocol.EncodePatches(&protocol.PatchesFrame{
			Seq:     1,
			Patches: protocol.FromVDOM(patches),
		}))
		info(w, "%d patches, %d bytes on the wire", len(patches), len(frame.Encode()))
	}
	return nil
}

// formatPatch renders p as a single line, with inserted and replacing
// subtrees shown as HTML.
func formatPatch(r *render.Renderer[vdom.Event, demo.Msg], p vdom.Patch[vdom.Event, demo.Msg]) (string, error) {
	line := p.Op.String() + " " + p.HID
	switch p.Op {
	case vdom.PatchSetText:
		line += " " + strconv.Quote(p.Value)
	case vdom.PatchSetAttr, vdom.PatchSetProp:
		line += " " + p.Key + "=" + strconv.Quote(p.Value)
	case vdom.PatchRemoveAttr, vdom.PatchRemoveProp, vdom.PatchAddListener, vdom.PatchRemoveListener:
		line += " " + p.Key
	case vdom.PatchMoveNode:
		line = fmt.Sprintf("%s %s -> %s[%d]", p.Op, p.HID, p.ParentID, p.Index)
	case vdom.PatchInsertNode, vdom.PatchReplaceNode:
		html, err := r.RenderToString(p.Node)
		if err != nil {
			return "", err
		}
		if p.Op == vdom.PatchInsertNode {
			line = fmt.Sprintf("%s %s[%d]", p.Op, p.ParentID, p.Index)
		}
		line += " " + html
	}
	return line, nil
}
