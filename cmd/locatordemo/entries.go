/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dirpx.dev/locator/apis"
)

// entryView is the printed form of an apis.Entry.
type entryView struct {
	Key     string    `json:"key"`
	Kind    apis.Kind `json:"kind"`
	Type    string    `json:"type,omitempty"`
	Pending bool      `json:"pending"`
}

func newEntriesCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List the wired bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			views := viewsOf(a.loc.Entries())
			switch format {
			case "text":
				return writeText(cmd.OutOrStdout(), views)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text, json)")
	return cmd
}

func viewsOf(entries []apis.Entry) []entryView {
	out := make([]entryView, 0, len(entries))
	for _, e := range entries {
		v := entryView{Key: e.Key, Kind: e.Kind, Pending: e.Pending}
		if e.Type != nil {
			v.Type = e.Type.String()
		}
		out = append(out, v)
	}
	slices.SortFunc(out, func(x, y entryView) int { return strings.Compare(x.Key, y.Key) })
	return out
}

func writeText(w io.Writer, views []entryView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tKIND\tTYPE")
	for _, v := range views {
		typ := v.Type
		if v.Pending {
			typ = "(pending)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Key, v.Kind, typ)
	}
	return tw.Flush()
}
