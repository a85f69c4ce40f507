package main

import (
	"fmt"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"iconview/internal/errors"
	"iconview/internal/icondb"
)

func listCmd() *cobra.Command {
	var dbPath string
	var match string

	cmd := &cobra.Command{
		Use:   "list [type [category]]",
		Short: "Print types, categories or ids from an index",
		Long: `With no arguments, prints the types in the index. With a type, prints its
categories (or its ids if the type is flat). With a type and a category,
prints the ids in that category. Ids are printed in display order and can
be narrowed with a glob pattern.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = cfg.Paths.IndexFile
			}
			if dbPath == "" {
				return errors.New("no index file given; pass --db or set paths.index_file in the config")
			}

			db, err := icondb.Load(dbPath)
			if err != nil {
				return errors.Wrap(err, "loading index")
			}

			var matcher glob.Glob
			if match != "" {
				matcher, err = glob.Compile(match)
				if err != nil {
					return errors.Wrapf(err, "invalid pattern %q", match)
				}
			}

			switch len(args) {
			case 0:
				for _, t := range db.Types() {
					printMatched(t, matcher)
				}
			case 1:
				typeName := args[0]
				if db.IsNested(typeName) {
					for _, c := range db.Categories(typeName) {
						printMatched(c, matcher)
					}
					return nil
				}
				printIDs(db.Entries(typeName, ""), matcher)
			case 2:
				printIDs(db.Entries(args[0], args[1]), matcher)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "icon index file to load")
	cmd.Flags().StringVar(&match, "match", "", "only print names matching this glob pattern")

	return cmd
}

func printIDs(entries icondb.Entries, matcher glob.Glob) {
	for _, id := range entries.SortedIDs("") {
		printMatched(id, matcher)
	}
}

func printMatched(name string, matcher glob.Glob) {
	if matcher == nil || matcher.Match(name) {
		fmt.Println(name)
	}
}
