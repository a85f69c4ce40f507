package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"iconview/internal/errors"
	"iconview/internal/session"
	"iconview/internal/tui"
)

func tuiCmd() *cobra.Command {
	var dbPath string
	var rootDir string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the index in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = cfg.Paths.IndexFile
			}
			if dbPath == "" {
				return errors.New("no index file given; pass --db or set paths.index_file in the config")
			}

			sess := session.New()
			if err := sess.LoadIndex(dbPath); err != nil {
				return errors.Wrap(err, "loading index")
			}
			if rootDir == "" {
				rootDir = cfg.Paths.ImageRoot
			}
			if rootDir != "" {
				sess.SetRoot(rootDir)
			}

			m := tui.New(sess, version)
			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return errors.Wrap(err, "running terminal ui")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "icon index file to load")
	cmd.Flags().StringVar(&rootDir, "root", "", "image root directory")

	return cmd
}
