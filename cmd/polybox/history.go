package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/polybox/internal/storage"
)

func historyCommand() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "saved sessions",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sessions",
		Args:  cobra.NoArgs,
		RunE:  listSessions,
	}

	showCmd := &cobra.Command{
		Use:   "show [session_id]",
		Short: "show the steps of a session",
		Args:  cobra.ExactArgs(1),
		RunE:  showSession,
	}

	exportCmd := &cobra.Command{
		Use:   "export [session_id]",
		Short: "export a session to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSession,
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	historyCmd.AddCommand(listCmd, showCmd, exportCmd)
	return historyCmd
}

func listSessions(cmd *cobra.Command, args []string) error {
	st := storage.New(app.cfg.DataDir)
	sessions, err := st.List()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(w, "no sessions found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tTIME\tP\tQ\tRESULT")
	for _, s := range sessions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			s.Kind,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Operands[0],
			s.Operands[1],
			s.Summary,
		)
	}
	return tw.Flush()
}

func showSession(cmd *cobra.Command, args []string) error {
	st := storage.New(app.cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	steps, err := st.LoadSteps(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s  %s  (%s) %s (%s)\n\n", meta.ID, meta.Timestamp.Format("2006-01-02 15:04:05"),
		meta.Operands[0], meta.Kind.Symbol(), meta.Operands[1])
	for _, s := range steps {
		fmt.Fprintf(w, "%d. %s [%s]\n   %s\n", s.ID, s.Title, s.Visual, s.Description)
	}
	fmt.Fprintf(w, "\nresult: %s\n", meta.Summary)
	return nil
}

func exportSession(cmd *cobra.Command, args []string) error {
	st := storage.New(app.cfg.DataDir)
	if outPath == "" {
		return st.ExportSession(args[0], cmd.OutOrStdout())
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := st.ExportSession(args[0], f); err != nil {
		return err
	}
	app.logger.Info("session exported", "id", args[0], "path", outPath)
	return nil
}
