package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"noteflow/internal/config"
	"noteflow/internal/gamify"
	"noteflow/internal/ops"
	"noteflow/internal/storage"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	styleKey   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	styleGood  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	styleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	styleBad   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "noteflow-ops",
		Short:         "NoteFlow operational tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		newStatusCmd(),
		newBackupCmd(),
		newRestoreCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleBad.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func kv(label string, value any) string {
	return fmt.Sprintf("%s %v", styleKey.Render(label+":"), value)
}

func newStatusCmd() *cobra.Command {
	var statePath string
	var scope string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the persisted gamification state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if statePath == "" {
				statePath = config.Default().Gamify.StatePath
			}
			if _, err := os.Stat(statePath); err != nil {
				return fmt.Errorf("state database not found at %s", statePath)
			}

			st, err := storage.OpenSQLite(statePath)
			if err != nil {
				return err
			}
			defer st.Close()

			sum, err := gamify.LoadSummary(context.Background(), st, scope)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styleTitle.Render("NoteFlow player status"))
			fmt.Fprintln(out, kv("Level", fmt.Sprintf("%d (%s)", sum.Level, sum.RankTitle)))
			fmt.Fprintln(out, kv("XP", fmt.Sprintf("%d (%d to next level)", sum.XP, sum.XPToNextLevel)))
			fmt.Fprintln(out, kv("Total XP gained", sum.TotalXPGained))
			if sum.LastLoginDate.IsZero() {
				fmt.Fprintln(out, kv("Login streak", styleMuted.Render("never logged in")))
			} else {
				fmt.Fprintln(out, kv("Login streak",
					fmt.Sprintf("%d (last login %s)", sum.LoginStreak, sum.LastLoginDate.Format("2006-01-02"))))
			}
			fmt.Fprintln(out, kv("Missions completed", sum.MissionsCompleted))
			fmt.Fprintln(out, kv("Badges earned", styleGood.Render(fmt.Sprintf("%d", sum.BadgesEarned))))
			return nil
		},
	}

	cmd.Flags().StringVar(&statePath, "state", "", "path to the state database (default: data/state.db)")
	cmd.Flags().StringVar(&scope, "scope", "default", "user scope to read")
	return cmd
}

func newBackupCmd() *cobra.Command {
	var dataDir string
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Archive the data directory to a tar.gz",
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				ts := time.Now().UTC().Format("20060102T150405Z")
				out = filepath.Join("backups", "noteflow-"+ts+".tar.gz")
			}
			rep, err := ops.BackupDataDir(dataDir, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s (%d files, %d bytes)\n",
				styleGood.Render("backup written: "), out, rep.Files, rep.Bytes)
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "path to the data directory")
	cmd.Flags().StringVar(&out, "out", "", "output archive path (.tar.gz)")
	return cmd
}

func newRestoreCmd() *cobra.Command {
	var archive string
	var target string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Unpack a backup archive into a directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if archive == "" {
				return fmt.Errorf("--archive is required")
			}
			rep, err := ops.RestoreDataDir(archive, target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s (%d files)\n",
				styleGood.Render("restored to: "), target, rep.Files)
			return nil
		},
	}

	cmd.Flags().StringVar(&archive, "archive", "", "input backup archive (.tar.gz)")
	cmd.Flags().StringVar(&target, "target-dir", "data-restored", "restore target directory")
	return cmd
}
