package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var snapshotName string

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Manage saved resume snapshots",
}

var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved snapshots, newest first",
	RunE:  runSnapshotsList,
}

var snapshotsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current session as a named snapshot",
	RunE:  runSnapshotsSave,
}

var snapshotsLoadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Replace the current session from a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotsLoad,
}

var snapshotsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotsDelete,
}

func init() {
	snapshotsSaveCmd.Flags().StringVar(&snapshotName, "name", "Untitled Resume", "Snapshot name")
	snapshotsCmd.AddCommand(snapshotsListCmd, snapshotsSaveCmd, snapshotsLoadCmd, snapshotsDeleteCmd)
	rootCmd.AddCommand(snapshotsCmd)
}

func runSnapshotsList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	infos, err := store.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("No snapshots saved")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%s  %s  %s\n", info.ID, info.Date.Format("2006-01-02 15:04"), info.Name)
	}
	return nil
}

func runSnapshotsSave(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	sess, store, err := openSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	snapshot, err := sess.SaveSnapshot(ctx, snapshotName)
	if err != nil {
		return err
	}
	fmt.Printf("Saved %s as %q\n", snapshot.ID, snapshot.Name)
	return nil
}

func runSnapshotsLoad(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	sess, store, err := openSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := sess.LoadSnapshot(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Loaded %s\n", args[0])
	return nil
}

func runSnapshotsDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Remove(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted %s\n", args[0])
	return nil
}
