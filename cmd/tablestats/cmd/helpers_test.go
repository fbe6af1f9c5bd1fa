package cmd

import (
	"bytes"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// resetCommandState restores flag variables and command IO before and after a test.
func resetCommandState(t *testing.T) {
	t.Helper()
	reset := func() {
		cfgFile = DefaultConfigFile
		logLevel, logFormat, dialect, project = "", "", "", ""
		reportOut, reportTop, reportIFrame, reportQuiet = "", 0, false, false
		validateOffline = false

		for _, name := range []string{"config", "log-level", "log-format", "dialect", "project"} {
			rootCmd.PersistentFlags().Lookup(name).Changed = false
		}
		for _, name := range []string{"out", "top", "iframe", "quiet"} {
			reportCmd.Flags().Lookup(name).Changed = false
		}
		validateCmd.Flags().Lookup("offline").Changed = false

		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}
	reset()
	t.Cleanup(reset)
}

// runRoot executes the CLI with args and returns what it wrote to stdout and stderr.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// sqliteFixture creates a SQLite database with a small people table and a
// config file pointing at it. It returns the config path.
func sqliteFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "people.db")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE people (name TEXT, age INTEGER, photo BLOB)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO people VALUES
		('alice', 10, NULL),
		('bob', -5, NULL),
		('alice', 0, NULL),
		(NULL, NULL, NULL)`)
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, "tablestats.yaml")
	cfg := fmt.Sprintf("source:\n  dialect: sqlite\n  database: %q\nlogging:\n  level: error\n", dbPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))
	return cfgPath
}
