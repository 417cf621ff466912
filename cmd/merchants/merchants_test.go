package merchants_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/expense-tracker/cmd/merchants"
	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerchantsCommand_Subcommands(t *testing.T) {
	assert.Equal(t, "merchants", merchants.Cmd.Use)
	names := []string{}
	for _, c := range merchants.Cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"list", "import", "export"}, names)
	assert.NotNil(t, merchants.Cmd.PersistentFlags().Lookup("file"))
	assert.NotNil(t, merchants.ImportCmd.Flags().Lookup("recategorize"))
}

func TestRunList(t *testing.T) {
	directory := store.NewMemoryDirectory(map[string]string{"VONS SAN DIEGO": "Groceries", "STARBUCKS": "Coffee"})

	var out bytes.Buffer
	require.NoError(t, merchants.RunList(context.Background(), directory, &out))
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "STARBUCKS")
	assert.Contains(t, string(lines[1]), "VONS SAN DIEGO")
	assert.Equal(t, "2 merchant(s)", string(lines[2]))

	directory.GetAllEntriesError = errors.New("closed")
	assert.Error(t, merchants.RunList(context.Background(), directory, &out))
}

func TestRunImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merchants.yaml")
	content := "merchants:\n  \"MOBILE PURCHASE VONS #2012 SAN DIEGO\": Groceries\n  starbucks: Coffee\n  \"#123\": Nothing\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	directory := store.NewMemoryDirectory(nil)
	var out bytes.Buffer
	require.NoError(t, merchants.RunImport(context.Background(), directory, store.NewMappingFile(path, logging.NewMockLogger()), &out))

	assert.Equal(t, map[string]string{"VONS SAN DIEGO": "Groceries", "STARBUCKS": "Coffee"}, directory.Mappings())
	assert.Equal(t, "Imported 2 merchant(s), skipped 1 from "+path+"\n", out.String())
}

func TestRunExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export", "merchants.yaml")
	directory := store.NewMemoryDirectory(map[string]string{"STARBUCKS": "Coffee"})
	file := store.NewMappingFile(path, logging.NewMockLogger())

	var out bytes.Buffer
	require.NoError(t, merchants.RunExport(context.Background(), directory, file, &out))
	assert.Equal(t, "Exported 1 merchant(s) to "+path+"\n", out.String())

	loaded, err := file.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"STARBUCKS": "Coffee"}, loaded)
}
