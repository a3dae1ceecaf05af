package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tender-dapp/services/tender/helpers"
)

func findCmd(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

func writeMemoryConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
chain:
  backend: memory
wallet:
  keys:
    - ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80
    - 59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d
official:
  address: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
log:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd_Structure(t *testing.T) {
	t.Parallel()

	root := NewRootCmd()
	require.Equal(t, "tenderd", root.Use)
	require.NotNil(t, root.PersistentFlags().Lookup("config"))

	for _, name := range []string{"serve", "tenders", "accounts"} {
		require.NotNil(t, findCmd(root, name), "subcommand %q not present", name)
	}

	list := findCmd(findCmd(root, "tenders"), "list")
	require.NotNil(t, list)
	require.NotNil(t, list.Flags().Lookup("output"))
}

func TestAccountsCmd(t *testing.T) {
	t.Parallel()

	out, err := runCmd(t, "accounts", "--config", writeMemoryConfig(t), "-o", "yaml")
	require.NoError(t, err)

	var rows []accountRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)

	require.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", rows[0].Address)
	require.Equal(t, "bidder", string(rows[0].Role))
	require.True(t, rows[0].Active)

	require.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", rows[1].Address)
	require.Equal(t, "official", string(rows[1].Role))
	require.False(t, rows[1].Active)
}

func TestTendersListCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		output  string
		wantErr bool
	}{
		{name: "json", output: "json"},
		{name: "yaml", output: "yaml"},
		{name: "unsupported", output: "xml", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, err := runCmd(t, "tenders", "list", "--config", writeMemoryConfig(t), "-o", tc.output)
			if tc.wantErr {
				require.ErrorContains(t, err, "unsupported output format")
				return
			}
			require.NoError(t, err)

			var tenders []helpers.TenderResponse
			if tc.output == "json" {
				require.NoError(t, json.Unmarshal([]byte(out), &tenders))
			} else {
				require.NoError(t, yaml.Unmarshal([]byte(out), &tenders))
			}
			require.Empty(t, tenders)
		})
	}
}

func TestLoadApp_BadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chain:\n  backend: ipc\n"), 0o600))

	_, err := runCmd(t, "accounts", "--config", path)
	require.ErrorContains(t, err, "chain.backend")
}

func TestPrintOutput(t *testing.T) {
	t.Parallel()

	rows := []accountRow{{Address: "0xabc", Role: "official", Active: true}}

	var buf bytes.Buffer
	require.NoError(t, printOutput(&buf, outputYAML, rows))
	var decoded []accountRow
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, rows, decoded)
	require.Contains(t, buf.String(), "role: official")

	buf.Reset()
	require.NoError(t, printOutput(&buf, outputJSON, rows))
	require.Contains(t, buf.String(), `"active": true`)
}
