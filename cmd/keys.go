package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/keywarden/keywarden/internal/keyring"
)

const cliTimeout = 30 * time.Second

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage GnuPG keys from the command line",
	Long:  "List, export, import and delete keys without entering the interface.",
}

var keysListCmd = &cobra.Command{
	Use:     "list [pub|sec] [patterns...]",
	Aliases: []string{"ls"},
	Short:   "List keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		keyType, patterns := keyTypeArgs(args)

		ring, ctx, cancel, err := cliKeyring()
		if err != nil {
			return err
		}
		defer cancel()

		keys, err := ring.List(ctx, keyType, patterns)
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			fmt.Println("No keys found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY ID\tALGORITHM\tCREATED\tUSER ID")
		for _, key := range keys {
			created := "-"
			if len(key.Subkeys) > 0 && !key.Subkeys[0].CreatedAt.IsZero() {
				created = key.Subkeys[0].CreatedAt.Format("2006-01-02")
			}
			algo := "-"
			if len(key.Subkeys) > 0 {
				algo = key.Subkeys[0].Algorithm
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", key.ID(), algo, created, key.PrimaryUserID())
		}
		return w.Flush()
	},
}

var keysExportCmd = &cobra.Command{
	Use:   "export [pub|sec] [patterns...]",
	Short: "Export keys to the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		keyType, patterns := keyTypeArgs(args)
		subkeys, _ := cmd.Flags().GetBool("subkeys")

		ring, ctx, cancel, err := cliKeyring()
		if err != nil {
			return err
		}
		defer cancel()

		path, err := ring.Export(ctx, keyType, patterns, subkeys)
		if err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", path)
		return nil
	},
}

var keysImportCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import keys from files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ring, ctx, cancel, err := cliKeyring()
		if err != nil {
			return err
		}
		defer cancel()

		if err := ring.Import(ctx, args); err != nil {
			return err
		}
		fmt.Println("Imported.")
		return nil
	},
}

var keysDeleteCmd = &cobra.Command{
	Use:     "delete [pub|sec] <keyid>",
	Aliases: []string{"rm"},
	Short:   "Delete a key from the keyring",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyType := keyring.Public
		keyID := args[0]
		if len(args) == 2 {
			parsed, err := keyring.ParseKeyType(args[0])
			if err != nil {
				return err
			}
			keyType = parsed
			keyID = args[1]
		}

		ring, ctx, cancel, err := cliKeyring()
		if err != nil {
			return err
		}
		defer cancel()

		if err := ring.Delete(ctx, keyType, keyID); err != nil {
			return err
		}
		fmt.Printf("Deleted %s.\n", keyID)
		return nil
	},
}

// keyTypeArgs splits an optional leading pub/sec token from the
// remaining pattern arguments.
func keyTypeArgs(args []string) (keyring.KeyType, []string) {
	keyType := keyring.Public
	if len(args) > 0 {
		if parsed, err := keyring.ParseKeyType(strings.ToLower(args[0])); err == nil {
			return parsed, args[1:]
		}
	}
	return keyType, args
}

func cliKeyring() (keyring.Keyring, context.Context, context.CancelFunc, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	ring, err := newKeyring(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), cliTimeout)
	return ring, ctx, cancel, nil
}

func init() {
	keysExportCmd.Flags().Bool("subkeys", false, "export secret subkeys only")

	keysCmd.AddCommand(keysListCmd)
	keysCmd.AddCommand(keysExportCmd)
	keysCmd.AddCommand(keysImportCmd)
	keysCmd.AddCommand(keysDeleteCmd)

	rootCmd.AddCommand(keysCmd)
}
