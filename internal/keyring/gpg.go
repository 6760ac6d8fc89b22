package keyring

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
)

// Keyring is the narrow interface the control layer talks to. Every
// method is fallible; error messages are surfaced to the user verbatim.
type Keyring interface {
	List(ctx context.Context, keyType KeyType, patterns []string) ([]*Key, error)
	Export(ctx context.Context, keyType KeyType, patterns []string, subkeys bool) (string, error)
	ExportBytes(ctx context.Context, keyType KeyType, patterns []string) ([]byte, error)
	Delete(ctx context.Context, keyType KeyType, keyID string) error
	Sign(ctx context.Context, keyID string) error
	Send(ctx context.Context, keyID string) error
	Receive(ctx context.Context, keyIDs []string) error
	Import(ctx context.Context, paths []string) error
	RefreshKeys(ctx context.Context) error

	// SetArmor toggles ASCII armored output for later operations.
	SetArmor(armor bool)
	Armor() bool

	// EditCommand and GenerateCommand return unstarted commands for
	// the interactive gpg dialogs. The caller runs them with the
	// terminal released since gpg takes it over.
	EditCommand(keyID string) *exec.Cmd
	GenerateCommand() *exec.Cmd
}

// Options configure the gpg backend.
type Options struct {
	// Homedir overrides the GnuPG home directory (--homedir).
	Homedir string
	// Outdir is where exported keys are written. Defaults to Homedir/out.
	Outdir string
	// Armor enables ASCII armored output.
	Armor bool
	// DefaultKey is the key used for signing (--default-key).
	DefaultKey string
}

// GPG runs keyring operations through the gpg executable.
type GPG struct {
	opts Options
	bin  string
}

// NewGPG locates the gpg binary and returns a backend for it.
// KEYWARDEN_GPG_PATH overrides the lookup.
func NewGPG(opts Options) (*GPG, error) {
	bin := os.Getenv("KEYWARDEN_GPG_PATH")
	if bin == "" {
		var err error
		bin, err = exec.LookPath("gpg")
		if err != nil {
			return nil, fmt.Errorf("gpg not found in PATH: %w", err)
		}
	}
	return &GPG{opts: opts, bin: bin}, nil
}

// SetArmor toggles ASCII armored output for subsequent operations.
func (g *GPG) SetArmor(armor bool) {
	g.opts.Armor = armor
}

// Armor reports whether ASCII armored output is enabled.
func (g *GPG) Armor() bool {
	return g.opts.Armor
}

func (g *GPG) run(ctx context.Context, args ...string) (string, error) {
	base := []string{"--batch", "--no-tty", "--yes"}
	if g.opts.Homedir != "" {
		base = append(base, "--homedir", g.opts.Homedir)
	}
	if g.opts.Armor {
		base = append(base, "--armor")
	}
	if g.opts.DefaultKey != "" {
		base = append(base, "--default-key", g.opts.DefaultKey)
	}
	cmd := exec.CommandContext(ctx, g.bin, append(base, args...)...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	logrus.WithField("args", args).Debug("running gpg")
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(errOut.String())
		if msg == "" {
			msg = err.Error()
		}
		return out.String(), fmt.Errorf("gpg: %s", msg)
	}
	return out.String(), nil
}

// List returns the keys of the given type, filtered by glob patterns
// matched against key IDs, fingerprints and user IDs. No patterns means
// all keys.
func (g *GPG) List(ctx context.Context, keyType KeyType, patterns []string) ([]*Key, error) {
	listArg := "--list-keys"
	if keyType == Secret {
		listArg = "--list-secret-keys"
	}
	out, err := g.run(ctx, "--with-colons", "--fingerprint", listArg)
	if err != nil {
		return nil, err
	}
	keys := parseColons(out, keyType)
	return filterKeys(keys, patterns)
}

func filterKeys(keys []*Key, patterns []string) ([]*Key, error) {
	if len(patterns) == 0 {
		return keys, nil
	}
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		compiled, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		globs = append(globs, compiled)
	}
	var matched []*Key
	for _, key := range keys {
		if keyMatches(key, globs) {
			matched = append(matched, key)
		}
	}
	return matched, nil
}

func keyMatches(key *Key, globs []glob.Glob) bool {
	var candidates []string
	for _, sk := range key.Subkeys {
		candidates = append(candidates, strings.ToLower(sk.ID), strings.ToLower("0x"+sk.ID), strings.ToLower(sk.Fingerprint))
	}
	for _, uid := range key.UserIDs {
		candidates = append(candidates, strings.ToLower(uid.ID))
	}
	for _, g := range globs {
		for _, c := range candidates {
			if g.Match(c) {
				return true
			}
		}
	}
	return false
}

// Export writes the matching keys to the output directory and returns
// the written path.
func (g *GPG) Export(ctx context.Context, keyType KeyType, patterns []string, subkeys bool) (string, error) {
	data, err := g.exportData(ctx, keyType, patterns, subkeys)
	if err != nil {
		return "", err
	}
	outdir := g.opts.Outdir
	if outdir == "" {
		outdir = filepath.Join(g.opts.Homedir, "out")
	}
	if err := os.MkdirAll(outdir, 0o700); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	name := keyType.String()
	if len(patterns) > 0 {
		name += "_" + sanitize(patterns[0])
	}
	ext := ".pgp"
	if g.opts.Armor {
		ext = ".asc"
	}
	path := filepath.Join(outdir, name+ext)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// ExportBytes returns the exported key material without writing a file.
func (g *GPG) ExportBytes(ctx context.Context, keyType KeyType, patterns []string) ([]byte, error) {
	data, err := g.exportData(ctx, keyType, patterns, false)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (g *GPG) exportData(ctx context.Context, keyType KeyType, patterns []string, subkeys bool) ([]byte, error) {
	exportArg := "--export"
	if keyType == Secret {
		exportArg = "--export-secret-keys"
		if subkeys {
			exportArg = "--export-secret-subkeys"
		}
	}
	args := append([]string{exportArg}, patterns...)
	out, err := g.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no keys matched for export")
	}
	return []byte(out), nil
}

// Delete removes a key from the keyring.
func (g *GPG) Delete(ctx context.Context, keyType KeyType, keyID string) error {
	deleteArg := "--delete-key"
	if keyType == Secret {
		deleteArg = "--delete-secret-and-public-key"
	}
	_, err := g.run(ctx, deleteArg, keyID)
	return err
}

// Sign signs a key with the default secret key.
func (g *GPG) Sign(ctx context.Context, keyID string) error {
	_, err := g.run(ctx, "--sign-key", keyID)
	return err
}

// EditCommand returns the interactive gpg key editor command.
func (g *GPG) EditCommand(keyID string) *exec.Cmd {
	args := []string{"--edit-key", keyID}
	if g.opts.Homedir != "" {
		args = append([]string{"--homedir", g.opts.Homedir}, args...)
	}
	return exec.Command(g.bin, args...)
}

// Send uploads a key to the default keyserver.
func (g *GPG) Send(ctx context.Context, keyID string) error {
	_, err := g.run(ctx, "--send-keys", keyID)
	return err
}

// Receive fetches keys from the default keyserver.
func (g *GPG) Receive(ctx context.Context, keyIDs []string) error {
	if len(keyIDs) == 0 {
		return fmt.Errorf("no key IDs given")
	}
	_, err := g.run(ctx, append([]string{"--recv-keys"}, keyIDs...)...)
	return err
}

// GenerateCommand returns the interactive key generation command.
func (g *GPG) GenerateCommand() *exec.Cmd {
	args := []string{"--full-generate-key"}
	if g.opts.Homedir != "" {
		args = append([]string{"--homedir", g.opts.Homedir}, args...)
	}
	return exec.Command(g.bin, args...)
}

// Import reads keys from the given files into the keyring.
func (g *GPG) Import(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no files given")
	}
	_, err := g.run(ctx, append([]string{"--import"}, paths...)...)
	return err
}

// RefreshKeys requests updates for all keys from the keyserver.
func (g *GPG) RefreshKeys(ctx context.Context) error {
	_, err := g.run(ctx, "--refresh-keys")
	return err
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, s)
}
