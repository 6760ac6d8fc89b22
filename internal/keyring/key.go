// Package keyring models OpenPGP keys and runs keyring operations
// through the gpg binary.
package keyring

import (
	"fmt"
	"strings"
	"time"
)

// KeyType selects between the public and the secret keyring.
type KeyType int

const (
	Public KeyType = iota
	Secret
)

func (t KeyType) String() string {
	if t == Secret {
		return "sec"
	}
	return "pub"
}

// ParseKeyType resolves the key type tokens used by the command language.
func ParseKeyType(s string) (KeyType, error) {
	switch strings.ToLower(s) {
	case "pub", "public":
		return Public, nil
	case "sec", "secret", "private":
		return Secret, nil
	default:
		return Public, fmt.Errorf("invalid key type %q", s)
	}
}

// Detail is the level of information shown for a key in the table.
type Detail int

const (
	DetailMinimum Detail = iota
	DetailStandard
	DetailFull
)

func (d Detail) String() string {
	switch d {
	case DetailStandard:
		return "standard"
	case DetailFull:
		return "full"
	default:
		return "minimum"
	}
}

// ParseDetail resolves a detail level token.
func ParseDetail(s string) (Detail, error) {
	switch strings.ToLower(s) {
	case "minimum", "min", "1":
		return DetailMinimum, nil
	case "standard", "std", "2":
		return DetailStandard, nil
	case "full", "max", "3":
		return DetailFull, nil
	default:
		return DetailMinimum, fmt.Errorf("invalid detail level %q", s)
	}
}

// Increase cycles to the next detail level, wrapping back to minimum.
func (d *Detail) Increase() {
	switch *d {
	case DetailMinimum:
		*d = DetailStandard
	case DetailStandard:
		*d = DetailFull
	default:
		*d = DetailMinimum
	}
}

// Subkey is a single (sub)key of a certificate.
type Subkey struct {
	ID           string
	Algorithm    string
	Length       int
	Fingerprint  string
	Capabilities string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// UserID is an identity bound to a key.
type UserID struct {
	ID       string
	Validity string
}

// Key is a single certificate in the keyring along with the detail
// level it is currently displayed with.
type Key struct {
	Type    KeyType
	Subkeys []Subkey
	UserIDs []UserID
	Detail  Detail
}

// ID returns the key ID of the primary key, 0x-prefixed.
func (k *Key) ID() string {
	if len(k.Subkeys) == 0 {
		return ""
	}
	return "0x" + k.Subkeys[0].ID
}

// Fingerprint returns the fingerprint of the primary key.
func (k *Key) Fingerprint() string {
	if len(k.Subkeys) == 0 {
		return ""
	}
	return k.Subkeys[0].Fingerprint
}

// PrimaryUserID returns the first user ID on the key.
func (k *Key) PrimaryUserID() string {
	if len(k.UserIDs) == 0 {
		return ""
	}
	return k.UserIDs[0].ID
}

// SubkeyInfo returns the lines shown in the first table column. The
// minimized variant drops algorithm and expiry information.
func (k *Key) SubkeyInfo(minimized bool) []string {
	var lines []string
	for i, sk := range k.Subkeys {
		prefix := "[" + sk.Capabilities + "]"
		var line string
		if minimized {
			line = fmt.Sprintf("%s %s", prefix, "0x"+sk.ID)
		} else {
			line = fmt.Sprintf("%s %s/%s", prefix, algoLabel(sk), "0x"+sk.ID)
		}
		lines = append(lines, line)
		if k.Detail >= DetailStandard && !minimized {
			lines = append(lines, "       "+sk.Fingerprint)
		}
		if k.Detail == DetailFull && !minimized {
			dates := fmt.Sprintf("       (%s)", formatDates(sk))
			lines = append(lines, dates)
		}
		if i == 0 && k.Detail == DetailMinimum {
			break
		}
	}
	return lines
}

// UserInfo returns the lines shown in the second table column.
func (k *Key) UserInfo(minimized bool) []string {
	var lines []string
	for i, uid := range k.UserIDs {
		if minimized || k.Detail == DetailMinimum {
			if i == 0 {
				lines = append(lines, uid.ID)
			}
			continue
		}
		if i == 0 {
			lines = append(lines, fmt.Sprintf("[%s] %s", uid.Validity, uid.ID))
		} else {
			lines = append(lines, fmt.Sprintf(" └─[%s] %s", uid.Validity, uid.ID))
		}
	}
	return lines
}

func algoLabel(sk Subkey) string {
	if sk.Length > 0 {
		return fmt.Sprintf("%s%d", sk.Algorithm, sk.Length)
	}
	return sk.Algorithm
}

func formatDates(sk Subkey) string {
	created := "?"
	if !sk.CreatedAt.IsZero() {
		created = sk.CreatedAt.Format("2006-01-02")
	}
	if sk.ExpiresAt.IsZero() {
		return created
	}
	return created + " -> " + sk.ExpiresAt.Format("2006-01-02")
}
