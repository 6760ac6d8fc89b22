package keyring

import (
	"strconv"
	"strings"
	"time"
)

// parseColons parses `gpg --with-colons` listing output into keys.
//
// Relevant record types: pub/sec start a new certificate, sub/ssb add a
// subkey, fpr attaches a fingerprint to the last seen (sub)key, uid adds
// a user ID. Unknown records are skipped.
func parseColons(out string, keyType KeyType) []*Key {
	var keys []*Key
	var current *Key
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Split(line, ":")
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "pub", "sec":
			if current != nil {
				keys = append(keys, current)
			}
			current = &Key{Type: keyType}
			current.Subkeys = append(current.Subkeys, subkeyFromFields(fields))
		case "sub", "ssb":
			if current != nil {
				current.Subkeys = append(current.Subkeys, subkeyFromFields(fields))
			}
		case "fpr":
			if current != nil && len(current.Subkeys) > 0 && len(fields) > 9 {
				last := &current.Subkeys[len(current.Subkeys)-1]
				if last.Fingerprint == "" {
					last.Fingerprint = fields[9]
				}
			}
		case "uid":
			if current != nil && len(fields) > 9 {
				current.UserIDs = append(current.UserIDs, UserID{
					ID:       fields[9],
					Validity: validityLabel(fields[1]),
				})
			}
		}
	}
	if current != nil {
		keys = append(keys, current)
	}
	return keys
}

// Colon listing field layout (see gnupg doc/DETAILS): 2 validity,
// 3 length, 4 algorithm, 5 key ID, 6 creation, 7 expiry, 12 capabilities.
func subkeyFromFields(fields []string) Subkey {
	sk := Subkey{}
	if len(fields) > 4 {
		sk.Length, _ = strconv.Atoi(fields[2])
		sk.Algorithm = algoName(fields[3])
		sk.ID = fields[4]
	}
	if len(fields) > 6 {
		sk.CreatedAt = parseEpoch(fields[5])
		sk.ExpiresAt = parseEpoch(fields[6])
	}
	if len(fields) > 11 {
		sk.Capabilities = strings.ToLower(fields[11])
	}
	return sk
}

func parseEpoch(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(secs, 0).UTC()
}

func algoName(id string) string {
	switch id {
	case "1", "2", "3":
		return "rsa"
	case "16", "20":
		return "elg"
	case "17":
		return "dsa"
	case "18":
		return "ecdh"
	case "19":
		return "ecdsa"
	case "22":
		return "ed25519"
	default:
		return "?"
	}
}

func validityLabel(s string) string {
	switch s {
	case "u":
		return "ultimate"
	case "f":
		return "full"
	case "m":
		return "marginal"
	case "n":
		return "never"
	case "e":
		return "expired"
	case "r":
		return "revoked"
	default:
		return "unknown"
	}
}
