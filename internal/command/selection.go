package command

import "fmt"

// Selection is a key property that can be copied to the clipboard.
type Selection int

const (
	// SelectionRow1 is the subkey column of the selected table row.
	SelectionRow1 Selection = iota
	// SelectionRow2 is the user ID column of the selected table row.
	SelectionRow2
	// SelectionKey is the exported key material.
	SelectionKey
	// SelectionKeyID is the ID of the selected key.
	SelectionKeyID
	// SelectionKeyFingerprint is the fingerprint of the selected key.
	SelectionKeyFingerprint
	// SelectionKeyUserID is the primary user ID of the selected key.
	SelectionKeyUserID
)

func (s Selection) String() string {
	switch s {
	case SelectionRow1:
		return "table row (1)"
	case SelectionRow2:
		return "table row (2)"
	case SelectionKey:
		return "exported key"
	case SelectionKeyID:
		return "key ID"
	case SelectionKeyFingerprint:
		return "key fingerprint"
	default:
		return "user ID"
	}
}

// ParseSelection resolves a copy target token.
func ParseSelection(s string) (Selection, error) {
	switch s {
	case "row1", "1":
		return SelectionRow1, nil
	case "row2", "2":
		return SelectionRow2, nil
	case "key":
		return SelectionKey, nil
	case "key_id", "id":
		return SelectionKeyID, nil
	case "key_fingerprint", "fingerprint":
		return SelectionKeyFingerprint, nil
	case "key_user_id", "user":
		return SelectionKeyUserID, nil
	default:
		return SelectionKey, fmt.Errorf("invalid selection %q", s)
	}
}
