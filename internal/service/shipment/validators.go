package shipment

import "strings"

func isValidNoteID(noteID string) bool {
	return strings.TrimSpace(noteID) != ""
}
