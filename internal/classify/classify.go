// Package classify derives the stem variant that selects a word-building rule.
package classify

import (
	"fmt"

	"github.com/ppiankov/akkad/internal/model"
)

// Classify returns the stem variant of root within the declared stem family.
//
//	len 2          → WeakFinalRoot
//	len 3, R1 = n  → WeakInitialN
//	len 3          → Strong
func Classify(root model.Root, stemFamily string) (model.StemVariant, error) {
	if stemFamily != model.GStem {
		return 0, fmt.Errorf("stem %q: %w", stemFamily, model.ErrUnrecognizedStemFamily)
	}

	switch {
	case IsBiliteral(root):
		return model.WeakFinalRoot, nil
	case IsTriliteral(root) && HasInitialN(root):
		return model.WeakInitialN, nil
	case IsTriliteral(root):
		return model.Strong, nil
	default:
		return 0, fmt.Errorf("root %s has %d consonants: %w", root, len(root), model.ErrInvalidRootLength)
	}
}

// IsBiliteral reports whether the root lost its third consonant.
func IsBiliteral(root model.Root) bool {
	return len(root) == 2
}

// IsTriliteral reports whether the root has three consonants.
func IsTriliteral(root model.Root) bool {
	return len(root) == 3
}

// HasInitialN reports whether the root begins with n.
func HasInitialN(root model.Root) bool {
	return len(root) > 0 && root[0] == 'n'
}

// IsGeminate reports whether R2 and R3 of a triliteral root are identical.
func IsGeminate(root model.Root) bool {
	return IsTriliteral(root) && root[1] == root[2]
}
