package placement

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"tagsort/internal/fileutil"
)

// Outcome describes how a placement concluded.
type Outcome int

const (
	// OutcomeNew means the source was copied into a previously empty slot.
	OutcomeNew Outcome = iota
	// OutcomeDuplicate means a byte-identical file already exists; nothing
	// was written.
	OutcomeDuplicate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNew:
		return "new"
	case OutcomeDuplicate:
		return "duplicate"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Triple holds the sanitized artist/album/title path components.
type Triple struct {
	Artist string
	Album  string
	Title  string
}

// Placement is the resolved destination of one source file.
type Placement struct {
	// Path is the concrete destination entry, including any _N suffix.
	Path    string
	Outcome Outcome
}

// Resolve creates the artist/album directories under destRoot if absent,
// walks the collision chain for the triple, and copies srcPath into the
// first free slot unless a byte-identical copy is already present. The
// copy preserves permissions and modification time.
func Resolve(destRoot string, triple Triple, ext, srcPath string) (Placement, error) {
	albumDir := filepath.Join(destRoot, triple.Artist, triple.Album)
	if err := os.MkdirAll(albumDir, 0o755); err != nil {
		return Placement{}, fmt.Errorf("create album directory: %w", err)
	}

	base := filepath.Join(albumDir, triple.Title)
	for n := 0; ; n++ {
		candidate := base
		if n > 0 {
			candidate = fmt.Sprintf("%s_%d", base, n)
		}
		target := candidate + ext

		_, err := os.Stat(target)
		if errors.Is(err, fs.ErrNotExist) {
			if err := fileutil.CopyFilePreserve(srcPath, target); err != nil {
				return Placement{}, fmt.Errorf("copy to %s: %w", target, err)
			}
			return Placement{Path: target, Outcome: OutcomeNew}, nil
		}
		if err != nil {
			return Placement{}, fmt.Errorf("probe %s: %w", target, err)
		}

		same, err := fileutil.SameContents(srcPath, target)
		if err != nil {
			return Placement{}, fmt.Errorf("compare with %s: %w", target, err)
		}
		if same {
			return Placement{Path: target, Outcome: OutcomeDuplicate}, nil
		}
	}
}
