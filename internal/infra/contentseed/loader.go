// Package contentseed reads the default marketing content shipped with the service.
package contentseed

import (
	"io"
	"os"
	"strings"

	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/commands"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
)

var (
	ErrUnknownField = errs.New("unknown field in content seed")
	ErrDuplicateKey = errs.New("duplicate content key in seed")
)

type seedFile struct {
	Blocks []seedBlock `toml:"block"`
}

type seedBlock struct {
	Key       string `toml:"key"`
	Title     string `toml:"title"`
	Body      string `toml:"body"`
	Published bool   `toml:"published"`
}

func LoadFile(path string) ([]commands.ContentDefault, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, errs.Wrapf(err, "open content seed %s", path)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes [[block]] tables. Unknown fields and repeated keys are rejected so a
// typo in the seed does not silently drop content.
func Load(r io.Reader) ([]commands.ContentDefault, error) {
	var file seedFile
	md, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, errs.Wrap(err, "decode content seed")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := lo.Map(undecoded, func(k toml.Key, _ int) string { return k.String() })
		return nil, errs.Mark(errs.New(strings.Join(keys, ", ")), ErrUnknownField)
	}

	defaults := lo.Map(file.Blocks, func(b seedBlock, _ int) commands.ContentDefault {
		return commands.ContentDefault{
			Key:       strings.TrimSpace(b.Key),
			Title:     b.Title,
			Body:      strings.TrimSpace(b.Body),
			Published: b.Published,
		}
	})

	dups := lo.FindDuplicatesBy(defaults, func(d commands.ContentDefault) string { return d.Key })
	if len(dups) > 0 {
		return nil, errs.Mark(errs.New(dups[0].Key), ErrDuplicateKey)
	}
	return defaults, nil
}
