package content

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidKey   = errors.New("content key must be lower case letters, digits, '.', '_' or '-'")
	ErrTitleTooLong = errors.New("title must be at most 200 characters")
	ErrBodyTooLong  = errors.New("body must be at most 20000 characters")
)

var keyRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_.\-]{0,63}$`)

// Block is a piece of marketing copy addressed by a stable key, e.g. "home.hero".
type Block struct {
	key       string
	title     string
	body      string
	published bool
	updatedAt time.Time
}

func NewBlock(key, title, body string, published bool) (*Block, error) {
	if !keyRegex.MatchString(key) {
		return nil, ErrInvalidKey
	}
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) > 200 {
		return nil, ErrTitleTooLong
	}
	if utf8.RuneCountInString(body) > 20000 {
		return nil, ErrBodyTooLong
	}
	return &Block{key: key, title: title, body: body, published: published}, nil
}

func ReconstructBlock(key, title, body string, published bool, updatedAt time.Time) *Block {
	return &Block{key: key, title: title, body: body, published: published, updatedAt: updatedAt}
}

func IsValidKey(key string) bool {
	return keyRegex.MatchString(key)
}

func (b *Block) Key() string          { return b.key }
func (b *Block) Title() string        { return b.title }
func (b *Block) Body() string         { return b.body }
func (b *Block) Published() bool      { return b.published }
func (b *Block) UpdatedAt() time.Time { return b.updatedAt }
