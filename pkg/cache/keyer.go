package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of one rendered artifact of a catalog.
	ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts lists everything besides the catalog that changes the
// bytes of an artifact.
type ArtifactKeyOpts struct {
	Format       string  `json:"format"`
	VizType      string  `json:"viz_type"`
	Style        string  `json:"style"`
	Seed         uint64  `json:"seed,omitempty"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	TopWidth     float64 `json:"top_width"`
	CornerRadius float64 `json:"corner_radius"`
	Selected     string  `json:"selected,omitempty"`
	Hovered      string  `json:"hovered,omitempty"`
	Interactive  bool    `json:"interactive,omitempty"`
	Scale        float64 `json:"scale,omitempty"`
}

// DefaultKeyer hashes key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<sha256>" of the catalog hash and options.
func (DefaultKeyer) ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", catalogHash, opts)
}

// hashKey returns prefix + ":" + hex(sha256(json(parts))).
func hashKey(prefix string, parts ...any) string {
	h := sha256.New()
	// Encoding plain structs and strings cannot fail.
	_ = json.NewEncoder(h).Encode(parts)
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex SHA-256 of data (64 characters).
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ScopedKeyer namespaces the keys of another Keyer, e.g. "tierpyramid:"
// when the Redis database is shared with other applications.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer prefixes every key of inner. A nil inner means
// [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = DefaultKeyer{}
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(catalogHash, opts)
}
