package seed

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/louisbranch/assetregistry/internal/services/registry/fingerprint"
)

// Fixture is one TOML seed file: registrations followed by transfers.
type Fixture struct {
	Name      string            `toml:"name"`
	Assets    []AssetFixture    `toml:"asset"`
	Transfers []TransferFixture `toml:"transfer"`
}

// AssetFixture registers an asset for Owner. Hash may be omitted when File
// names content to fingerprint.
type AssetFixture struct {
	Hash     string `toml:"hash"`
	File     string `toml:"file"`
	Owner    string `toml:"owner"`
	Metadata string `toml:"metadata"`
}

// TransferFixture moves Hash from From to To.
type TransferFixture struct {
	Hash string `toml:"hash"`
	From string `toml:"from"`
	To   string `toml:"to"`
}

// LoadFixture decodes the fixture at path. Relative asset files resolve
// against the fixture's directory.
func LoadFixture(path string) (Fixture, error) {
	var fixture Fixture
	md, err := toml.DecodeFile(path, &fixture)
	if err != nil {
		return Fixture{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Fixture{}, fmt.Errorf("decode %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if strings.TrimSpace(fixture.Name) == "" {
		fixture.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	dir := filepath.Dir(path)
	for i := range fixture.Assets {
		asset := &fixture.Assets[i]
		if asset.File == "" {
			continue
		}
		file := asset.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(dir, file)
		}
		hash, err := fingerprint.FromFile(file)
		if err != nil {
			return Fixture{}, fmt.Errorf("fixture %s asset %d: %w", fixture.Name, i, err)
		}
		if asset.Hash != "" && asset.Hash != hash {
			return Fixture{}, fmt.Errorf("fixture %s asset %d: hash does not match %s", fixture.Name, i, asset.File)
		}
		asset.Hash = hash
	}
	if err := fixture.Validate(); err != nil {
		return Fixture{}, err
	}
	return fixture, nil
}

// LoadFixtures decodes every fixture matching pattern in name order.
func LoadFixtures(pattern string) ([]Fixture, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob fixtures: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no fixtures match %s", pattern)
	}
	sort.Strings(paths)

	fixtures := make([]Fixture, 0, len(paths))
	for _, path := range paths {
		fixture, err := LoadFixture(path)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, fixture)
	}
	return fixtures, nil
}

// Validate checks that every entry names a hash and its principals. Hashes
// and transfer targets are kept verbatim.
func (f Fixture) Validate() error {
	var errs []error
	for i, asset := range f.Assets {
		if asset.Hash == "" {
			errs = append(errs, fmt.Errorf("asset %d: hash or file is required", i))
		}
		if strings.TrimSpace(asset.Owner) == "" {
			errs = append(errs, fmt.Errorf("asset %d: owner is required", i))
		}
	}
	for i, transfer := range f.Transfers {
		if transfer.Hash == "" {
			errs = append(errs, fmt.Errorf("transfer %d: hash is required", i))
		}
		if strings.TrimSpace(transfer.From) == "" || transfer.To == "" {
			errs = append(errs, fmt.Errorf("transfer %d: from and to are required", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("fixture %s: %w", f.Name, errors.Join(errs...))
	}
	return nil
}
