package datasets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"housing-trends/common"
	"housing-trends/parsers"
	"housing-trends/tables"

	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

// Definition describes one dataset source and how to pivot it
type Definition struct {
	Name      string                   `yaml:"name" json:"name"`
	Title     string                   `yaml:"title" json:"title"`
	Path      string                   `yaml:"path" json:"path"`
	Format    string                   `yaml:"format,omitempty" json:"format,omitempty"` // csv, xlsx; inferred from path when empty
	Sheet     string                   `yaml:"sheet,omitempty" json:"sheet,omitempty"`   // xlsx only
	Route     string                   `yaml:"route,omitempty" json:"route,omitempty"`   // legacy /api/<route> alias
	Preset    string                   `yaml:"preset,omitempty" json:"preset,omitempty"`
	Transform *tables.TransformOptions `yaml:"transform,omitempty" json:"transform,omitempty"`
}

// reservedRoutes collide with fixed endpoints under /api
var reservedRoutes = map[string]bool{"cities": true, "v1": true}

// Catalogue is the set of datasets loaded at startup
type Catalogue struct {
	// Primary names the dataset whose regions back /api/cities
	Primary  string       `yaml:"primary"`
	Datasets []Definition `yaml:"datasets"`
}

// DefaultCatalogue serves Zillow metro list prices and inventory from dataDir
func DefaultCatalogue(dataDir string) Catalogue {
	return Catalogue{
		Primary: "price",
		Datasets: []Definition{
			{
				Name:   "price",
				Title:  "Mean List Price (SFR)",
				Path:   filepath.Join(dataDir, "Metro_mlp_uc_sfr_sm_month.csv"),
				Route:  "pricedata",
				Preset: tables.PresetHomePrice,
			},
			{
				Name:   "inventory",
				Title:  "For-Sale Inventory (SFR)",
				Path:   filepath.Join(dataDir, "Metro_invt_fs_uc_sfr_sm_month.csv"),
				Route:  "inventorydata",
				Preset: tables.PresetHomePrice,
			},
		},
	}
}

// LoadCatalogue reads a YAML catalogue. Relative dataset paths resolve against dataDir.
func LoadCatalogue(path, dataDir string) (Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalogue{}, fmt.Errorf("read catalogue: %w", err)
	}

	var cat Catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalogue{}, fmt.Errorf("parse catalogue %s: %w", path, err)
	}

	for i := range cat.Datasets {
		p := cat.Datasets[i].Path
		if p != "" && !filepath.IsAbs(p) {
			cat.Datasets[i].Path = filepath.Join(dataDir, p)
		}
	}
	return cat, nil
}

// Normalize fills derived fields: a slug name from the title, the format from
// the path extension and the transform from the preset (home_price when unset)
func (c *Catalogue) Normalize() {
	for i := range c.Datasets {
		d := &c.Datasets[i]
		if d.Name == "" && d.Title != "" {
			d.Name = slug.Make(d.Title)
		}
		if d.Title == "" {
			d.Title = d.Name
		}
		if d.Format == "" {
			if f, err := parsers.FormatFromPath(d.Path); err == nil {
				d.Format = string(f)
			}
		}
		if d.Transform == nil && d.Preset == "" {
			d.Preset = tables.PresetHomePrice
		}
	}
	if c.Primary == "" && len(c.Datasets) > 0 {
		c.Primary = c.Datasets[0].Name
	}
}

// Validate checks every definition and returns all problems found
func (c *Catalogue) Validate() error {
	var errs []error
	if len(c.Datasets) == 0 {
		errs = append(errs, errors.New("catalogue has no datasets"))
	}

	names := map[string]bool{}
	routes := map[string]bool{}
	for i, d := range c.Datasets {
		result := &common.ValidationResult{Index: i, Name: d.Name, Valid: true}

		result.Add(common.ValidateRequired("name", d.Name))
		if d.Name != "" {
			if !slug.IsSlug(d.Name) {
				result.AddError("name", fmt.Sprintf("name %q must be a lowercase slug", d.Name))
			}
			result.Add(common.ValidateUnique("name", d.Name, names))
		}
		result.Add(common.ValidateRequired("path", d.Path))
		result.Add(common.ValidateEnum("format", d.Format, parsers.Formats()))
		if d.Route != "" {
			if !slug.IsSlug(d.Route) {
				result.AddError("route", fmt.Sprintf("route %q must be a lowercase slug", d.Route))
			}
			if reservedRoutes[d.Route] {
				result.AddError("route", fmt.Sprintf("route %q is reserved", d.Route))
			}
			result.Add(common.ValidateUnique("route", d.Route, routes))
		}
		if d.Transform != nil && d.Preset != "" {
			result.AddError("transform", "set either preset or transform, not both")
		}
		if d.Preset != "" {
			result.Add(common.ValidateEnum("preset", d.Preset, tables.Presets()))
		}
		if d.Transform != nil {
			result.Add(common.ValidateRequired("transform.id_column", d.Transform.IDColumn))
		}

		if !result.Valid {
			errs = append(errs, result)
		}
	}

	if c.Primary != "" && !names[c.Primary] {
		errs = append(errs, fmt.Errorf("primary dataset %q is not defined", c.Primary))
	}
	return errors.Join(errs...)
}

// Options resolves the transform configured for d
func (d Definition) Options() (tables.TransformOptions, error) {
	if d.Transform != nil {
		return *d.Transform, nil
	}
	return tables.PresetTransform(d.Preset)
}
