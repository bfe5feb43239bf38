package datasets

import (
	"fmt"
	"time"

	"housing-trends/common"
	"housing-trends/tables"
)

// Dataset is a loaded, pivoted dataset
type Dataset struct {
	Definition
	Table    *tables.SeriesTable
	LoadedAt time.Time
}

// Info is the listing entry for a dataset
type Info struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Route       string `json:"route,omitempty"`
	Regions     int    `json:"regions"`
	Periods     int    `json:"periods"`
	FirstPeriod string `json:"first_period,omitempty"`
	LastPeriod  string `json:"last_period,omitempty"`
}

// Info summarizes the dataset for listings
func (d *Dataset) Info() Info {
	info := Info{
		Name:    d.Name,
		Title:   d.Title,
		Route:   d.Route,
		Regions: d.Table.NumRegions(),
		Periods: d.Table.NumPeriods(),
	}
	if periods := d.Table.Periods(); len(periods) > 0 {
		info.FirstPeriod = periods[0]
		info.LastPeriod = periods[len(periods)-1]
	}
	return info
}

// Registry is the process-lifetime data context handed to request handlers.
// It is built once at startup and only read afterwards.
type Registry struct {
	primary string
	order   []*Dataset
	byName  map[string]*Dataset
	byRoute map[string]*Dataset
}

// NewRegistry indexes loaded datasets by name and route alias
func NewRegistry(primary string, loaded []*Dataset) (*Registry, error) {
	r := &Registry{
		primary: primary,
		order:   loaded,
		byName:  make(map[string]*Dataset, len(loaded)),
		byRoute: make(map[string]*Dataset),
	}

	for _, d := range loaded {
		if _, exists := r.byName[d.Name]; exists {
			return nil, fmt.Errorf("%w: dataset %q", common.ErrDuplicateKey, d.Name)
		}
		r.byName[d.Name] = d
		if d.Route != "" {
			if _, exists := r.byRoute[d.Route]; exists {
				return nil, fmt.Errorf("%w: route %q", common.ErrDuplicateKey, d.Route)
			}
			r.byRoute[d.Route] = d
		}
	}

	if primary != "" {
		if _, ok := r.byName[primary]; !ok {
			return nil, fmt.Errorf("%w: primary %q", common.ErrUnknownDataset, primary)
		}
	}
	return r, nil
}

// Get returns the dataset registered under name
func (r *Registry) Get(name string) (*Dataset, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownDataset, name)
	}
	return d, nil
}

// Primary returns the dataset backing the region listing
func (r *Registry) Primary() (*Dataset, error) {
	if r.primary == "" {
		if len(r.order) == 0 {
			return nil, common.ErrUnknownDataset
		}
		return r.order[0], nil
	}
	return r.Get(r.primary)
}

// Routes returns datasets with a legacy route alias, in catalogue order
func (r *Registry) Routes() []*Dataset {
	var out []*Dataset
	for _, d := range r.order {
		if d.Route != "" {
			out = append(out, d)
		}
	}
	return out
}

// Infos lists every dataset in catalogue order
func (r *Registry) Infos() []Info {
	infos := make([]Info, 0, len(r.order))
	for _, d := range r.order {
		infos = append(infos, d.Info())
	}
	return infos
}
