package location

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

// The catalog is static reference data: Algeria's 58 wilayas, their delivery
// zones and their baladiyas. It is built once from the embedded dataset and
// never mutated at runtime; the same dataset is used to seed the database
// tables so persisted orders can carry foreign keys into it.

var (
	ErrWilayaNotFound   = errors.New("wilaya not found")
	ErrBaladiyaNotFound = errors.New("baladiya not found")
	ErrNoActiveZone     = errors.New("no active delivery zone for wilaya")
)

// Wilaya is a top-level administrative province. IDs form the closed range
// [1,58]; anything outside is rejected.
type Wilaya struct {
	ID                 int             `json:"id"`
	Name               string          `json:"name"`
	Code               string          `json:"code"`
	HomeDeliveryCost   decimal.Decimal `json:"homeDeliveryCost"`
	OfficeDeliveryCost decimal.Decimal `json:"officeDeliveryCost"`
}

// Zone carries the transit-time estimate and the active flag for a wilaya.
// Costs live on the Wilaya itself; the zone is not a second source of money.
type Zone struct {
	WilayaID      int  `json:"wilayaId"`
	EstimatedDays int  `json:"estimatedDays"`
	Active        bool `json:"isActive"`
}

// Baladiya is a sub-district inside a wilaya, used for address precision.
type Baladiya struct {
	ID         int    `json:"id"`
	WilayaID   int    `json:"wilayaId"`
	Name       string `json:"name"`
	PostalCode string `json:"postalCode"`
}

type Catalog struct {
	wilayas   map[int]Wilaya
	zones     map[int]Zone
	baladiyas map[int][]Baladiya
	ordered   []Wilaya
}

// NewCatalog builds the catalog from the embedded dataset.
func NewCatalog() *Catalog {
	c := &Catalog{
		wilayas:   make(map[int]Wilaya, len(wilayaRows)),
		zones:     make(map[int]Zone, len(wilayaRows)),
		baladiyas: make(map[int][]Baladiya),
	}

	for _, row := range wilayaRows {
		w := Wilaya{
			ID:                 row.id,
			Name:               row.name,
			Code:               row.code,
			HomeDeliveryCost:   decimal.NewFromInt(row.homeCost),
			OfficeDeliveryCost: decimal.NewFromInt(row.officeCost),
		}
		c.wilayas[row.id] = w
		c.zones[row.id] = Zone{WilayaID: row.id, EstimatedDays: row.estimatedDays, Active: true}
		c.ordered = append(c.ordered, w)
	}

	sort.Slice(c.ordered, func(i, j int) bool { return c.ordered[i].ID < c.ordered[j].ID })

	for _, row := range baladiyaRows {
		b := Baladiya{
			ID:         row.id,
			WilayaID:   row.wilayaID,
			Name:       row.name,
			PostalCode: row.postalCode,
		}
		c.baladiyas[row.wilayaID] = append(c.baladiyas[row.wilayaID], b)
	}

	return c
}

func (c *Catalog) WilayaByID(id int) (*Wilaya, error) {
	w, ok := c.wilayas[id]
	if !ok {
		return nil, ErrWilayaNotFound
	}
	return &w, nil
}

// Wilayas returns all wilayas ordered by id.
func (c *Catalog) Wilayas() []Wilaya {
	out := make([]Wilaya, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// ActiveZone returns the wilaya's delivery zone, or ErrNoActiveZone when the
// zone is missing or deactivated.
func (c *Catalog) ActiveZone(wilayaID int) (*Zone, error) {
	z, ok := c.zones[wilayaID]
	if !ok || !z.Active {
		return nil, ErrNoActiveZone
	}
	return &z, nil
}

func (c *Catalog) BaladiyasByWilaya(wilayaID int) ([]Baladiya, error) {
	if _, ok := c.wilayas[wilayaID]; !ok {
		return nil, ErrWilayaNotFound
	}
	out := make([]Baladiya, len(c.baladiyas[wilayaID]))
	copy(out, c.baladiyas[wilayaID])
	return out, nil
}

// BaladiyaByID resolves a baladiya and checks it belongs to the given wilaya.
func (c *Catalog) BaladiyaByID(wilayaID, baladiyaID int) (*Baladiya, error) {
	for _, b := range c.baladiyas[wilayaID] {
		if b.ID == baladiyaID {
			return &b, nil
		}
	}
	return nil, ErrBaladiyaNotFound
}
