// internal/models/passport.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProductInformation identifies the garment itself.
type ProductInformation struct {
	GTIN     string `json:"gtin"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
}

// MaterialComposition is one entry of the ordered material list. The list
// carries any number of materials; percentages need not sum to 100.
type MaterialComposition struct {
	MaterialName          string   `json:"material_name"`
	CompositionPercentage float64  `json:"composition_percentage"`
	Certifications        []string `json:"certifications"`
}

type MaterialCompositions []MaterialComposition

func (m MaterialCompositions) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *MaterialCompositions) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type %T for material compositions", value)
	}
	return json.Unmarshal(bytes, m)
}

// EnvironmentImpact aggregates the passport's environmental facts.
type EnvironmentImpact struct {
	CarbonFootprintKg   float64        `json:"carbon_footprint_kg"`
	WaterUsageLiters    float64        `json:"water_usage_liters"`
	EnergyKwh           float64        `json:"energy_kwh"`
	RecycledContentPct  float64        `json:"recycled_content_pct"`
	HazardousSubstances pq.StringArray `json:"hazardous_substances" gorm:"type:text[]"`
}

type Producer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

type ProductionSite struct {
	Country    string   `json:"country"`
	FacilityID string   `json:"facility_id"`
	Processes  []string `json:"processes"`
}

type ProductionSites []ProductionSite

func (p ProductionSites) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *ProductionSites) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type %T for production sites", value)
	}
	return json.Unmarshal(bytes, p)
}

type Manufacturing struct {
	Producer          Producer        `json:"producer" gorm:"embedded;embeddedPrefix:producer_"`
	ProductionSites   ProductionSites `json:"production_sites" gorm:"type:jsonb"`
	ManufacturingDate string          `json:"manufacturing_date"`
}

type Repairability struct {
	Difficulty          string `json:"difficulty"`
	SparePartsAvailable bool   `json:"spare_parts_available"`
	GuideURL            string `json:"guide_url"`
}

type DurabilityAndCare struct {
	ExpectedLifetimeCycles int           `json:"expected_lifetime_cycles"`
	WashInstructions       string        `json:"wash_instructions"`
	Repairability          Repairability `json:"repairability" gorm:"embedded;embeddedPrefix:repair_"`
}

type TakeBackProgram struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type TakeBackPrograms []TakeBackProgram

func (t TakeBackPrograms) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

func (t *TakeBackPrograms) Scan(value interface{}) error {
	if value == nil {
		*t = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type %T for take-back programs", value)
	}
	return json.Unmarshal(bytes, t)
}

type EndOfLife struct {
	RecyclabilityPct float64          `json:"recyclability_pct"`
	DisassemblyURL   string           `json:"disassembly_url"`
	TakeBackPrograms TakeBackPrograms `json:"take_back_programs" gorm:"type:jsonb"`
}

type SupplyChainStage struct {
	Stage       string `json:"stage"`
	Supplier    string `json:"supplier"`
	Country     string `json:"country"`
	Certificate string `json:"certificate"`
}

type SupplyChainStages []SupplyChainStage

func (s SupplyChainStages) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *SupplyChainStages) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type %T for supply chain stages", value)
	}
	return json.Unmarshal(bytes, s)
}

// Metadata records passport provenance. Timestamps are stamped by the service
// that creates the passport, the nested data itself is stored verbatim.
type Metadata struct {
	PassportCreated     string `json:"passport_created"`
	PassportLastUpdated string `json:"passport_last_updated"`
	DataOwner           string `json:"data_owner"`
}

// ProductPassport is the digital product passport for one garment. It is a
// value object: identity is assigned once on creation and never mutated, and
// the row is removed only when its owning user is removed (FK cascade).
type ProductPassport struct {
	BaseModel
	OwnerID            uuid.UUID            `json:"owner_id" gorm:"type:uuid;not null;index"`
	ProductInformation ProductInformation   `json:"product_information" gorm:"embedded;embeddedPrefix:info_"`
	Materials          MaterialCompositions `json:"material_compositions" gorm:"type:jsonb"`
	EnvironmentImpact  EnvironmentImpact    `json:"environment_impact" gorm:"embedded;embeddedPrefix:env_"`
	Manufacturing      Manufacturing        `json:"manufacturing" gorm:"embedded;embeddedPrefix:mfg_"`
	DurabilityAndCare  DurabilityAndCare    `json:"durability_and_care" gorm:"embedded;embeddedPrefix:care_"`
	EndOfLife          EndOfLife            `json:"end_of_life" gorm:"embedded;embeddedPrefix:eol_"`
	SupplyChain        SupplyChainStages    `json:"supply_chain" gorm:"type:jsonb"`
	Metadata           Metadata             `json:"metadata" gorm:"embedded;embeddedPrefix:meta_"`
	Image              []byte               `json:"image,omitempty" gorm:"type:bytea"`
}

// Validate checks the field ranges the passport guarantees. Everything else
// is stored exactly as supplied.
func (p *ProductPassport) Validate() error {
	if p.ProductInformation.GTIN == "" {
		return &ValidationError{Field: "gtin", Message: "must not be empty"}
	}
	for i, m := range p.Materials {
		if m.CompositionPercentage < 0 || m.CompositionPercentage > 100 {
			return &ValidationError{
				Field:   fmt.Sprintf("material_compositions[%d].composition_percentage", i),
				Message: "must be between 0 and 100",
			}
		}
	}
	if p.EndOfLife.RecyclabilityPct < 0 || p.EndOfLife.RecyclabilityPct > 100 {
		return &ValidationError{Field: "end_of_life.recyclability_pct", Message: "must be between 0 and 100"}
	}
	return nil
}
