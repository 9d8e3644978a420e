package schema

// Custom string types for type safety.
type (
	// HomeType represents a residential housing type.
	HomeType string

	// ConstructionPeriod represents a coarse construction-era bucket.
	ConstructionPeriod string

	// SizeCategory represents a coarse square-footage bucket.
	SizeCategory string

	// UnitPosition represents where a unit sits within a multi-unit
	// building, or how a duplex is configured.
	UnitPosition string

	// ClimateCategory represents a descriptive climate bucket derived
	// from the numeric IECC zone.
	ClimateCategory string

	// Provenance marks whether a form value came from the defaults
	// engine or from the user.
	Provenance string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the audit
	// history store.
	DatabaseBackend string
)

// All supported housing types.
const (
	SingleFamily HomeType = "single-family"
	Townhouse    HomeType = "townhouse"
	Duplex       HomeType = "duplex"
	Condominium  HomeType = "condominium"
	Apartment    HomeType = "apartment"
	MobileHome   HomeType = "mobile-home"
)

// AllHomeTypes lists every supported housing type in display order.
var AllHomeTypes = []HomeType{
	SingleFamily,
	Townhouse,
	Duplex,
	Condominium,
	Apartment,
	MobileHome,
}

// Construction periods. Mobile homes use the finer HUD-code buckets;
// every other type uses the three-way split.
const (
	PrePeriod1976 ConstructionPeriod = "pre-1976"
	Period1976To1994 ConstructionPeriod = "1976-1994"
	Period1994To2000 ConstructionPeriod = "1994-2000"

	PrePeriod1980    ConstructionPeriod = "pre-1980"
	Period1980To2000 ConstructionPeriod = "1980-2000"
	PostPeriod2000   ConstructionPeriod = "post-2000"
)

// Size categories shared by every housing type.
const (
	SmallSize  SizeCategory = "small"
	MediumSize SizeCategory = "medium"
	LargeSize  SizeCategory = "large"
)

// Unit positions for apartments and condominiums.
const (
	InteriorUnit UnitPosition = "interior"
	CornerUnit   UnitPosition = "corner"
	TopFloorUnit UnitPosition = "top-floor"
)

// Unit positions for townhouses. InteriorUnit and CornerUnit are shared
// with the apartment/condo set.
const (
	EndUnit UnitPosition = "end"
)

// Duplex configurations.
const (
	SideBySideConfig  UnitPosition = "side-by-side"
	StackedConfig     UnitPosition = "stacked"
	FrontToBackConfig UnitPosition = "front-to-back"
)

// Descriptive climate categories.
const (
	ColdVeryCold   ClimateCategory = "cold-very-cold"
	MixedHumid     ClimateCategory = "mixed-humid"
	HotHumid       ClimateCategory = "hot-humid"
	HotDryMixedDry ClimateCategory = "hot-dry-mixed-dry"
)

// Provenance values carried per resolved field.
const (
	DefaultProvenance Provenance = "default"
	UserProvenance    Provenance = "user"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All database backends supported for the history store.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
