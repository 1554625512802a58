package domain

type Region string

const (
	RegionUSA    Region = "USA"
	RegionChina  Region = "China"
	RegionEurope Region = "Europe"
	RegionJapan  Region = "Japan"
)

const DefaultRegion = RegionUSA

func Regions() []Region {
	return []Region{RegionUSA, RegionChina, RegionEurope, RegionJapan}
}

func ParseRegion(s string) (Region, bool) {
	for _, r := range Regions() {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Preferences is the process-wide singleton. Its two fields persist under
// independent keys; there is no transactional grouping between them.
type Preferences struct {
	Region             Region `json:"region"`
	ConfirmBeforeVisit bool   `json:"confirmBeforeVisit"`
}
